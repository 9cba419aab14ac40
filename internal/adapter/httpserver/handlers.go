package httpserver

import (
	"errors"

	"github.com/thaisassuncao/community-app/internal/domain"
	apperrors "github.com/thaisassuncao/community-app/internal/errors"
)

// mapDomainError translates domain failures into structured errors so the
// error middleware renders the right status. Unknown errors pass through and
// become 500s.
func mapDomainError(err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		structured := apperrors.ValidationError("validation failed")
		for field, message := range verr.Fields {
			structured = structured.WithField(field, message)
		}
		return structured
	}

	switch {
	case errors.Is(err, domain.ErrCommunityNotFound):
		return apperrors.NotFoundError("community not found")
	case errors.Is(err, domain.ErrMessageNotFound):
		return apperrors.NotFoundError("message not found")
	case errors.Is(err, domain.ErrParentMessageNotFound):
		return apperrors.NotFoundError("parent message not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return apperrors.NotFoundError("user not found")
	case errors.Is(err, domain.ErrCommunityNameTaken):
		return apperrors.ConflictError("community name already taken")
	case errors.Is(err, domain.ErrDuplicateReaction):
		return apperrors.ConflictError("reaction already exists")
	case errors.Is(err, domain.ErrInvalidReactionKind):
		return apperrors.ValidationError("invalid reaction kind").
			WithField("kind", "must be one of like, love, insightful")
	default:
		return err
	}
}
