package httpserver

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/thaisassuncao/community-app/internal/domain"
	apperrors "github.com/thaisassuncao/community-app/internal/errors"
)

func (s *Server) registerReactionRoutes(api *echo.Group) {
	api.POST("/reactions", s.handleCreateReaction)
}

type createReactionRequest struct {
	MessageID string `json:"message_id"`
	UserID    string `json:"user_id"`
	Kind      string `json:"kind"`
}

type reactionResponse struct {
	MessageID uuid.UUID             `json:"message_id"`
	Reactions domain.ReactionTotals `json:"reactions"`
}

func (s *Server) handleCreateReaction(c echo.Context) error {
	ctx := c.Request().Context()

	var req createReactionRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	messageID, err := uuid.Parse(req.MessageID)
	if err != nil {
		return apperrors.ValidationError("invalid message ID").WithField("message_id", req.MessageID)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return apperrors.ValidationError("invalid user ID").WithField("user_id", req.UserID)
	}

	totals, err := s.app.CreateReaction(ctx, messageID, userID, domain.ReactionKind(req.Kind))
	if err != nil {
		return mapDomainError(err)
	}

	response := reactionResponse{MessageID: messageID, Reactions: totals}
	if err := c.JSON(http.StatusCreated, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
