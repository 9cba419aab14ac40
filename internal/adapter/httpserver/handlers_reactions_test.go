package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thaisassuncao/community-app/internal/domain"
)

func TestHandleCreateReaction_Success(t *testing.T) {
	messageID := uuid.New()
	userID := uuid.New()

	app := &mockForumService{
		createReactionFn: func(_ context.Context, mid, uid uuid.UUID, kind domain.ReactionKind) (domain.ReactionTotals, error) {
			assert.Equal(t, messageID, mid)
			assert.Equal(t, userID, uid)
			assert.Equal(t, domain.ReactionLike, kind)
			return domain.ReactionTotals{Like: 1}, nil
		},
	}
	srv := newTestServer(t, app)

	body := fmt.Sprintf(`{"message_id":%q,"user_id":%q,"kind":"like"}`, messageID, userID)
	rec := doJSON(srv, http.MethodPost, "/api/v1/reactions", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, messageID.String(), response["message_id"])

	// All three kinds always present, zero-filled
	reactions, ok := response["reactions"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1, reactions["like"], 1e-9)
	assert.InDelta(t, 0, reactions["love"], 1e-9)
	assert.InDelta(t, 0, reactions["insightful"], 1e-9)
}

func TestHandleCreateReaction_Duplicate(t *testing.T) {
	app := &mockForumService{
		createReactionFn: func(_ context.Context, _, _ uuid.UUID, _ domain.ReactionKind) (domain.ReactionTotals, error) {
			return domain.ReactionTotals{}, domain.ErrDuplicateReaction
		},
	}
	srv := newTestServer(t, app)

	body := fmt.Sprintf(`{"message_id":%q,"user_id":%q,"kind":"like"}`, uuid.New(), uuid.New())
	rec := doJSON(srv, http.MethodPost, "/api/v1/reactions", body)

	require.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "conflict", response["type"])
}

func TestHandleCreateReaction_InvalidKind(t *testing.T) {
	app := &mockForumService{
		createReactionFn: func(_ context.Context, _, _ uuid.UUID, _ domain.ReactionKind) (domain.ReactionTotals, error) {
			return domain.ReactionTotals{}, domain.ErrInvalidReactionKind
		},
	}
	srv := newTestServer(t, app)

	body := fmt.Sprintf(`{"message_id":%q,"user_id":%q,"kind":"dislike"}`, uuid.New(), uuid.New())
	rec := doJSON(srv, http.MethodPost, "/api/v1/reactions", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateReaction_MessageNotFound(t *testing.T) {
	app := &mockForumService{
		createReactionFn: func(_ context.Context, _, _ uuid.UUID, _ domain.ReactionKind) (domain.ReactionTotals, error) {
			return domain.ReactionTotals{}, domain.ErrMessageNotFound
		},
	}
	srv := newTestServer(t, app)

	body := fmt.Sprintf(`{"message_id":%q,"user_id":%q,"kind":"like"}`, uuid.New(), uuid.New())
	rec := doJSON(srv, http.MethodPost, "/api/v1/reactions", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCreateReaction_BadIDs(t *testing.T) {
	srv := newTestServer(t, &mockForumService{})

	rec := doJSON(srv, http.MethodPost, "/api/v1/reactions", `{"message_id":"nope","user_id":"nope","kind":"like"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
