package httpserver

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/thaisassuncao/community-app/internal/config"
	"github.com/thaisassuncao/community-app/internal/domain"
)

// --- Mock implementations ---

type mockForumService struct {
	createMessageFn   func(ctx context.Context, in domain.NewMessage) (*domain.Message, *domain.User, error)
	deleteMessageFn   func(ctx context.Context, messageID uuid.UUID) error
	createReactionFn  func(ctx context.Context, messageID, userID uuid.UUID, kind domain.ReactionKind) (domain.ReactionTotals, error)
	createCommunityFn func(ctx context.Context, in domain.NewCommunity) (*domain.Community, error)
	listCommunitiesFn func(ctx context.Context) ([]domain.Community, error)
	deleteCommunityFn func(ctx context.Context, communityID uuid.UUID) error
	topMessagesFn     func(ctx context.Context, communityID uuid.UUID, limit int) ([]domain.RankedMessage, error)
	suspiciousIPsFn   func(ctx context.Context, minUsers int) ([]domain.SuspiciousIP, error)
}

func (m *mockForumService) CreateMessage(ctx context.Context, in domain.NewMessage) (*domain.Message, *domain.User, error) {
	if m.createMessageFn != nil {
		return m.createMessageFn(ctx, in)
	}
	return nil, nil, errors.New("not implemented")
}

func (m *mockForumService) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	if m.deleteMessageFn != nil {
		return m.deleteMessageFn(ctx, messageID)
	}
	return nil
}

func (m *mockForumService) CreateReaction(ctx context.Context, messageID, userID uuid.UUID, kind domain.ReactionKind) (domain.ReactionTotals, error) {
	if m.createReactionFn != nil {
		return m.createReactionFn(ctx, messageID, userID, kind)
	}
	return domain.ReactionTotals{}, errors.New("not implemented")
}

func (m *mockForumService) CreateCommunity(ctx context.Context, in domain.NewCommunity) (*domain.Community, error) {
	if m.createCommunityFn != nil {
		return m.createCommunityFn(ctx, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockForumService) ListCommunities(ctx context.Context) ([]domain.Community, error) {
	if m.listCommunitiesFn != nil {
		return m.listCommunitiesFn(ctx)
	}
	return nil, nil
}

func (m *mockForumService) DeleteCommunity(ctx context.Context, communityID uuid.UUID) error {
	if m.deleteCommunityFn != nil {
		return m.deleteCommunityFn(ctx, communityID)
	}
	return nil
}

func (m *mockForumService) TopMessages(ctx context.Context, communityID uuid.UUID, limit int) ([]domain.RankedMessage, error) {
	if m.topMessagesFn != nil {
		return m.topMessagesFn(ctx, communityID, limit)
	}
	return nil, nil
}

func (m *mockForumService) SuspiciousIPs(ctx context.Context, minUsers int) ([]domain.SuspiciousIP, error) {
	if m.suspiciousIPsFn != nil {
		return m.suspiciousIPsFn(ctx, minUsers)
	}
	return nil, nil
}

// --- Test helpers ---

func newTestServer(t *testing.T, app domain.ForumService) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv:             "test",
		Port:               "0",
		RateLimitPerSecond: 1000,
		RateLimitBurst:     1000,
	}
	return NewServer(cfg, app, nil)
}

// doJSON runs a JSON request through the full middleware chain.
func doJSON(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func testMessage(id, userID, communityID uuid.UUID) *domain.Message {
	return &domain.Message{
		ID:             id,
		UserID:         userID,
		CommunityID:    communityID,
		Content:        "que projeto incrível",
		UserIP:         "192.0.2.1",
		SentimentScore: 1.0,
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}
