package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/thaisassuncao/community-app/internal/analytics"
	"github.com/thaisassuncao/community-app/internal/domain"
	"github.com/thaisassuncao/community-app/internal/metrics"
)

// SentimentAnalyzer scores text at message-creation time.
type SentimentAnalyzer interface {
	Analyze(text string) float64
}

// ReactionProposer is the reaction guard contract.
type ReactionProposer interface {
	Propose(ctx context.Context, messageID, userID uuid.UUID, kind domain.ReactionKind) (domain.ReactionTotals, error)
}

// EngagementRanker ranks a community's root messages.
type EngagementRanker interface {
	TopMessages(ctx context.Context, communityID uuid.UUID, limit int) ([]domain.RankedMessage, error)
}

// IPDetector surfaces shared-IP fraud signals.
type IPDetector interface {
	SuspiciousIPs(ctx context.Context, minUsers int) ([]domain.SuspiciousIP, error)
}

// Service implements domain.ForumService.
type Service struct {
	users       domain.UserRepository
	communities domain.CommunityRepository
	messages    domain.MessageRepository
	analyzer    SentimentAnalyzer
	guard       ReactionProposer
	ranker      EngagementRanker
	detector    IPDetector
	// cache may be nil; analytics then recompute on every call.
	cache domain.AnalyticsCache
	clock clockwork.Clock
}

func NewService(
	users domain.UserRepository,
	communities domain.CommunityRepository,
	messages domain.MessageRepository,
	analyzer SentimentAnalyzer,
	guard ReactionProposer,
	ranker EngagementRanker,
	detector IPDetector,
	cache domain.AnalyticsCache,
	clock clockwork.Clock,
) *Service {
	return &Service{
		users:       users,
		communities: communities,
		messages:    messages,
		analyzer:    analyzer,
		guard:       guard,
		ranker:      ranker,
		detector:    detector,
		cache:       cache,
		clock:       clock,
	}
}

// CreateMessage validates input, lazily creates the author, scores sentiment
// and persists the message. Scoring happens only here, before the write; the
// stored value is never recomputed afterwards.
func (s *Service) CreateMessage(ctx context.Context, in domain.NewMessage) (*domain.Message, *domain.User, error) {
	verr := domain.NewValidationError()
	if strings.TrimSpace(in.Username) == "" {
		verr.Add("username", "can't be blank")
	}
	if strings.TrimSpace(in.Content) == "" {
		verr.Add("content", "can't be blank")
	}
	if strings.TrimSpace(in.UserIP) == "" {
		verr.Add("user_ip", "can't be blank")
	}
	if !verr.Empty() {
		return nil, nil, verr
	}

	if _, err := s.communities.GetByID(ctx, in.CommunityID); err != nil {
		return nil, nil, err
	}

	if in.ParentID != nil {
		parent, err := s.messages.GetByID(ctx, *in.ParentID)
		if err != nil {
			if errors.Is(err, domain.ErrMessageNotFound) {
				return nil, nil, domain.ErrParentMessageNotFound
			}
			return nil, nil, err
		}
		// A reply in a different community would corrupt both communities'
		// reply counts.
		if parent.CommunityID != in.CommunityID {
			return nil, nil, domain.NewValidationError().
				Add("parent_message_id", "must belong to the same community")
		}
	}

	user, err := s.users.FindOrCreate(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve author: %w", err)
	}

	message := &domain.Message{
		ID:             uuid.New(),
		UserID:         user.ID,
		CommunityID:    in.CommunityID,
		ParentID:       in.ParentID,
		Content:        in.Content,
		UserIP:         in.UserIP,
		SentimentScore: s.analyzer.Analyze(in.Content),
		CreatedAt:      s.clock.Now().UTC(),
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, nil, fmt.Errorf("failed to create message: %w", err)
	}

	kind := "root"
	if message.ParentID != nil {
		kind = "reply"
	}
	metrics.MessagesCreatedTotal.WithLabelValues(kind).Inc()
	metrics.SentimentScore.Observe(message.SentimentScore)

	return message, user, nil
}

// DeleteMessage removes a message and its whole reply subtree.
func (s *Service) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	return s.messages.Delete(ctx, messageID)
}

// CreateReaction routes a reaction proposal through the guard after resolving
// the message and user. Returns the message's up-to-date per-kind totals.
func (s *Service) CreateReaction(ctx context.Context, messageID, userID uuid.UUID, kind domain.ReactionKind) (domain.ReactionTotals, error) {
	if _, err := s.messages.GetByID(ctx, messageID); err != nil {
		return domain.ReactionTotals{}, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return domain.ReactionTotals{}, err
	}

	totals, err := s.guard.Propose(ctx, messageID, userID, kind)
	switch {
	case err == nil:
		metrics.ReactionsTotal.WithLabelValues(string(kind), "accepted").Inc()
	case errors.Is(err, domain.ErrDuplicateReaction):
		metrics.ReactionsTotal.WithLabelValues(string(kind), "duplicate").Inc()
	case errors.Is(err, domain.ErrInvalidReactionKind):
		metrics.ReactionsTotal.WithLabelValues(string(kind), "invalid_kind").Inc()
	default:
		metrics.ReactionsTotal.WithLabelValues(string(kind), "error").Inc()
	}
	return totals, err
}

// CreateCommunity validates and persists a new community.
func (s *Service) CreateCommunity(ctx context.Context, in domain.NewCommunity) (*domain.Community, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError().Add("name", "can't be blank")
	}

	community := &domain.Community{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if err := s.communities.Create(ctx, community); err != nil {
		return nil, err
	}
	return community, nil
}

func (s *Service) ListCommunities(ctx context.Context) ([]domain.Community, error) {
	return s.communities.List(ctx)
}

// DeleteCommunity removes a community and, by cascade, its messages and
// their reactions.
func (s *Service) DeleteCommunity(ctx context.Context, communityID uuid.UUID) error {
	return s.communities.Delete(ctx, communityID)
}

// TopMessages returns the community's engagement ranking, consulting the
// analytics cache when one is configured. Cache failures degrade to a
// recompute, never to a request failure.
func (s *Service) TopMessages(ctx context.Context, communityID uuid.UUID, limit int) ([]domain.RankedMessage, error) {
	limit = analytics.ClampLimit(limit)
	key := fmt.Sprintf("top_messages:%s:%d", communityID, limit)

	var cached []domain.RankedMessage
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	timer := metrics.QueryTimer("top_messages")
	ranked, err := s.ranker.TopMessages(ctx, communityID, limit)
	timer.ObserveDuration()
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, ranked)
	return ranked, nil
}

// SuspiciousIPs returns the shared-IP report, consulting the analytics cache
// when one is configured.
func (s *Service) SuspiciousIPs(ctx context.Context, minUsers int) ([]domain.SuspiciousIP, error) {
	if minUsers <= 0 {
		minUsers = analytics.DefaultMinUsers
	}
	key := fmt.Sprintf("suspicious_ips:%d", minUsers)

	var cached []domain.SuspiciousIP
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	timer := metrics.QueryTimer("suspicious_ips")
	flagged, err := s.detector.SuspiciousIPs(ctx, minUsers)
	timer.ObserveDuration()
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, flagged)
	return flagged, nil
}

func (s *Service) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		slog.Warn("Analytics cache read failed", "key", key, "error", err)
		return false
	}
	return found
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		slog.Warn("Analytics cache write failed", "key", key, "error", err)
	}
}
