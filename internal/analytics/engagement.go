package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/thaisassuncao/community-app/internal/domain"
)

// Reactions are weighted 1.5x over replies: a reaction is a single click while
// a reply takes composition effort, so replies are the primary signal and
// reactions a cheaper secondary one. The weighting is a product decision, not
// incidental.
const (
	reactionWeight = 1.5
	replyWeight    = 1.0

	// DefaultLimit applies when the caller supplies no limit or a
	// non-positive one.
	DefaultLimit = 10
	// MaxLimit caps caller-supplied limits.
	MaxLimit = 50
)

// RootStatsReader is the subset of message persistence the scorer needs.
type RootStatsReader interface {
	ListRootStats(ctx context.Context, communityID uuid.UUID) ([]domain.RootMessageStats, error)
}

// CommunityReader resolves community existence.
type CommunityReader interface {
	GetByID(ctx context.Context, communityID uuid.UUID) (*domain.Community, error)
}

// Scorer ranks a community's root messages by engagement.
type Scorer struct {
	messages    RootStatsReader
	communities CommunityReader
}

func NewScorer(messages RootStatsReader, communities CommunityReader) *Scorer {
	return &Scorer{messages: messages, communities: communities}
}

// Score computes the engagement score for the given counts.
func Score(reactionCount, replyCount int) float64 {
	return float64(reactionCount)*reactionWeight + float64(replyCount)*replyWeight
}

// ClampLimit normalizes a caller-supplied limit into [1, MaxLimit].
// Non-positive values fall back to DefaultLimit.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// TopMessages returns up to limit root messages of the community, ordered by
// engagement score descending. Ties break by creation time ascending, then by
// id, so the ordering is deterministic. The community must exist; otherwise
// domain.ErrCommunityNotFound is returned with no partial result.
func (s *Scorer) TopMessages(ctx context.Context, communityID uuid.UUID, limit int) ([]domain.RankedMessage, error) {
	if _, err := s.communities.GetByID(ctx, communityID); err != nil {
		return nil, err
	}

	stats, err := s.messages.ListRootStats(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list root messages: %w", err)
	}

	ranked := make([]domain.RankedMessage, 0, len(stats))
	for _, st := range stats {
		ranked = append(ranked, domain.RankedMessage{
			Message:         st.Message,
			Author:          st.Author,
			ReactionCount:   st.ReactionCount,
			ReplyCount:      st.ReplyCount,
			EngagementScore: Score(st.ReactionCount, st.ReplyCount),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].EngagementScore != ranked[j].EngagementScore {
			return ranked[i].EngagementScore > ranked[j].EngagementScore
		}
		if !ranked[i].Message.CreatedAt.Equal(ranked[j].Message.CreatedAt) {
			return ranked[i].Message.CreatedAt.Before(ranked[j].Message.CreatedAt)
		}
		return ranked[i].Message.ID.String() < ranked[j].Message.ID.String()
	})

	limit = ClampLimit(limit)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
