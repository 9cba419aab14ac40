// Package reaction enforces the one-reaction-per-(message, user, kind)
// invariant for concurrent writers.
package reaction

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/thaisassuncao/community-app/internal/domain"
)

// lockStripes bounds the lock table. Striping keeps memory constant; a hash
// collision between two different triples only costs serialization, never
// correctness.
const lockStripes = 64

// Guard accepts or rejects reaction proposals. Uniqueness is enforced in two
// layers: a per-triple lock plus read check gives concurrent proposals on one
// instance a fast, ordered rejection, and the storage layer's unique
// constraint is the authoritative backstop across instances. The repository
// maps constraint violations to domain.ErrDuplicateReaction, so callers see a
// single error regardless of which layer caught the race.
type Guard struct {
	store domain.ReactionRepository
	clock clockwork.Clock
	locks [lockStripes]sync.Mutex
}

func NewGuard(store domain.ReactionRepository, clock clockwork.Clock) *Guard {
	return &Guard{store: store, clock: clock}
}

func (g *Guard) lockFor(messageID, userID uuid.UUID, kind domain.ReactionKind) *sync.Mutex {
	h := fnv.New32a()
	h.Write(messageID[:])
	h.Write(userID[:])
	h.Write([]byte(kind))
	return &g.locks[h.Sum32()%lockStripes]
}

// Propose validates the kind, checks for an existing identical reaction,
// inserts on the happy path and returns the message's up-to-date per-kind
// totals so the caller can render counts without a follow-up read.
//
// Outcomes: nil error with totals on acceptance,
// domain.ErrInvalidReactionKind for a kind outside the closed set, and
// domain.ErrDuplicateReaction when the triple already exists.
func (g *Guard) Propose(ctx context.Context, messageID, userID uuid.UUID, kind domain.ReactionKind) (domain.ReactionTotals, error) {
	if !kind.Valid() {
		return domain.ReactionTotals{}, fmt.Errorf("%w: %q", domain.ErrInvalidReactionKind, kind)
	}

	lock := g.lockFor(messageID, userID, kind)
	lock.Lock()
	defer lock.Unlock()

	exists, err := g.store.Exists(ctx, messageID, userID, kind)
	if err != nil {
		return domain.ReactionTotals{}, fmt.Errorf("failed to check existing reaction: %w", err)
	}
	if exists {
		return domain.ReactionTotals{}, domain.ErrDuplicateReaction
	}

	reaction := &domain.Reaction{
		ID:        uuid.New(),
		MessageID: messageID,
		UserID:    userID,
		Kind:      kind,
		CreatedAt: g.clock.Now().UTC(),
	}
	if err := g.store.Create(ctx, reaction); err != nil {
		// ErrDuplicateReaction surfaces here when the storage constraint
		// caught a race the read check missed.
		return domain.ReactionTotals{}, err
	}

	counts, err := g.store.CountByKind(ctx, messageID)
	if err != nil {
		return domain.ReactionTotals{}, fmt.Errorf("failed to count reactions: %w", err)
	}
	return domain.TotalsFromCounts(counts), nil
}
