package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thaisassuncao/community-app/internal/domain"
)

// reactionUniqueConstraint guards one reaction per (message, user, kind).
const reactionUniqueConstraint = "reactions_message_user_kind_key"

// ReactionRepo implements domain.ReactionRepository backed by PostgreSQL.
// The unique constraint on (message_id, user_id, kind) is the authoritative
// duplicate check; Exists is only a fast path on top of it.
type ReactionRepo struct {
	pool *pgxpool.Pool
}

func NewReactionRepo(pool *pgxpool.Pool) *ReactionRepo {
	return &ReactionRepo{pool: pool}
}

func (r *ReactionRepo) Exists(ctx context.Context, messageID, userID uuid.UUID, kind domain.ReactionKind) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reactions
			WHERE message_id = $1 AND user_id = $2 AND kind = $3
		)
	`, messageID, userID, string(kind)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reaction existence: %w", err)
	}
	return exists, nil
}

func (r *ReactionRepo) Create(ctx context.Context, reaction *domain.Reaction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reactions (id, message_id, user_id, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, reaction.ID, reaction.MessageID, reaction.UserID, string(reaction.Kind), reaction.CreatedAt)
	if isUniqueViolation(err, reactionUniqueConstraint) {
		return domain.ErrDuplicateReaction
	}
	if err != nil {
		return fmt.Errorf("failed to create reaction: %w", err)
	}
	return nil
}

func (r *ReactionRepo) CountByKind(ctx context.Context, messageID uuid.UUID) (map[domain.ReactionKind]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT kind, COUNT(*) FROM reactions WHERE message_id = $1 GROUP BY kind
	`, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ReactionKind]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan reaction count: %w", err)
		}
		counts[domain.ReactionKind(kind)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reaction counts: %w", err)
	}
	return counts, nil
}
