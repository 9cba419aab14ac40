package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thaisassuncao/community-app/internal/domain"
)

const messageColumns = `id, user_id, community_id, parent_message_id, content, user_ip, sentiment_score, created_at`

// MessageRepo implements domain.MessageRepository backed by PostgreSQL.
type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var message domain.Message
	err := row.Scan(
		&message.ID,
		&message.UserID,
		&message.CommunityID,
		&message.ParentID,
		&message.Content,
		&message.UserIP,
		&message.SentimentScore,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepo) Create(ctx context.Context, message *domain.Message) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO messages (id, user_id, community_id, parent_message_id, content, user_ip, sentiment_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, message.ID, message.UserID, message.CommunityID, message.ParentID,
		message.Content, message.UserIP, message.SentimentScore, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *MessageRepo) GetByID(ctx context.Context, messageID uuid.UUID) (*domain.Message, error) {
	message, err := scanMessage(r.pool.QueryRow(ctx, `
		SELECT `+messageColumns+` FROM messages WHERE id = $1
	`, messageID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message by ID: %w", err)
	}
	return message, nil
}

// Delete removes a message and its whole reply subtree in one statement.
// Reactions on the removed messages cascade at the FK level.
func (r *MessageRepo) Delete(ctx context.Context, messageID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		WITH RECURSIVE subtree AS (
			SELECT id FROM messages WHERE id = $1
			UNION ALL
			SELECT m.id FROM messages m JOIN subtree s ON m.parent_message_id = s.id
		)
		DELETE FROM messages WHERE id IN (SELECT id FROM subtree)
	`, messageID)
	if err != nil {
		return fmt.Errorf("failed to delete message subtree: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// ListRootStats loads every root message of a community together with its
// author and the counts engagement ranking needs. Both joins fan out, so the
// counts must be DISTINCT per joined table.
func (r *MessageRepo) ListRootStats(ctx context.Context, communityID uuid.UUID) ([]domain.RootMessageStats, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.user_id, m.community_id, m.parent_message_id, m.content,
		       m.user_ip, m.sentiment_score, m.created_at,
		       u.id, u.username, u.created_at,
		       COUNT(DISTINCT r.id) AS reaction_count,
		       COUNT(DISTINCT c.id) AS reply_count
		FROM messages m
		JOIN users u ON u.id = m.user_id
		LEFT JOIN reactions r ON r.message_id = m.id
		LEFT JOIN messages c ON c.parent_message_id = m.id
		WHERE m.community_id = $1 AND m.parent_message_id IS NULL
		GROUP BY m.id, u.id
	`, communityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list root message stats: %w", err)
	}
	defer rows.Close()

	stats := make([]domain.RootMessageStats, 0)
	for rows.Next() {
		var s domain.RootMessageStats
		err := rows.Scan(
			&s.Message.ID,
			&s.Message.UserID,
			&s.Message.CommunityID,
			&s.Message.ParentID,
			&s.Message.Content,
			&s.Message.UserIP,
			&s.Message.SentimentScore,
			&s.Message.CreatedAt,
			&s.Author.ID,
			&s.Author.Username,
			&s.Author.CreatedAt,
			&s.ReactionCount,
			&s.ReplyCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan root message stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read root message stats: %w", err)
	}
	return stats, nil
}

// ListPosts returns one record per distinct (ip, user) pair across all
// messages, with the username resolved for reporting.
func (r *MessageRepo) ListPosts(ctx context.Context) ([]domain.PostRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT m.user_ip, m.user_id, u.username
		FROM messages m
		JOIN users u ON u.id = m.user_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.PostRecord, 0)
	for rows.Next() {
		var p domain.PostRecord
		if err := rows.Scan(&p.IP, &p.UserID, &p.Username); err != nil {
			return nil, fmt.Errorf("failed to scan post record: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read post records: %w", err)
	}
	return posts, nil
}
