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

const communityColumns = `id, name, description, created_at`

// CommunityRepo implements domain.CommunityRepository backed by PostgreSQL.
type CommunityRepo struct {
	pool *pgxpool.Pool
}

func NewCommunityRepo(pool *pgxpool.Pool) *CommunityRepo {
	return &CommunityRepo{pool: pool}
}

func (r *CommunityRepo) Create(ctx context.Context, community *domain.Community) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO communities (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`, community.ID, community.Name, community.Description, community.CreatedAt)
	if isUniqueViolation(err, "communities_name_key") {
		return domain.ErrCommunityNameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create community: %w", err)
	}
	return nil
}

func (r *CommunityRepo) GetByID(ctx context.Context, communityID uuid.UUID) (*domain.Community, error) {
	var community domain.Community
	err := r.pool.QueryRow(ctx, `
		SELECT `+communityColumns+` FROM communities WHERE id = $1
	`, communityID).Scan(&community.ID, &community.Name, &community.Description, &community.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCommunityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get community by ID: %w", err)
	}
	return &community, nil
}

func (r *CommunityRepo) List(ctx context.Context) ([]domain.Community, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+communityColumns+` FROM communities ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}
	defer rows.Close()

	communities := make([]domain.Community, 0)
	for rows.Next() {
		var c domain.Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan community: %w", err)
		}
		communities = append(communities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read communities: %w", err)
	}
	return communities, nil
}

// Delete removes a community. Messages cascade at the FK level, and their
// reactions cascade in turn.
func (r *CommunityRepo) Delete(ctx context.Context, communityID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM communities WHERE id = $1`, communityID)
	if err != nil {
		return fmt.Errorf("failed to delete community: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommunityNotFound
	}
	return nil
}
