package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thaisassuncao/community-app/internal/domain"
)

func TestFindOrCreate_CreatesOnFirstUse(t *testing.T) {
	pool := setupTestDB(t)
	userRepo := NewUserRepo(pool)
	ctx := context.Background()

	user, err := userRepo.FindOrCreate(ctx, "joana")
	require.NoError(t, err)
	assert.Equal(t, "joana", user.Username)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestFindOrCreate_ReturnsExistingUser(t *testing.T) {
	pool := setupTestDB(t)
	userRepo := NewUserRepo(pool)
	ctx := context.Background()

	first, err := userRepo.FindOrCreate(ctx, "joana")
	require.NoError(t, err)

	second, err := userRepo.FindOrCreate(ctx, "joana")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// Distinct usernames get distinct users
	other, err := userRepo.FindOrCreate(ctx, "pedro")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestGetUserByID(t *testing.T) {
	pool := setupTestDB(t)
	userRepo := NewUserRepo(pool)
	ctx := context.Background()

	created, err := userRepo.FindOrCreate(ctx, "joana")
	require.NoError(t, err)

	user, err := userRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "joana", user.Username)
}

func TestGetUserByID_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	userRepo := NewUserRepo(pool)
	ctx := context.Background()

	user, err := userRepo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
}
