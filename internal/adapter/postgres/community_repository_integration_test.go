package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thaisassuncao/community-app/internal/domain"
)

func newTestCommunity(name string) *domain.Community {
	return &domain.Community{
		ID:          uuid.New(),
		Name:        name,
		Description: "test community",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestCreateCommunity(t *testing.T) {
	pool := setupTestDB(t)
	communityRepo := NewCommunityRepo(pool)
	ctx := context.Background()

	community := newTestCommunity("golang")
	err := communityRepo.Create(ctx, community)
	require.NoError(t, err)

	got, err := communityRepo.GetByID(ctx, community.ID)
	require.NoError(t, err)
	assert.Equal(t, community.ID, got.ID)
	assert.Equal(t, "golang", got.Name)
	assert.Equal(t, "test community", got.Description)
}

func TestCreateCommunity_NameTaken(t *testing.T) {
	pool := setupTestDB(t)
	communityRepo := NewCommunityRepo(pool)
	ctx := context.Background()

	require.NoError(t, communityRepo.Create(ctx, newTestCommunity("golang")))

	err := communityRepo.Create(ctx, newTestCommunity("golang"))
	assert.ErrorIs(t, err, domain.ErrCommunityNameTaken)
}

func TestGetCommunityByID_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	communityRepo := NewCommunityRepo(pool)
	ctx := context.Background()

	community, err := communityRepo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrCommunityNotFound)
	assert.Nil(t, community)
}

func TestListCommunities_OrderedByName(t *testing.T) {
	pool := setupTestDB(t)
	communityRepo := NewCommunityRepo(pool)
	ctx := context.Background()

	require.NoError(t, communityRepo.Create(ctx, newTestCommunity("rust")))
	require.NoError(t, communityRepo.Create(ctx, newTestCommunity("golang")))
	require.NoError(t, communityRepo.Create(ctx, newTestCommunity("python")))

	communities, err := communityRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, communities, 3)
	assert.Equal(t, "golang", communities[0].Name)
	assert.Equal(t, "python", communities[1].Name)
	assert.Equal(t, "rust", communities[2].Name)
}

func TestDeleteCommunity_CascadesMessages(t *testing.T) {
	pool := setupTestDB(t)
	userRepo := NewUserRepo(pool)
	communityRepo := NewCommunityRepo(pool)
	messageRepo := NewMessageRepo(pool)
	ctx := context.Background()

	user, err := userRepo.FindOrCreate(ctx, "joana")
	require.NoError(t, err)

	community := newTestCommunity("golang")
	require.NoError(t, communityRepo.Create(ctx, community))

	message := newTestMessage(user.ID, community.ID, nil)
	require.NoError(t, messageRepo.Create(ctx, message))

	err = communityRepo.Delete(ctx, community.ID)
	require.NoError(t, err)

	_, err = communityRepo.GetByID(ctx, community.ID)
	assert.ErrorIs(t, err, domain.ErrCommunityNotFound)
	_, err = messageRepo.GetByID(ctx, message.ID)
	assert.ErrorIs(t, err, domain.ErrMessageNotFound)
}

func TestDeleteCommunity_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	communityRepo := NewCommunityRepo(pool)
	ctx := context.Background()

	err := communityRepo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrCommunityNotFound)
}
