package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratakit/strata/errors"
)

func seedUser(name, email string, createdAt time.Time) User {
	return User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func TestMemoryRepositoryCreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	u := seedUser("Ada", "ada@example.com", time.Now().UTC())

	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = repo.GetByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestMemoryRepositoryDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, seedUser("Ada", "ada@example.com", time.Now())))
	err := repo.Create(ctx, seedUser("Grace", "ada@example.com", time.Now()))

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeAlreadyExists, appErr.Code)
}

func TestMemoryRepositoryGetMissing(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetByID(context.Background(), uuid.New())

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestMemoryRepositoryListOrdering(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Now().UTC()

	second := seedUser("B", "b@example.com", base.Add(time.Minute))
	first := seedUser("A", "a@example.com", base)
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)
}

func TestMemoryRepositoryUpdateEmailConflict(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	ada := seedUser("Ada", "ada@example.com", time.Now())
	grace := seedUser("Grace", "grace@example.com", time.Now())
	require.NoError(t, repo.Create(ctx, ada))
	require.NoError(t, repo.Create(ctx, grace))

	grace.Email = "ada@example.com"
	err := repo.Update(ctx, grace)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeAlreadyExists, appErr.Code)
}

func TestMemoryRepositoryUpdateReleasesOldEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	ada := seedUser("Ada", "ada@example.com", time.Now())
	require.NoError(t, repo.Create(ctx, ada))

	ada.Email = "lovelace@example.com"
	require.NoError(t, repo.Update(ctx, ada))

	// old address is free again
	require.NoError(t, repo.Create(ctx, seedUser("Other", "ada@example.com", time.Now())))
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u := seedUser("Ada", "ada@example.com", time.Now())
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.Delete(ctx, u.ID))

	_, err := repo.GetByID(ctx, u.ID)
	assert.Error(t, err)

	err = repo.Delete(ctx, u.ID)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}
