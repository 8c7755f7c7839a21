package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebbPulse/carmodpicker/internal/core"
	"github.com/WebbPulse/carmodpicker/internal/testutil"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	created, err := repo.Create(ctx, core.CreateUserParams{
		Username:     "driver",
		Email:        "Driver@Example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "driver", created.Username)
	assert.Equal(t, "driver@example.com", created.Email, "emails are stored lowercased")
	assert.False(t, created.Disabled)
	assert.False(t, created.EmailVerified)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, byID.Username)

	byName, err := repo.GetByUsername(ctx, "driver")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := repo.GetByEmail(ctx, "DRIVER@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestUserRepo_DuplicateUsernameAndEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	_, err := repo.Create(ctx, core.CreateUserParams{
		Username: "driver", Email: "driver@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, core.CreateUserParams{
		Username: "driver", Email: "other@example.com", PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, ErrUsernameExists)

	_, err = repo.Create(ctx, core.CreateUserParams{
		Username: "other", Email: "driver@example.com", PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserRepo_GetMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	_, err := repo.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepo_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	created, err := repo.Create(ctx, core.CreateUserParams{
		Username: "driver", Email: "driver@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)

	newName := "racer"
	newImage := "https://i.imgur.com/a.png"
	updated, err := repo.Update(ctx, created.ID, core.UpdateUserParams{
		Username: &newName,
		ImageURL: &newImage,
	})
	require.NoError(t, err)
	assert.Equal(t, "racer", updated.Username)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, newImage, *updated.ImageURL)
	assert.Equal(t, "driver@example.com", updated.Email, "untouched fields survive")
}

func TestUserRepo_SetEmailVerifiedAndPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	created, err := repo.Create(ctx, core.CreateUserParams{
		Username: "driver", Email: "driver@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)

	verified, err := repo.SetEmailVerified(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, verified.EmailVerified)

	require.NoError(t, repo.SetPasswordHash(ctx, created.ID, "newhash"))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", got.PasswordHash)
}
