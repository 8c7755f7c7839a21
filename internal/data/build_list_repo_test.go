package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/testutil"
)

func TestBuildListRepo_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewBuildListRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")
	carID := testutil.SeedCar(t, db, ownerID, "Mazda", "MX-5", 1999)

	desc := "track day build"
	created, err := repo.Create(ctx, &model.CreateBuildListRequest{
		Name:        "Track",
		Description: &desc,
		CarID:       carID,
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, carID, created.CarID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Track", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)

	newName := "Street"
	updated, err := repo.Update(ctx, created.ID, model.UpdateBuildListRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, carID, updated.CarID)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrBuildListNotFound)
}

func TestBuildListRepo_ListByCar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewBuildListRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")
	carID := testutil.SeedCar(t, db, ownerID, "Mazda", "MX-5", 1999)
	otherCarID := testutil.SeedCar(t, db, ownerID, "Honda", "Civic", 2005)

	testutil.SeedBuildList(t, db, carID, "Track")
	testutil.SeedBuildList(t, db, carID, "Street")
	testutil.SeedBuildList(t, db, otherCarID, "Daily")

	lists, err := repo.ListByCar(ctx, carID, 10, 0)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	for _, bl := range lists {
		assert.Equal(t, carID, bl.CarID)
	}
}

// Moving a build list to another car is an ordinary update.
func TestBuildListRepo_MoveToOtherCar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewBuildListRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")
	carID := testutil.SeedCar(t, db, ownerID, "Mazda", "MX-5", 1999)
	otherCarID := testutil.SeedCar(t, db, ownerID, "Honda", "Civic", 2005)
	listID := testutil.SeedBuildList(t, db, carID, "Track")

	moved, err := repo.Update(ctx, listID, model.UpdateBuildListRequest{CarID: &otherCarID})
	require.NoError(t, err)
	assert.Equal(t, otherCarID, moved.CarID)
}

// Deleting a car takes its build lists with it.
func TestBuildListRepo_CascadeFromCar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewBuildListRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")
	carID := testutil.SeedCar(t, db, ownerID, "Mazda", "MX-5", 1999)
	listID := testutil.SeedBuildList(t, db, carID, "Track")

	_, err := db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, carID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, listID)
	assert.ErrorIs(t, err, ErrBuildListNotFound)
}
