package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/testutil"
)

func TestCarRepo_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewCarRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")

	trim := "GT"
	vin := "1HGBH41JXMN109186"
	created, err := repo.Create(ctx, ownerID, &model.CreateCarRequest{
		Make:  "Ford",
		Model: "Mustang",
		Year:  2015,
		Trim:  &trim,
		VIN:   &vin,
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, ownerID, created.UserID)
	require.NotNil(t, created.VIN)
	assert.Equal(t, vin, *created.VIN)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mustang", got.Model)

	newModel := "Mustang Mach 1"
	newYear := 2021
	updated, err := repo.Update(ctx, created.ID, model.UpdateCarRequest{
		Model: &newModel,
		Year:  &newYear,
	})
	require.NoError(t, err)
	assert.Equal(t, newModel, updated.Model)
	assert.Equal(t, newYear, updated.Year)
	assert.Equal(t, "Ford", updated.Make, "untouched fields survive")

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCarNotFound)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete finds nothing")
}

func TestCarRepo_DuplicateVIN(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewCarRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")

	vin := "1HGBH41JXMN109186"
	_, err := repo.Create(ctx, ownerID, &model.CreateCarRequest{
		Make: "Ford", Model: "Mustang", Year: 2015, VIN: &vin,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, ownerID, &model.CreateCarRequest{
		Make: "Ford", Model: "Mustang", Year: 2016, VIN: &vin,
	})
	assert.ErrorIs(t, err, ErrVINExists)
}

func TestCarRepo_ListByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewCarRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")
	otherID := testutil.SeedUser(t, db, "other", "other@example.com")

	testutil.SeedCar(t, db, ownerID, "Mazda", "MX-5", 1999)
	testutil.SeedCar(t, db, ownerID, "Honda", "Civic", 2005)
	testutil.SeedCar(t, db, otherID, "Toyota", "Supra", 1998)

	cars, err := repo.ListByUser(ctx, ownerID, 10, 0)
	require.NoError(t, err)
	require.Len(t, cars, 2)
	for _, c := range cars {
		assert.Equal(t, ownerID, c.UserID)
	}

	page, err := repo.ListByUser(ctx, ownerID, 1, 1)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	empty, err := repo.ListByUser(ctx, 999999, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// Deleting a user takes their cars with them.
func TestCarRepo_CascadeFromUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewCarRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")
	carID := testutil.SeedCar(t, db, ownerID, "Mazda", "MX-5", 1999)

	_, err := db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, ownerID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, carID)
	assert.ErrorIs(t, err, ErrCarNotFound)
}
