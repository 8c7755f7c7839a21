package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/testutil"
)

func TestPartRepo_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewPartRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")
	carID := testutil.SeedCar(t, db, ownerID, "Mazda", "MX-5", 1999)
	listID := testutil.SeedBuildList(t, db, carID, "Track")

	partType := "suspension"
	price := 1249.99
	created, err := repo.Create(ctx, &model.CreatePartRequest{
		Name:        "Ohlins DFV coilovers",
		PartType:    &partType,
		Price:       &price,
		BuildListID: listID,
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, listID, created.BuildListID)
	require.NotNil(t, created.Price)
	assert.InDelta(t, price, *created.Price, 0.001)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ohlins DFV coilovers", got.Name)

	newPrice := 1100.00
	manufacturer := "Ohlins"
	updated, err := repo.Update(ctx, created.ID, model.UpdatePartRequest{
		Price:        &newPrice,
		Manufacturer: &manufacturer,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Price)
	assert.InDelta(t, newPrice, *updated.Price, 0.001)
	require.NotNil(t, updated.Manufacturer)
	assert.Equal(t, manufacturer, *updated.Manufacturer)
	assert.Equal(t, "Ohlins DFV coilovers", updated.Name, "untouched fields survive")

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPartNotFound)
}

func TestPartRepo_ListByBuildList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewPartRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")
	carID := testutil.SeedCar(t, db, ownerID, "Mazda", "MX-5", 1999)
	listID := testutil.SeedBuildList(t, db, carID, "Track")
	otherListID := testutil.SeedBuildList(t, db, carID, "Street")

	testutil.SeedPart(t, db, listID, "coilovers")
	testutil.SeedPart(t, db, listID, "sway bar")
	testutil.SeedPart(t, db, otherListID, "exhaust")

	parts, err := repo.ListByBuildList(ctx, listID, 10, 0)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	for _, p := range parts {
		assert.Equal(t, listID, p.BuildListID)
	}

	page, err := repo.ListByBuildList(ctx, listID, 1, 0)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

// Deleting a build list takes its parts with it.
func TestPartRepo_CascadeFromBuildList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewPartRepo(db)

	ownerID := testutil.SeedUser(t, db, "driver", "driver@example.com")
	carID := testutil.SeedCar(t, db, ownerID, "Mazda", "MX-5", 1999)
	listID := testutil.SeedBuildList(t, db, carID, "Track")
	partID := testutil.SeedPart(t, db, listID, "coilovers")

	_, err := db.ExecContext(ctx, `DELETE FROM build_lists WHERE id = $1`, listID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, partID)
	assert.ErrorIs(t, err, ErrPartNotFound)
}
