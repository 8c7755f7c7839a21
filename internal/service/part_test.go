package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/WebbPulse/carmodpicker/internal/data"
	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/mocks"
)

const testPartID int64 = 3

type partFixture struct {
	parts      *mocks.MockPartRepository
	buildLists *mocks.MockBuildListRepository
	cars       *mocks.MockCarRepository
	svc        *PartService
}

func newPartFixture(t *testing.T) *partFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &partFixture{
		parts:      mocks.NewMockPartRepository(ctrl),
		buildLists: mocks.NewMockBuildListRepository(ctrl),
		cars:       mocks.NewMockCarRepository(ctrl),
	}
	f.svc = NewPartService(PartServiceOptions{
		Parts:      f.parts,
		BuildLists: f.buildLists,
		Cars:       f.cars,
	})
	return f
}

func ownedPart() *model.Part {
	return &model.Part{
		ID:          testPartID,
		Name:        "Coilovers",
		BuildListID: testBuildListID,
	}
}

// expectOwnershipChain wires the part's build list and car lookups that
// resolve the owning user.
func (f *partFixture) expectOwnershipChain() {
	f.buildLists.EXPECT().GetByID(gomock.Any(), testBuildListID).Return(ownedBuildList(), nil)
	f.cars.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)
}

func TestPartService_Create_OwnBuildList(t *testing.T) {
	t.Parallel()
	f := newPartFixture(t)

	req := &model.CreatePartRequest{Name: "Coilovers", BuildListID: testBuildListID}
	f.expectOwnershipChain()
	f.parts.EXPECT().Create(gomock.Any(), req).Return(ownedPart(), nil)

	part, err := f.svc.Create(context.Background(), ownerID, req)
	require.NoError(t, err)
	assert.Equal(t, testPartID, part.ID)
}

func TestPartService_Create_SomeoneElsesBuildList(t *testing.T) {
	t.Parallel()
	f := newPartFixture(t)

	f.expectOwnershipChain()

	_, err := f.svc.Create(context.Background(), strangerID, &model.CreatePartRequest{
		Name:        "Coilovers",
		BuildListID: testBuildListID,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPartService_Create_NegativePrice(t *testing.T) {
	t.Parallel()
	f := newPartFixture(t)

	price := -10.0
	_, err := f.svc.Create(context.Background(), ownerID, &model.CreatePartRequest{
		Name:        "Coilovers",
		BuildListID: testBuildListID,
		Price:       &price,
	})

	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPartService_ListByBuildList_MustExist(t *testing.T) {
	t.Parallel()
	f := newPartFixture(t)

	f.buildLists.EXPECT().GetByID(gomock.Any(), testBuildListID).Return(nil, data.ErrBuildListNotFound)

	_, err := f.svc.ListByBuildList(context.Background(), testBuildListID, 50, 0)
	assert.ErrorIs(t, err, data.ErrBuildListNotFound)
}

func TestPartService_Update_Owner(t *testing.T) {
	t.Parallel()
	f := newPartFixture(t)

	req := model.UpdatePartRequest{Manufacturer: stringPtr("Ohlins")}
	f.parts.EXPECT().GetByID(gomock.Any(), testPartID).Return(ownedPart(), nil)
	f.expectOwnershipChain()
	f.parts.EXPECT().Update(gomock.Any(), testPartID, req).Return(ownedPart(), nil)

	_, err := f.svc.Update(context.Background(), ownerID, testPartID, req)
	require.NoError(t, err)
}

func TestPartService_Update_NotOwner(t *testing.T) {
	t.Parallel()
	f := newPartFixture(t)

	f.parts.EXPECT().GetByID(gomock.Any(), testPartID).Return(ownedPart(), nil)
	f.expectOwnershipChain()

	_, err := f.svc.Update(context.Background(), strangerID, testPartID, model.UpdatePartRequest{
		Manufacturer: stringPtr("Ohlins"),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPartService_Delete_Owner(t *testing.T) {
	t.Parallel()
	f := newPartFixture(t)

	f.parts.EXPECT().GetByID(gomock.Any(), testPartID).Return(ownedPart(), nil)
	f.expectOwnershipChain()
	f.parts.EXPECT().Delete(gomock.Any(), testPartID).Return(true, nil)

	require.NoError(t, f.svc.Delete(context.Background(), ownerID, testPartID))
}

func TestPartService_Delete_PartNotFound(t *testing.T) {
	t.Parallel()
	f := newPartFixture(t)

	f.parts.EXPECT().GetByID(gomock.Any(), testPartID).Return(nil, data.ErrPartNotFound)

	err := f.svc.Delete(context.Background(), ownerID, testPartID)
	assert.ErrorIs(t, err, data.ErrPartNotFound)
}
