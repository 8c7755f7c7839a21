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

const testBuildListID int64 = 7

func newBuildListService(t *testing.T) (*mocks.MockBuildListRepository, *mocks.MockCarRepository, *BuildListService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	blRepo := mocks.NewMockBuildListRepository(ctrl)
	carRepo := mocks.NewMockCarRepository(ctrl)
	svc := NewBuildListService(BuildListServiceOptions{
		BuildLists: blRepo,
		Cars:       carRepo,
	})
	return blRepo, carRepo, svc
}

func ownedBuildList() *model.BuildList {
	return &model.BuildList{
		ID:    testBuildListID,
		Name:  "Track day",
		CarID: testCarID,
	}
}

func TestBuildListService_Create_OwnCar(t *testing.T) {
	t.Parallel()
	blRepo, carRepo, svc := newBuildListService(t)

	req := &model.CreateBuildListRequest{Name: "Track day", CarID: testCarID}
	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)
	blRepo.EXPECT().Create(gomock.Any(), req).Return(ownedBuildList(), nil)

	bl, err := svc.Create(context.Background(), ownerID, req)
	require.NoError(t, err)
	assert.Equal(t, testBuildListID, bl.ID)
}

func TestBuildListService_Create_SomeoneElsesCar(t *testing.T) {
	t.Parallel()
	_, carRepo, svc := newBuildListService(t)

	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)

	_, err := svc.Create(context.Background(), strangerID, &model.CreateBuildListRequest{
		Name:  "Track day",
		CarID: testCarID,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBuildListService_Create_CarNotFound(t *testing.T) {
	t.Parallel()
	_, carRepo, svc := newBuildListService(t)

	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(nil, data.ErrCarNotFound)

	_, err := svc.Create(context.Background(), ownerID, &model.CreateBuildListRequest{
		Name:  "Track day",
		CarID: testCarID,
	})
	assert.ErrorIs(t, err, data.ErrCarNotFound)
}

func TestBuildListService_ListByCar_CarMustExist(t *testing.T) {
	t.Parallel()
	_, carRepo, svc := newBuildListService(t)

	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(nil, data.ErrCarNotFound)

	_, err := svc.ListByCar(context.Background(), testCarID, 50, 0)
	assert.ErrorIs(t, err, data.ErrCarNotFound)
}

func TestBuildListService_Update_Owner(t *testing.T) {
	t.Parallel()
	blRepo, carRepo, svc := newBuildListService(t)

	req := model.UpdateBuildListRequest{Name: stringPtr("Street build")}
	blRepo.EXPECT().GetByID(gomock.Any(), testBuildListID).Return(ownedBuildList(), nil)
	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)
	blRepo.EXPECT().Update(gomock.Any(), testBuildListID, req).Return(ownedBuildList(), nil)

	_, err := svc.Update(context.Background(), ownerID, testBuildListID, req)
	require.NoError(t, err)
}

func TestBuildListService_Update_MoveRequiresOwningDestinationCar(t *testing.T) {
	t.Parallel()
	blRepo, carRepo, svc := newBuildListService(t)

	otherCar := &model.Car{ID: 6, Make: "Honda", Model: "Civic", Year: 2001, UserID: strangerID}

	blRepo.EXPECT().GetByID(gomock.Any(), testBuildListID).Return(ownedBuildList(), nil)
	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)
	carRepo.EXPECT().GetByID(gomock.Any(), int64(6)).Return(otherCar, nil)

	_, err := svc.Update(context.Background(), ownerID, testBuildListID, model.UpdateBuildListRequest{
		CarID: int64Ptr(6),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBuildListService_Delete_NotOwner(t *testing.T) {
	t.Parallel()
	blRepo, carRepo, svc := newBuildListService(t)

	blRepo.EXPECT().GetByID(gomock.Any(), testBuildListID).Return(ownedBuildList(), nil)
	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)

	err := svc.Delete(context.Background(), strangerID, testBuildListID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBuildListService_Delete_Owner(t *testing.T) {
	t.Parallel()
	blRepo, carRepo, svc := newBuildListService(t)

	blRepo.EXPECT().GetByID(gomock.Any(), testBuildListID).Return(ownedBuildList(), nil)
	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)
	blRepo.EXPECT().Delete(gomock.Any(), testBuildListID).Return(true, nil)

	require.NoError(t, svc.Delete(context.Background(), ownerID, testBuildListID))
}
