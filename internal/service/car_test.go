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

const (
	ownerID    int64 = 10
	strangerID int64 = 99
	testCarID  int64 = 5
)

func newCarService(t *testing.T) (*mocks.MockCarRepository, *CarService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	carRepo := mocks.NewMockCarRepository(ctrl)
	svc := NewCarService(CarServiceOptions{Cars: carRepo})
	return carRepo, svc
}

func ownedCar() *model.Car {
	return &model.Car{
		ID:     testCarID,
		Make:   "Mazda",
		Model:  "MX-5",
		Year:   1999,
		UserID: ownerID,
	}
}

func TestCarService_Create_Success(t *testing.T) {
	t.Parallel()
	carRepo, svc := newCarService(t)

	req := &model.CreateCarRequest{Make: "Mazda", Model: "MX-5", Year: 1999}
	carRepo.EXPECT().Create(gomock.Any(), ownerID, req).Return(ownedCar(), nil)

	car, err := svc.Create(context.Background(), ownerID, req)
	require.NoError(t, err)
	assert.Equal(t, testCarID, car.ID)
}

func TestCarService_Create_InvalidYear(t *testing.T) {
	t.Parallel()
	_, svc := newCarService(t)

	_, err := svc.Create(context.Background(), ownerID, &model.CreateCarRequest{
		Make:  "Mazda",
		Model: "MX-5",
		Year:  1700,
	})

	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCarService_Create_ImageHostNotAllowed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := NewCarService(CarServiceOptions{
		Cars:   mocks.NewMockCarRepository(ctrl),
		Images: newTestImageValidator(),
	})

	_, err := svc.Create(context.Background(), ownerID, &model.CreateCarRequest{
		Make:     "Mazda",
		Model:    "MX-5",
		Year:     1999,
		ImageURL: stringPtr("https://evil.example.org/car.jpg"),
	})

	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCarService_Update_Owner(t *testing.T) {
	t.Parallel()
	carRepo, svc := newCarService(t)

	req := model.UpdateCarRequest{Trim: stringPtr("Sport")}
	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)
	carRepo.EXPECT().Update(gomock.Any(), testCarID, req).Return(ownedCar(), nil)

	_, err := svc.Update(context.Background(), ownerID, testCarID, req)
	require.NoError(t, err)
}

func TestCarService_Update_NotOwner(t *testing.T) {
	t.Parallel()
	carRepo, svc := newCarService(t)

	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)

	_, err := svc.Update(context.Background(), strangerID, testCarID, model.UpdateCarRequest{
		Trim: stringPtr("Sport"),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCarService_Update_NotFound(t *testing.T) {
	t.Parallel()
	carRepo, svc := newCarService(t)

	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(nil, data.ErrCarNotFound)

	_, err := svc.Update(context.Background(), ownerID, testCarID, model.UpdateCarRequest{
		Trim: stringPtr("Sport"),
	})
	assert.ErrorIs(t, err, data.ErrCarNotFound)
}

func TestCarService_Delete_Owner(t *testing.T) {
	t.Parallel()
	carRepo, svc := newCarService(t)

	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)
	carRepo.EXPECT().Delete(gomock.Any(), testCarID).Return(true, nil)

	require.NoError(t, svc.Delete(context.Background(), ownerID, testCarID))
}

func TestCarService_Delete_NotOwner(t *testing.T) {
	t.Parallel()
	carRepo, svc := newCarService(t)

	carRepo.EXPECT().GetByID(gomock.Any(), testCarID).Return(ownedCar(), nil)

	err := svc.Delete(context.Background(), strangerID, testCarID)
	assert.ErrorIs(t, err, ErrForbidden)
}
