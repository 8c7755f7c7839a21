package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/WebbPulse/carmodpicker/internal/core"
	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/mocks"
	mockauth "github.com/WebbPulse/carmodpicker/internal/mocks/auth"
)

func newUserService(t *testing.T) (*mocks.MockUserRepository, *UserService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(UserServiceOptions{
		Users:  userRepo,
		Hasher: mockauth.FakeHasher{},
	})
	return userRepo, svc
}

func TestUserService_Update_Self(t *testing.T) {
	t.Parallel()
	userRepo, svc := newUserService(t)

	userRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(activeUser(), nil)
	userRepo.EXPECT().
		Update(gomock.Any(), int64(42), core.UpdateUserParams{Username: stringPtr("newname")}).
		Return(activeUser(), nil)

	_, err := svc.Update(context.Background(), 42, 42, &model.UpdateUserRequest{
		Username:        stringPtr("newname"),
		CurrentPassword: "correct-horse",
	})
	require.NoError(t, err)
}

func TestUserService_Update_OtherUser(t *testing.T) {
	t.Parallel()
	_, svc := newUserService(t)

	_, err := svc.Update(context.Background(), 42, 99, &model.UpdateUserRequest{
		Username:        stringPtr("newname"),
		CurrentPassword: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserService_Update_WrongCurrentPassword(t *testing.T) {
	t.Parallel()
	userRepo, svc := newUserService(t)

	userRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(activeUser(), nil)

	_, err := svc.Update(context.Background(), 42, 42, &model.UpdateUserRequest{
		Username:        stringPtr("newname"),
		CurrentPassword: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Update_NoFields(t *testing.T) {
	t.Parallel()
	_, svc := newUserService(t)

	_, err := svc.Update(context.Background(), 42, 42, &model.UpdateUserRequest{
		CurrentPassword: "correct-horse",
	})

	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUserService_Update_NewPasswordIsHashed(t *testing.T) {
	t.Parallel()
	userRepo, svc := newUserService(t)

	userRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(activeUser(), nil)
	userRepo.EXPECT().
		Update(gomock.Any(), int64(42), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, params core.UpdateUserParams) (*model.User, error) {
			require.NotNil(t, params.PasswordHash)
			assert.Equal(t, "hashed:brand-new-pass", *params.PasswordHash)
			return activeUser(), nil
		})

	_, err := svc.Update(context.Background(), 42, 42, &model.UpdateUserRequest{
		Password:        stringPtr("brand-new-pass"),
		CurrentPassword: "correct-horse",
	})
	require.NoError(t, err)
}

func TestUserService_Update_ImageHostNotAllowed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := NewUserService(UserServiceOptions{
		Users:  mocks.NewMockUserRepository(ctrl),
		Hasher: mockauth.FakeHasher{},
		Images: newTestImageValidator(),
	})

	_, err := svc.Update(context.Background(), 42, 42, &model.UpdateUserRequest{
		ImageURL:        stringPtr("https://files.example.net/me.png"),
		CurrentPassword: "correct-horse",
	})

	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}
