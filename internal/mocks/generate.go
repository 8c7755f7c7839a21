// Package mocks provides mock implementations for testing carmodpicker.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository interfaces in internal/core. Hand-written doubles for the
// auth ports live in the auth subpackage.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockUserRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(user, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_repository_mock.go github.com/WebbPulse/carmodpicker/internal/core UserRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=car_repository_mock.go github.com/WebbPulse/carmodpicker/internal/core CarRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=build_list_repository_mock.go github.com/WebbPulse/carmodpicker/internal/core BuildListRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=part_repository_mock.go github.com/WebbPulse/carmodpicker/internal/core PartRepository
