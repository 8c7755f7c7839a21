// Package core defines repository interfaces for the catalog domain.
// The core defines interfaces and the data layer provides implementations.
package core

import (
	"context"

	"github.com/WebbPulse/carmodpicker/internal/domain/model"
)

// CreateUserParams carries the persisted fields for a new account.
// The password arrives here already hashed.
type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
}

// UpdateUserParams carries optional profile changes. A new password arrives
// already hashed.
type UpdateUserParams struct {
	Username     *string
	Email        *string
	Disabled     *bool
	PasswordHash *string
	ImageURL     *string
}

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id int64, params UpdateUserParams) (*model.User, error)
	SetEmailVerified(ctx context.Context, id int64) (*model.User, error)
	SetPasswordHash(ctx context.Context, id int64, hash string) error
}

// CarRepository persists cars.
type CarRepository interface {
	Create(ctx context.Context, userID int64, req *model.CreateCarRequest) (*model.Car, error)
	GetByID(ctx context.Context, id int64) (*model.Car, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Car, error)
	Update(ctx context.Context, id int64, req model.UpdateCarRequest) (*model.Car, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// BuildListRepository persists build lists.
type BuildListRepository interface {
	Create(ctx context.Context, req *model.CreateBuildListRequest) (*model.BuildList, error)
	GetByID(ctx context.Context, id int64) (*model.BuildList, error)
	ListByCar(ctx context.Context, carID int64, limit, offset int) ([]*model.BuildList, error)
	Update(ctx context.Context, id int64, req model.UpdateBuildListRequest) (*model.BuildList, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PartRepository persists parts.
type PartRepository interface {
	Create(ctx context.Context, req *model.CreatePartRequest) (*model.Part, error)
	GetByID(ctx context.Context, id int64) (*model.Part, error)
	ListByBuildList(ctx context.Context, buildListID int64, limit, offset int) ([]*model.Part, error)
	Update(ctx context.Context, id int64, req model.UpdatePartRequest) (*model.Part, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
