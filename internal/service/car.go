package service

import (
	"context"

	"github.com/WebbPulse/carmodpicker/internal/core"
	"github.com/WebbPulse/carmodpicker/internal/data"
	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/imageurl"
)

// CarServiceOptions groups dependencies for CarService.
type CarServiceOptions struct {
	Cars   core.CarRepository
	Images *imageurl.Validator
}

// CarService handles the car CRUD. Any authenticated user can read a
// car; only the owner can change or delete it.
type CarService struct {
	cars   core.CarRepository
	images *imageurl.Validator
}

// NewCarService constructs a new CarService.
func NewCarService(opts CarServiceOptions) *CarService {
	images := opts.Images
	if images == nil {
		images = imageurl.NewValidator(nil)
	}
	return &CarService{cars: opts.Cars, images: images}
}

// Create validates and stores a new car owned by actorID.
func (s *CarService) Create(ctx context.Context, actorID int64, req *model.CreateCarRequest) (*model.Car, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := validateImageURL(s.images, req.ImageURL); err != nil {
		return nil, err
	}
	return s.cars.Create(ctx, actorID, req)
}

// Get returns a car by ID.
func (s *CarService) Get(ctx context.Context, id int64) (*model.Car, error) {
	return s.cars.GetByID(ctx, id)
}

// ListByUser returns a page of cars owned by userID.
func (s *CarService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Car, error) {
	return s.cars.ListByUser(ctx, userID, limit, offset)
}

// Update applies changes to a car the actor owns.
func (s *CarService) Update(ctx context.Context, actorID, carID int64, req model.UpdateCarRequest) (*model.Car, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := validateImageURL(s.images, req.ImageURL); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, actorID, carID); err != nil {
		return nil, err
	}
	return s.cars.Update(ctx, carID, req)
}

// Delete removes a car the actor owns. Cascades take the car's build
// lists and their parts with it.
func (s *CarService) Delete(ctx context.Context, actorID, carID int64) error {
	if err := s.requireOwner(ctx, actorID, carID); err != nil {
		return err
	}
	deleted, err := s.cars.Delete(ctx, carID)
	if err != nil {
		return err
	}
	if !deleted {
		return data.ErrCarNotFound
	}
	return nil
}

func (s *CarService) requireOwner(ctx context.Context, actorID, carID int64) error {
	car, err := s.cars.GetByID(ctx, carID)
	if err != nil {
		return err
	}
	if car.UserID != actorID {
		return ErrForbidden
	}
	return nil
}
