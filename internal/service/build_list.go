package service

import (
	"context"

	"github.com/WebbPulse/carmodpicker/internal/core"
	"github.com/WebbPulse/carmodpicker/internal/data"
	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/imageurl"
)

// BuildListServiceOptions groups dependencies for BuildListService.
type BuildListServiceOptions struct {
	BuildLists core.BuildListRepository
	Cars       core.CarRepository
	Images     *imageurl.Validator
}

// BuildListService handles the build list CRUD. Ownership follows the
// car: whoever owns the car owns its build lists.
type BuildListService struct {
	buildLists core.BuildListRepository
	cars       core.CarRepository
	images     *imageurl.Validator
}

// NewBuildListService constructs a new BuildListService.
func NewBuildListService(opts BuildListServiceOptions) *BuildListService {
	images := opts.Images
	if images == nil {
		images = imageurl.NewValidator(nil)
	}
	return &BuildListService{
		buildLists: opts.BuildLists,
		cars:       opts.Cars,
		images:     images,
	}
}

// Create validates and stores a new build list on a car the actor owns.
func (s *BuildListService) Create(ctx context.Context, actorID int64, req *model.CreateBuildListRequest) (*model.BuildList, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := validateImageURL(s.images, req.ImageURL); err != nil {
		return nil, err
	}
	if err := s.requireCarOwner(ctx, actorID, req.CarID); err != nil {
		return nil, err
	}
	return s.buildLists.Create(ctx, req)
}

// Get returns a build list by ID.
func (s *BuildListService) Get(ctx context.Context, id int64) (*model.BuildList, error) {
	return s.buildLists.GetByID(ctx, id)
}

// ListByCar returns a page of build lists attached to a car.
func (s *BuildListService) ListByCar(ctx context.Context, carID int64, limit, offset int) ([]*model.BuildList, error) {
	if _, err := s.cars.GetByID(ctx, carID); err != nil {
		return nil, err
	}
	return s.buildLists.ListByCar(ctx, carID, limit, offset)
}

// Update applies changes to a build list on a car the actor owns. Moving
// a build list to another car requires owning the destination car too.
func (s *BuildListService) Update(ctx context.Context, actorID, buildListID int64, req model.UpdateBuildListRequest) (*model.BuildList, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := validateImageURL(s.images, req.ImageURL); err != nil {
		return nil, err
	}
	if err := s.requireBuildListOwner(ctx, actorID, buildListID); err != nil {
		return nil, err
	}
	if req.CarID != nil {
		if err := s.requireCarOwner(ctx, actorID, *req.CarID); err != nil {
			return nil, err
		}
	}
	return s.buildLists.Update(ctx, buildListID, req)
}

// Delete removes a build list the actor owns through its car.
func (s *BuildListService) Delete(ctx context.Context, actorID, buildListID int64) error {
	if err := s.requireBuildListOwner(ctx, actorID, buildListID); err != nil {
		return err
	}
	deleted, err := s.buildLists.Delete(ctx, buildListID)
	if err != nil {
		return err
	}
	if !deleted {
		return data.ErrBuildListNotFound
	}
	return nil
}

func (s *BuildListService) requireCarOwner(ctx context.Context, actorID, carID int64) error {
	car, err := s.cars.GetByID(ctx, carID)
	if err != nil {
		return err
	}
	if car.UserID != actorID {
		return ErrForbidden
	}
	return nil
}

func (s *BuildListService) requireBuildListOwner(ctx context.Context, actorID, buildListID int64) error {
	bl, err := s.buildLists.GetByID(ctx, buildListID)
	if err != nil {
		return err
	}
	return s.requireCarOwner(ctx, actorID, bl.CarID)
}
