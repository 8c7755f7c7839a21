package service

import (
	"context"

	"github.com/WebbPulse/carmodpicker/internal/core"
	"github.com/WebbPulse/carmodpicker/internal/data"
	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/imageurl"
)

// PartServiceOptions groups dependencies for PartService.
type PartServiceOptions struct {
	Parts      core.PartRepository
	BuildLists core.BuildListRepository
	Cars       core.CarRepository
	Images     *imageurl.Validator
}

// PartService handles the part CRUD. Ownership is resolved through the
// chain part, build list, car, user.
type PartService struct {
	parts      core.PartRepository
	buildLists core.BuildListRepository
	cars       core.CarRepository
	images     *imageurl.Validator
}

// NewPartService constructs a new PartService.
func NewPartService(opts PartServiceOptions) *PartService {
	images := opts.Images
	if images == nil {
		images = imageurl.NewValidator(nil)
	}
	return &PartService{
		parts:      opts.Parts,
		buildLists: opts.BuildLists,
		cars:       opts.Cars,
		images:     images,
	}
}

// Create validates and stores a new part on a build list the actor owns.
func (s *PartService) Create(ctx context.Context, actorID int64, req *model.CreatePartRequest) (*model.Part, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := validateImageURL(s.images, req.ImageURL); err != nil {
		return nil, err
	}
	if err := s.requireBuildListOwner(ctx, actorID, req.BuildListID); err != nil {
		return nil, err
	}
	return s.parts.Create(ctx, req)
}

// Get returns a part by ID.
func (s *PartService) Get(ctx context.Context, id int64) (*model.Part, error) {
	return s.parts.GetByID(ctx, id)
}

// ListByBuildList returns a page of parts attached to a build list.
func (s *PartService) ListByBuildList(ctx context.Context, buildListID int64, limit, offset int) ([]*model.Part, error) {
	if _, err := s.buildLists.GetByID(ctx, buildListID); err != nil {
		return nil, err
	}
	return s.parts.ListByBuildList(ctx, buildListID, limit, offset)
}

// Update applies changes to a part the actor owns through its build
// list. Moving a part to another build list requires owning that list.
func (s *PartService) Update(ctx context.Context, actorID, partID int64, req model.UpdatePartRequest) (*model.Part, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := validateImageURL(s.images, req.ImageURL); err != nil {
		return nil, err
	}
	if err := s.requirePartOwner(ctx, actorID, partID); err != nil {
		return nil, err
	}
	if req.BuildListID != nil {
		if err := s.requireBuildListOwner(ctx, actorID, *req.BuildListID); err != nil {
			return nil, err
		}
	}
	return s.parts.Update(ctx, partID, req)
}

// Delete removes a part the actor owns through its build list.
func (s *PartService) Delete(ctx context.Context, actorID, partID int64) error {
	if err := s.requirePartOwner(ctx, actorID, partID); err != nil {
		return err
	}
	deleted, err := s.parts.Delete(ctx, partID)
	if err != nil {
		return err
	}
	if !deleted {
		return data.ErrPartNotFound
	}
	return nil
}

func (s *PartService) requirePartOwner(ctx context.Context, actorID, partID int64) error {
	part, err := s.parts.GetByID(ctx, partID)
	if err != nil {
		return err
	}
	return s.requireBuildListOwner(ctx, actorID, part.BuildListID)
}

func (s *PartService) requireBuildListOwner(ctx context.Context, actorID, buildListID int64) error {
	bl, err := s.buildLists.GetByID(ctx, buildListID)
	if err != nil {
		return err
	}
	car, err := s.cars.GetByID(ctx, bl.CarID)
	if err != nil {
		return err
	}
	if car.UserID != actorID {
		return ErrForbidden
	}
	return nil
}
