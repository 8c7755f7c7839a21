package service

import (
	"context"
	"fmt"

	"github.com/WebbPulse/carmodpicker/internal/core"
	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/imageurl"
	"github.com/WebbPulse/carmodpicker/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users  core.UserRepository
	Hasher ports.PasswordHasher
	Images *imageurl.Validator
}

// UserService handles profile reads and updates. Account creation goes
// through AuthService.Register so the verification email is wired in.
type UserService struct {
	users  core.UserRepository
	hasher ports.PasswordHasher
	images *imageurl.Validator
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	images := opts.Images
	if images == nil {
		images = imageurl.NewValidator(nil)
	}
	return &UserService{
		users:  opts.Users,
		hasher: opts.Hasher,
		images: images,
	}
}

// Get returns a user profile by ID.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update applies profile changes. Only the account owner may update a
// profile, and every change re-authenticates with the current password.
func (s *UserService) Update(ctx context.Context, actorID, targetID int64, req *model.UpdateUserRequest) (*model.User, error) {
	if actorID != targetID {
		return nil, ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := validateImageURL(s.images, req.ImageURL); err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if compareErr := s.hasher.Compare(current.PasswordHash, req.CurrentPassword); compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	params := core.UpdateUserParams{
		Username: req.Username,
		Email:    req.Email,
		Disabled: req.Disabled,
		ImageURL: req.ImageURL,
	}
	if req.Password != nil {
		hash, hashErr := s.hasher.Hash(*req.Password)
		if hashErr != nil {
			return nil, fmt.Errorf("hash password: %w", hashErr)
		}
		params.PasswordHash = &hash
	}

	return s.users.Update(ctx, targetID, params)
}
