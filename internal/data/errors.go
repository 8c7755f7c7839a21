package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// User repository sentinels.
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already taken")
	ErrEmailExists    = errors.New("email already registered")

	// Car repository sentinels.
	ErrCarNotFound = errors.New("car not found")
	ErrVINExists   = errors.New("vin already registered")

	// Build list repository sentinels.
	ErrBuildListNotFound = errors.New("build list not found")

	// Part repository sentinels.
	ErrPartNotFound = errors.New("part not found")
)
