package model

import (
	"strings"
	"unicode/utf8"
)

const (
	maxBuildListNameLen = 100
	maxDescriptionLen   = 2000
)

// BuildList represents a named collection of parts planned for a car.
type BuildList struct {
	ID          int64   `json:"id"                    db:"id"`
	Name        string  `json:"name"                  db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	CarID       int64   `json:"car_id"                db:"car_id"`
	ImageURL    *string `json:"image_url,omitempty"   db:"image_url"`
}

// CreateBuildListRequest represents parameters to create a BuildList.
type CreateBuildListRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CarID       int64   `json:"car_id"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// UpdateBuildListRequest represents parameters to update a BuildList.
type UpdateBuildListRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CarID       *int64  `json:"car_id,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// Validate validates CreateBuildListRequest.
func (r *CreateBuildListRequest) Validate() error {
	verr := &ValidationError{}
	r.Name = strings.TrimSpace(r.Name)

	validateBuildListName(verr, r.Name)
	if r.CarID <= 0 {
		verr.Add("car_id", "car_id is required", "value_error.missing")
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLen {
		verr.Add("description", "description cannot exceed 2000 characters", "value_error.too_long")
	}
	return verr.OrNil()
}

// HasUpdates reports whether any field is set in UpdateBuildListRequest.
func (r *UpdateBuildListRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil || r.CarID != nil || r.ImageURL != nil
}

// Validate validates UpdateBuildListRequest.
func (r *UpdateBuildListRequest) Validate() error {
	verr := &ValidationError{}
	if !r.HasUpdates() {
		verr.Add("body", "at least one field must be updated", "value_error")
	}
	if r.Name != nil {
		validateBuildListName(verr, strings.TrimSpace(*r.Name))
	}
	if r.CarID != nil && *r.CarID <= 0 {
		verr.Add("car_id", "car_id must be positive", "value_error.number")
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLen {
		verr.Add("description", "description cannot exceed 2000 characters", "value_error.too_long")
	}
	return verr.OrNil()
}

func validateBuildListName(verr *ValidationError, name string) {
	switch {
	case name == "":
		verr.Add("name", "name is required", "value_error.missing")
	case utf8.RuneCountInString(name) > maxBuildListNameLen:
		verr.Add("name", "name cannot exceed 100 characters", "value_error.too_long")
	}
}
