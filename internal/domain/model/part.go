package model

import (
	"strings"
	"unicode/utf8"
)

const maxPartFieldLen = 150

// Part represents a single part within a build list.
type Part struct {
	ID           int64    `json:"id"                     db:"id"`
	Name         string   `json:"name"                   db:"name"`
	PartType     *string  `json:"part_type,omitempty"    db:"part_type"`
	PartNumber   *string  `json:"part_number,omitempty"  db:"part_number"`
	Manufacturer *string  `json:"manufacturer,omitempty" db:"manufacturer"`
	Description  *string  `json:"description,omitempty"  db:"description"`
	Price        *float64 `json:"price,omitempty"        db:"price"`
	ImageURL     *string  `json:"image_url,omitempty"    db:"image_url"`
	BuildListID  int64    `json:"build_list_id"          db:"build_list_id"`
}

// CreatePartRequest represents parameters to create a Part.
type CreatePartRequest struct {
	Name         string   `json:"name"`
	PartType     *string  `json:"part_type,omitempty"`
	PartNumber   *string  `json:"part_number,omitempty"`
	Manufacturer *string  `json:"manufacturer,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	BuildListID  int64    `json:"build_list_id"`
}

// UpdatePartRequest represents parameters to update a Part.
type UpdatePartRequest struct {
	Name         *string  `json:"name,omitempty"`
	PartType     *string  `json:"part_type,omitempty"`
	PartNumber   *string  `json:"part_number,omitempty"`
	Manufacturer *string  `json:"manufacturer,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	BuildListID  *int64   `json:"build_list_id,omitempty"`
}

// Validate validates CreatePartRequest.
func (r *CreatePartRequest) Validate() error {
	verr := &ValidationError{}
	r.Name = strings.TrimSpace(r.Name)

	validatePartName(verr, r.Name)
	if r.BuildListID <= 0 {
		verr.Add("build_list_id", "build_list_id is required", "value_error.missing")
	}
	if r.Price != nil && *r.Price < 0 {
		verr.Add("price", "price cannot be negative", "value_error.number")
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLen {
		verr.Add("description", "description cannot exceed 2000 characters", "value_error.too_long")
	}
	return verr.OrNil()
}

// HasUpdates reports whether any field is set in UpdatePartRequest.
func (r *UpdatePartRequest) HasUpdates() bool {
	return r.Name != nil || r.PartType != nil || r.PartNumber != nil ||
		r.Manufacturer != nil || r.Description != nil || r.Price != nil ||
		r.ImageURL != nil || r.BuildListID != nil
}

// Validate validates UpdatePartRequest.
func (r *UpdatePartRequest) Validate() error {
	verr := &ValidationError{}
	if !r.HasUpdates() {
		verr.Add("body", "at least one field must be updated", "value_error")
	}
	if r.Name != nil {
		validatePartName(verr, strings.TrimSpace(*r.Name))
	}
	if r.BuildListID != nil && *r.BuildListID <= 0 {
		verr.Add("build_list_id", "build_list_id must be positive", "value_error.number")
	}
	if r.Price != nil && *r.Price < 0 {
		verr.Add("price", "price cannot be negative", "value_error.number")
	}
	return verr.OrNil()
}

func validatePartName(verr *ValidationError, name string) {
	switch {
	case name == "":
		verr.Add("name", "name is required", "value_error.missing")
	case utf8.RuneCountInString(name) > maxPartFieldLen:
		verr.Add("name", "name cannot exceed 150 characters", "value_error.too_long")
	}
}
