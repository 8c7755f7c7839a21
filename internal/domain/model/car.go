package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxCarFieldLen = 100
	vinLen         = 17
	minCarYear     = 1886 // Benz Patent-Motorwagen
)

// Car represents a car owned by a user.
type Car struct {
	ID       int64   `json:"id"                  db:"id"`
	Make     string  `json:"make"                db:"make"`
	Model    string  `json:"model"               db:"model"`
	Year     int     `json:"year"                db:"year"`
	Trim     *string `json:"trim,omitempty"      db:"trim"`
	VIN      *string `json:"vin,omitempty"       db:"vin"`
	ImageURL *string `json:"image_url,omitempty" db:"image_url"`
	UserID   int64   `json:"user_id"             db:"user_id"`
}

// CreateCarRequest represents parameters to create a Car.
type CreateCarRequest struct {
	Make     string  `json:"make"`
	Model    string  `json:"model"`
	Year     int     `json:"year"`
	Trim     *string `json:"trim,omitempty"`
	VIN      *string `json:"vin,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// UpdateCarRequest represents parameters to update a Car.
type UpdateCarRequest struct {
	Make     *string `json:"make,omitempty"`
	Model    *string `json:"model,omitempty"`
	Year     *int    `json:"year,omitempty"`
	Trim     *string `json:"trim,omitempty"`
	VIN      *string `json:"vin,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// Validate validates CreateCarRequest.
func (r *CreateCarRequest) Validate() error {
	verr := &ValidationError{}
	r.Make = strings.TrimSpace(r.Make)
	r.Model = strings.TrimSpace(r.Model)

	if r.Make == "" {
		verr.Add("make", "make is required", "value_error.missing")
	} else if utf8.RuneCountInString(r.Make) > maxCarFieldLen {
		verr.Add("make", "make cannot exceed 100 characters", "value_error.too_long")
	}
	if r.Model == "" {
		verr.Add("model", "model is required", "value_error.missing")
	} else if utf8.RuneCountInString(r.Model) > maxCarFieldLen {
		verr.Add("model", "model cannot exceed 100 characters", "value_error.too_long")
	}
	validateCarYear(verr, r.Year)
	if r.VIN != nil {
		validateVIN(verr, *r.VIN)
	}
	return verr.OrNil()
}

// HasUpdates reports whether any field is set in UpdateCarRequest.
func (r *UpdateCarRequest) HasUpdates() bool {
	return r.Make != nil || r.Model != nil || r.Year != nil ||
		r.Trim != nil || r.VIN != nil || r.ImageURL != nil
}

// Validate validates UpdateCarRequest, ensuring at least one field is set and values are sane.
func (r *UpdateCarRequest) Validate() error {
	verr := &ValidationError{}
	if !r.HasUpdates() {
		verr.Add("body", "at least one field must be updated", "value_error")
	}
	if r.Make != nil && strings.TrimSpace(*r.Make) == "" {
		verr.Add("make", "make cannot be empty", "value_error")
	}
	if r.Model != nil && strings.TrimSpace(*r.Model) == "" {
		verr.Add("model", "model cannot be empty", "value_error")
	}
	if r.Year != nil {
		validateCarYear(verr, *r.Year)
	}
	if r.VIN != nil {
		validateVIN(verr, *r.VIN)
	}
	return verr.OrNil()
}

func validateCarYear(verr *ValidationError, year int) {
	// Allow next-model-year vehicles, which are sold ahead of the calendar.
	if year < minCarYear || year > time.Now().Year()+1 {
		verr.Add("year", "year is out of range", "value_error.number")
	}
}

func validateVIN(verr *ValidationError, vin string) {
	if vin == "" {
		return
	}
	if len(vin) != vinLen {
		verr.Add("vin", "vin must be 17 characters", "value_error.length")
	}
}
