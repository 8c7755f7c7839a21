package model

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 8
	maxPasswordLen = 128
)

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID            int64   `json:"id"             db:"id"`
	Username      string  `json:"username"       db:"username"`
	Email         string  `json:"email"          db:"email"`
	Disabled      bool    `json:"disabled"       db:"disabled"`
	EmailVerified bool    `json:"email_verified" db:"email_verified"`
	ImageURL      *string `json:"image_url"      db:"image_url"`
	PasswordHash  string  `json:"-"              db:"password_hash"`
}

// CreateUserRequest represents parameters to register a new account.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest represents parameters to update a profile. All fields are
// optional except CurrentPassword, which re-authenticates the change.
type UpdateUserRequest struct {
	Username        *string `json:"username,omitempty"`
	Email           *string `json:"email,omitempty"`
	Disabled        *bool   `json:"disabled,omitempty"`
	Password        *string `json:"password,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
	CurrentPassword string  `json:"current_password"`
}

// Validate validates CreateUserRequest.
func (r *CreateUserRequest) Validate() error {
	verr := &ValidationError{}
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	validateUsername(verr, r.Username)
	validateEmail(verr, r.Email)
	validatePassword(verr, r.Password)
	return verr.OrNil()
}

// HasUpdates reports whether any updatable field is set.
func (r *UpdateUserRequest) HasUpdates() bool {
	return r.Username != nil || r.Email != nil || r.Disabled != nil ||
		r.Password != nil || r.ImageURL != nil
}

// Validate validates UpdateUserRequest, requiring at least one field change
// and the current password.
func (r *UpdateUserRequest) Validate() error {
	verr := &ValidationError{}
	if !r.HasUpdates() {
		verr.Add("body", "at least one field must be updated", "value_error")
	}
	if r.CurrentPassword == "" {
		verr.Add("current_password", "current password is required", "value_error.missing")
	}
	if r.Username != nil {
		validateUsername(verr, strings.TrimSpace(*r.Username))
	}
	if r.Email != nil {
		validateEmail(verr, strings.TrimSpace(*r.Email))
	}
	if r.Password != nil {
		validatePassword(verr, *r.Password)
	}
	return verr.OrNil()
}

// ResetPasswordRequest carries the new password for a reset confirmation.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// Validate validates ResetPasswordRequest.
func (r *ResetPasswordRequest) Validate() error {
	verr := &ValidationError{}
	validatePassword(verr, r.NewPassword)
	return verr.OrNil()
}

func validateUsername(verr *ValidationError, username string) {
	n := utf8.RuneCountInString(username)
	switch {
	case username == "":
		verr.Add("username", "username is required", "value_error.missing")
	case n < minUsernameLen:
		verr.Add("username", "username must be at least 3 characters", "value_error.too_short")
	case n > maxUsernameLen:
		verr.Add("username", "username cannot exceed 50 characters", "value_error.too_long")
	}
}

func validateEmail(verr *ValidationError, email string) {
	if email == "" {
		verr.Add("email", "email is required", "value_error.missing")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		verr.Add("email", "email is not a valid address", "value_error.email")
	}
}

func validatePassword(verr *ValidationError, password string) {
	switch {
	case password == "":
		verr.Add("password", "password is required", "value_error.missing")
	case len(password) < minPasswordLen:
		verr.Add("password", "password must be at least 8 characters", "value_error.too_short")
	case len(password) > maxPasswordLen:
		verr.Add("password", "password cannot exceed 128 characters", "value_error.too_long")
	}
}
