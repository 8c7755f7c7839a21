package service

import "errors"

// Sentinel errors shared by the services. The HTTP layer maps these to
// status codes; not-found conditions surface as the data package
// sentinels instead.
var (
	// ErrInvalidCredentials covers unknown username and wrong password
	// alike, so login failures do not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrAccountDisabled is returned when a disabled account attempts to
	// log in or act.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrNoSession is returned when a session ID does not resolve to a
	// live session.
	ErrNoSession = errors.New("no valid session")

	// ErrInvalidToken is returned when a verification or reset token is
	// unknown, expired, or already used.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden is returned when the acting user does not own the
	// resource being changed.
	ErrForbidden = errors.New("not authorized to access this resource")

	// ErrEmailAlreadyVerified is returned when verification is requested
	// for an address that is already confirmed.
	ErrEmailAlreadyVerified = errors.New("email is already verified")
)
