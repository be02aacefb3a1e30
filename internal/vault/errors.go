package vault

import "errors"

// Sentinel errors returned across the vault boundary. Callers match them
// with errors.Is; the error text is the user-facing reason string.
var (
	// Validation errors.
	ErrInvalidName  = errors.New("invalid name format")
	ErrInvalidPhone = errors.New("invalid phone number format")
	ErrWeakPassword = errors.New("password must be at least 6 characters")
	ErrInvalidTopic = errors.New("invalid topic selected")

	// Conflict errors.
	ErrPhoneRegistered = errors.New("phone number already registered")

	// Auth errors. ErrInvalidCredentials deliberately covers both an
	// unknown phone and a wrong password so callers cannot probe which
	// phones are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account temporarily locked due to too many failed attempts")

	ErrUserNotFound = errors.New("user not found")

	// Persistence errors. Save failures surface as ErrSaveFailed with no
	// further detail. ErrCorruptStore never crosses the boundary: the load
	// path collapses a broken store into an empty one and only logs it.
	ErrSaveFailed   = errors.New("failed to save user data")
	ErrCorruptStore = errors.New("corrupt user store")
)
