package shared

import "errors"

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden indicates the principal is neither owner nor admin.
	ErrForbidden = errors.New("forbidden")
	// ErrNoPrincipal indicates a guarded call ran without an authenticated principal.
	ErrNoPrincipal = errors.New("no authenticated principal")
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
