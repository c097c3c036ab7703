package errors

import (
	"errors"
	"fmt"
)

var (
	// Generic outcomes.
	ErrInternal      = errors.New("internal server error")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	// Authentication. Unknown username and wrong password are deliberately
	// the same error so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Session token verification. These stay distinct internally for
	// logging; handlers render them all as a generic 401.
	ErrTokenMalformed = errors.New("malformed session token")
	ErrTokenExpired   = errors.New("session token expired")
	ErrTokenInvalid   = errors.New("invalid session token")

	// Password reset. ErrAdminNotFound never crosses the service boundary
	// on the reset-request path; it is converted to a generic ack.
	// ErrResetTokenInvalid covers unknown, expired and already-consumed
	// tokens uniformly to avoid a token-existence oracle.
	ErrAdminNotFound     = errors.New("admin not found")
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")

	// Operational, not security-sensitive: reported distinctly.
	ErrDeliveryFailure = errors.New("failed to deliver email")

	// Provisioning.
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

// AppError carries an error code and user-facing message across the HTTP
// boundary while wrapping the original cause.
type AppError struct {
	Err  error
	Msg  string
	Code string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *AppError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err should render as a 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenInvalid)
}

// IsConflict reports whether err should render as a 409.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrUsernameExists) ||
		errors.Is(err, ErrEmailExists)
}
