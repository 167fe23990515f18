package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account deactivated")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrWrongPassword      = errors.New("current password incorrect")
)

// ValidationError carries a client-facing rejection message, plus the
// individual rule failures when a password fails the strength policy.
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(message string, details ...string) *ValidationError {
	return &ValidationError{Message: message, Errors: details}
}
