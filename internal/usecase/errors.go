package usecase

import "errors"

// ValidationError is malformed, missing or conflicting input. Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ForbiddenError is an authenticated caller with insufficient role or
// ownership. Maps to 403.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ErrArticleNotFound deliberately does not say whether the row is absent or
// simply not owned by the caller.
var ErrArticleNotFound = errors.New("article not found or it does not belong to you")

// ErrInvalidCredentials is returned for both unknown email and wrong
// password, so account existence does not leak.
var ErrInvalidCredentials = errors.New("invalid credentials")
