package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrConflict              = errors.New("already exists")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// isClientError reports whether err stems from the request rather than from
// the service or its stores.
func isClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnauthorized)
}
