package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrNoData                = errors.New("no data available")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
