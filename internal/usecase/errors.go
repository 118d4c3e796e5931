package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrPolicyViolation       = errors.New("policy violation")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
