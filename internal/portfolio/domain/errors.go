package domain

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrStoreUnavailable = errors.New("project store unavailable")
	ErrInvalidConfig    = errors.New("invalid content type config")
)
