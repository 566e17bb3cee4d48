package event

import "errors"

var (
	ErrInvalidEvent  = errors.New("event row has no usable timestamp or employee code")
	ErrEventNotFound = errors.New("event not found")
)
