package service

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. Anything else
// coming out of a service is a persistence failure and surfaces as 500.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidTarget      = errors.New("unknown target type")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
