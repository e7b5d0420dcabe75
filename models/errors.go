package models

import "errors"

// Error kinds the service layer translates store failures into. Handlers map
// these onto HTTP status codes; raw store errors never reach a caller.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
	ErrConflict   = errors.New("conflicting reference")
	ErrTimeout    = errors.New("store call timed out")
	ErrStore      = errors.New("store failure")
)
