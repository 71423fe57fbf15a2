package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing required field, malformed time of day).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidTitle is returned when an event is created with an empty title.
// It wraps ErrValidation, so errors.Is matches both.
var ErrInvalidTitle = fmt.Errorf("%w: title is required", ErrValidation)

// ErrIndexOutOfBounds is returned when a day index does not address one of
// the trip's days. No mutation has happened when it is returned.
var ErrIndexOutOfBounds = errors.New("day index out of range")

// ErrDuplicateEvent is returned when an event id is already present in the trip.
var ErrDuplicateEvent = errors.New("event already exists in trip")

// ErrLocationNotFound is returned when an event names a location that does
// not exist. It wraps ErrNotFound.
var ErrLocationNotFound = fmt.Errorf("location %w", ErrNotFound)
