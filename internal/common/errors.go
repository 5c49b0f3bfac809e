// Package common defines shared constants and sentinel errors used across
// the scheduler's storage, service and command layers. Callers should use
// errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrUsernameTaken = errors.New("username taken")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrWeakPassword   = errors.New("weak password")

	// Request validation. ErrInvalidDate and ErrInvalidDoseCount wrap ErrBadRequest.
	ErrBadRequest       = errors.New("bad request")
	ErrInvalidDate      = fmt.Errorf("%w: invalid date", ErrBadRequest)
	ErrInvalidDoseCount = fmt.Errorf("%w: dose count must be positive", ErrBadRequest)

	// Reservation outcomes.
	ErrNoCaregiverAvailable = errors.New("no caregiver available")
	ErrInsufficientDoses    = errors.New("insufficient doses")
	ErrStorageFailure       = errors.New("storage failure")
)
