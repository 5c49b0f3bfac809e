// Package availabilities is the availability board: which caregivers are
// free on which calendar dates.
package availabilities

import (
	"context"
	"time"
)

type Repository interface {
	// Publish marks caregiver free on date. Publishing an existing pair is a no-op.
	Publish(ctx context.Context, caregiver string, date time.Time) error

	// PickAndConsume removes and returns the lexicographically smallest
	// caregiver free on date. ok is false when nobody is free.
	PickAndConsume(ctx context.Context, date time.Time) (caregiver string, ok bool, err error)

	// ListAvailable returns the caregivers free on date in ascending order.
	ListAvailable(ctx context.Context, date time.Time) ([]string, error)

	// Restore puts back a pair removed by PickAndConsume.
	Restore(ctx context.Context, caregiver string, date time.Time) error
}
