// Package vaccines is the inventory ledger: named vaccine lots and their
// remaining dose counts.
package vaccines

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// Repository tracks dose counts. Counts never go below zero.
type Repository interface {
	// AddDoses creates the lot with count doses or adds count to an existing
	// one, returning the new total. count must be positive.
	AddDoses(ctx context.Context, name string, count int) (int, error)

	// TryReserveOne atomically takes one dose. It returns false without
	// changing anything when the lot is unknown or empty.
	TryReserveOne(ctx context.Context, name string) (bool, error)

	// ReleaseOne gives back a dose taken by TryReserveOne.
	ReleaseOne(ctx context.Context, name string) error

	// List returns every lot ordered by name.
	List(ctx context.Context) ([]models.Vaccine, error)
}
