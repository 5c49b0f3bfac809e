// Package accounts stores patient and caregiver credentials. Each role has
// its own table, so usernames are unique per role only.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type Repository interface {
	// Create returns common.ErrUsernameTaken when the username exists for the role.
	Create(ctx context.Context, account *models.Account) error

	// GetByUsername returns common.ErrorNotFound for an unknown username.
	GetByUsername(ctx context.Context, role models.Role, username string) (*models.Account, error)

	Exists(ctx context.Context, role models.Role, username string) (bool, error)
}
