package accounts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type key struct {
	role     models.Role
	username string
}

type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[key]models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[key]models.Account)}
}

func (r *MemoryRepository) Create(_ context.Context, account *models.Account) error {
	if _, err := tableFor(account.Role); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{role: account.Role, username: account.Username}
	if _, ok := r.accounts[k]; ok {
		return common.ErrUsernameTaken
	}
	r.accounts[k] = *account
	return nil
}

func (r *MemoryRepository) GetByUsername(_ context.Context, role models.Role, username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[key{role: role, username: username}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) Exists(_ context.Context, role models.Role, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.accounts[key{role: role, username: username}]
	return ok, nil
}
