package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abcdef1!", true},
		{"Passw0rd?", true},
		{"Ab1!", false},
		{"abcdefg1!", false},
		{"ABCDEFG1!", false},
		{"Abcdefgh!", false},
		{"Abcdefgh1", false},
		{"Abcdef1! ", false},
		{"Abcdef1$x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, StrongPassword([]byte(tt.password)))
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	s := NewAuthService(nil, repomanager.NewMemoryRepositoryManager(), logging.Discard())

	acc, err := s.Register(ctx, models.RolePatient, "alice", []byte("Secret12!"))
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)
	assert.NotEqual(t, []byte("Secret12!"), acc.Hash)

	got, err := s.Login(ctx, models.RolePatient, "alice", []byte("Secret12!"))
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, got.Role)

	_, err = s.Login(ctx, models.RolePatient, "alice", []byte("Secret12?"))
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, models.RoleCaregiver, "alice", []byte("Secret12!"))
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRegister_Rejections(t *testing.T) {
	ctx := context.Background()
	s := NewAuthService(nil, repomanager.NewMemoryRepositoryManager(), logging.Discard())

	_, err := s.Register(ctx, models.RoleCaregiver, "c1", []byte("weak"))
	assert.ErrorIs(t, err, common.ErrWeakPassword)

	_, err = s.Register(ctx, models.RoleCaregiver, "c1", []byte("Strong1!"))
	require.NoError(t, err)

	// a taken name wins over a weak password
	_, err = s.Register(ctx, models.RoleCaregiver, "c1", []byte("weak"))
	assert.ErrorIs(t, err, common.ErrUsernameTaken)

	_, err = s.Register(ctx, models.RolePatient, "c1", []byte("Strong1!"))
	assert.NoError(t, err)
}

func TestAuth_StorageErrors(t *testing.T) {
	ctx := context.Background()
	mem := repomanager.NewMemoryRepositoryManager()
	fm := &fakeRepoManager{
		MemoryRepositoryManager: mem,
		accounts:                &failingAccounts{Repository: mem.Accounts(nil), err: errBoom},
	}
	s := NewAuthService(nil, fm, logging.Discard())

	_, err := s.Register(ctx, models.RolePatient, "p", []byte("Strong1!"))
	assert.ErrorIs(t, err, common.ErrStorageFailure)

	_, err = s.Login(ctx, models.RolePatient, "p", []byte("Strong1!"))
	assert.ErrorIs(t, err, common.ErrorInternal)
}
