package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/accounts"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/appointments"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/vaccines"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newMemoryServices() (*repomanager.MemoryRepositoryManager, *ReservationService, *ScheduleService) {
	m := repomanager.NewMemoryRepositoryManager()
	return m, NewReservationService(nil, m, logging.Discard()), NewScheduleService(nil, m, logging.Discard())
}

func dosesLeft(t *testing.T, m repomanager.RepositoryManager, name string) int {
	t.Helper()
	lots, err := m.Vaccines(nil).List(context.Background())
	require.NoError(t, err)
	for _, v := range lots {
		if v.Name == name {
			return v.Doses
		}
	}
	t.Fatalf("vaccine %q not found", name)
	return 0
}

// fakeRepoManager serves the in-memory repositories but lets a test swap in
// failing ones.
type fakeRepoManager struct {
	*repomanager.MemoryRepositoryManager

	accounts     accounts.Repository
	vaccines     vaccines.Repository
	appointments appointments.Repository
}

func (m *fakeRepoManager) Accounts(db dbx.DBTX) accounts.Repository {
	if m.accounts != nil {
		return m.accounts
	}
	return m.MemoryRepositoryManager.Accounts(db)
}

func (m *fakeRepoManager) Vaccines(db dbx.DBTX) vaccines.Repository {
	if m.vaccines != nil {
		return m.vaccines
	}
	return m.MemoryRepositoryManager.Vaccines(db)
}

func (m *fakeRepoManager) Appointments(db dbx.DBTX) appointments.Repository {
	if m.appointments != nil {
		return m.appointments
	}
	return m.MemoryRepositoryManager.Appointments(db)
}

type failingAppointments struct {
	appointments.Repository
	appendErr error
}

func (f *failingAppointments) Append(context.Context, time.Time, string, string, string) (int64, error) {
	return 0, f.appendErr
}

type failingVaccines struct {
	vaccines.Repository
	reserveErr error
}

func (f *failingVaccines) TryReserveOne(context.Context, string) (bool, error) {
	return false, f.reserveErr
}

type failingAccounts struct {
	accounts.Repository
	err error
}

func (f *failingAccounts) Exists(context.Context, models.Role, string) (bool, error) {
	return false, f.err
}

func (f *failingAccounts) GetByUsername(context.Context, models.Role, string) (*models.Account, error) {
	return nil, f.err
}
