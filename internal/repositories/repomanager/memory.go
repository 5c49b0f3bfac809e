package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/accounts"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/appointments"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/availabilities"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/vaccines"
)

// MemoryRepositoryManager hands out the same in-process repositories on every
// call. The DBTX argument is ignored; there is no transaction to bind to.
type MemoryRepositoryManager struct {
	accounts       *accounts.MemoryRepository
	vaccines       *vaccines.MemoryRepository
	availabilities *availabilities.MemoryRepository
	appointments   *appointments.MemoryRepository
}

// NewMemoryRepositoryManager wires the availability board to the
// appointment book so a booked pair cannot be published again.
func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	booked := appointments.NewMemoryRepository()
	return &MemoryRepositoryManager{
		accounts:       accounts.NewMemoryRepository(),
		vaccines:       vaccines.NewMemoryRepository(),
		availabilities: availabilities.NewMemoryRepository(booked),
		appointments:   booked,
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *MemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository { return m.accounts }

func (m *MemoryRepositoryManager) Vaccines(dbx.DBTX) vaccines.Repository { return m.vaccines }

func (m *MemoryRepositoryManager) Availabilities(dbx.DBTX) availabilities.Repository {
	return m.availabilities
}

func (m *MemoryRepositoryManager) Appointments(dbx.DBTX) appointments.Repository {
	return m.appointments
}
