package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/vaxscheduler/internal/config"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/dmitrijs2005/vaxscheduler/internal/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type authService interface {
	Register(ctx context.Context, role models.Role, username string, password []byte) (*models.Account, error)
	Login(ctx context.Context, role models.Role, username string, password []byte) (*models.Account, error)
}

type scheduleService interface {
	UploadAvailability(ctx context.Context, caregiver, dateText string) error
	AddDoses(ctx context.Context, vaccine string, count int) (int, error)
	SearchSchedule(ctx context.Context, dateText string) (*models.Schedule, error)
	Appointments(ctx context.Context, role models.Role, username string) ([]models.Appointment, error)
}

type reservationService interface {
	Reserve(ctx context.Context, dateText, vaccine, patient string) (*models.Reservation, error)
}

type App struct {
	config       *config.Config
	db           *sql.DB
	session      *Session
	logger       logging.Logger
	auth         authService
	schedule     scheduleService
	reservations reservationService
	in           io.Reader
	lines        *bufio.Scanner
}

// openDB and newPostgresManager are seams for tests.
var (
	openDB             = sql.Open
	newPostgresManager = repomanager.NewPostgresRepositoryManager
)

// NewApp opens storage for cfg.StorageMode and builds the services on top of
// it. In postgres mode the database is pinged and migrated first.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	session := NewSession(cfg.LoginAttemptsPerMinute)
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel).With("session", session.ID.String())

	var (
		db *sql.DB
		m  repomanager.RepositoryManager
	)

	switch cfg.StorageMode {
	case config.StorageMemory:
		m = repomanager.NewMemoryRepositoryManager()

	case config.StoragePostgres:
		var err error
		db, err = openDB("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("error opening database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error connecting to database: %w", err)
		}
		m = newPostgresManager()
		if err := m.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error running migrations: %w", err)
		}
		logger.Debug(ctx, "migrations applied")

	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.StorageMode)
	}

	logger.Info(ctx, "storage ready", "mode", cfg.StorageMode)

	return newApp(cfg, db, m, session, logger), nil
}

func newApp(cfg *config.Config, db *sql.DB, m repomanager.RepositoryManager, session *Session, logger logging.Logger) *App {
	return &App{
		config:       cfg,
		db:           db,
		session:      session,
		logger:       logger,
		auth:         services.NewAuthService(db, m, logger),
		schedule:     services.NewScheduleService(db, m, logger),
		reservations: services.NewReservationService(db, m, logger),
		in:           os.Stdin,
	}
}

// Run prints the greeting and serves commands until quit, end of input or
// cancellation of ctx.
func (a *App) Run(ctx context.Context) {
	printlnFn()
	printlnFn("Welcome to the COVID-19 Vaccine Reservation Scheduling Application!")
	for _, l := range helpLines {
		printlnFn(l)
	}
	printlnFn()

	a.lines = bufio.NewScanner(a.in)
	runREPL(ctx, a, a.config.CommandTimeout, a.lines)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
