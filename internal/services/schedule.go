package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

// ScheduleService covers everything around a reservation: publishing
// availability, stocking doses and reading schedules and bookings back.
type ScheduleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewScheduleService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ScheduleService {
	return &ScheduleService{db: db, repomanager: m, logger: logger}
}

func (s *ScheduleService) UploadAvailability(ctx context.Context, caregiver, dateText string) error {
	date, err := models.ParseDate(dateText)
	if err != nil {
		return err
	}

	if err := s.repomanager.Availabilities(s.db).Publish(ctx, caregiver, date); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}

	s.logger.Info(ctx, "availability uploaded", "caregiver", caregiver, "date", models.FormatDate(date))
	return nil
}

// AddDoses returns the lot's new dose count.
func (s *ScheduleService) AddDoses(ctx context.Context, vaccine string, count int) (int, error) {
	if count <= 0 {
		return 0, common.ErrInvalidDoseCount
	}

	total, err := s.repomanager.Vaccines(s.db).AddDoses(ctx, vaccine, count)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}

	s.logger.Info(ctx, "doses added", "vaccine", vaccine, "added", count, "total", total)
	return total, nil
}

func (s *ScheduleService) SearchSchedule(ctx context.Context, dateText string) (*models.Schedule, error) {
	date, err := models.ParseDate(dateText)
	if err != nil {
		return nil, err
	}

	caregivers, err := s.repomanager.Availabilities(s.db).ListAvailable(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}

	lots, err := s.repomanager.Vaccines(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}

	return &models.Schedule{Date: date, Caregivers: caregivers, Vaccines: lots}, nil
}

// Appointments lists the bookings of a caregiver or a patient, ordered by id.
func (s *ScheduleService) Appointments(ctx context.Context, role models.Role, username string) ([]models.Appointment, error) {
	repo := s.repomanager.Appointments(s.db)

	var (
		list []models.Appointment
		err  error
	)
	switch role {
	case models.RoleCaregiver:
		list, err = repo.ByCaregiver(ctx, username)
	case models.RolePatient:
		list, err = repo.ByPatientByID(ctx, username)
	default:
		return nil, common.ErrorUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}

	return list, nil
}
