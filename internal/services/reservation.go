package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

// ReservationService books one dose of one vaccine with one caregiver on one
// date. The caregiver slot is always taken before the dose.
type ReservationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewReservationService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ReservationService {
	return &ReservationService{db: db, repomanager: m, logger: logger}
}

func storageFailure(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
}

// Reserve books an appointment for patient and returns it together with the
// patient's appointment list. It fails with common.ErrInvalidDate,
// common.ErrNoCaregiverAvailable, common.ErrInsufficientDoses or
// common.ErrStorageFailure, and in each case leaves no slot, dose or
// appointment changed.
func (s *ReservationService) Reserve(ctx context.Context, dateText, vaccine, patient string) (*models.Reservation, error) {
	date, err := models.ParseDate(dateText)
	if err != nil {
		return nil, err
	}

	var appt *models.Appointment
	if s.db != nil {
		appt, err = s.reserveTx(ctx, date, vaccine, patient)
	} else {
		appt, err = s.reserveCompensating(ctx, date, vaccine, patient)
	}
	if err != nil {
		if errors.Is(err, common.ErrStorageFailure) {
			s.logger.Error(ctx, "reservation failed", "patient", patient, "vaccine", vaccine, "date", models.FormatDate(date), "error", err)
		} else {
			s.logger.Info(ctx, "reservation rejected", "patient", patient, "vaccine", vaccine, "date", models.FormatDate(date), "reason", err)
		}
		return nil, err
	}

	s.logger.Info(ctx, "appointment booked",
		"id", appt.ID, "patient", patient, "caregiver", appt.Caregiver, "vaccine", vaccine, "date", models.FormatDate(date))

	res := &models.Reservation{Appointment: *appt}

	// The booking is already durable here; a failed listing is only logged.
	listing, err := s.repomanager.Appointments(s.db).ByPatient(ctx, patient)
	if err != nil {
		s.logger.Error(ctx, "listing appointments failed", "patient", patient, "error", err)
		return res, nil
	}
	res.Listing = listing

	return res, nil
}

// reserveTx runs all three steps in one transaction. Any failure rolls the
// whole unit back, so nothing needs undoing by hand.
func (s *ReservationService) reserveTx(ctx context.Context, date time.Time, vaccine, patient string) (*models.Appointment, error) {
	var appt *models.Appointment

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		caregiver, ok, err := s.repomanager.Availabilities(tx).PickAndConsume(ctx, date)
		if err != nil {
			return storageFailure(err)
		}
		if !ok {
			return common.ErrNoCaregiverAvailable
		}

		reserved, err := s.repomanager.Vaccines(tx).TryReserveOne(ctx, vaccine)
		if err != nil {
			return storageFailure(err)
		}
		if !reserved {
			return common.ErrInsufficientDoses
		}

		id, err := s.repomanager.Appointments(tx).Append(ctx, date, patient, caregiver, vaccine)
		if err != nil {
			return storageFailure(err)
		}

		appt = &models.Appointment{ID: id, Date: date, Patient: patient, Caregiver: caregiver, Vaccine: vaccine}
		return nil
	})
	if err != nil {
		if isReservationOutcome(err) {
			return nil, err
		}
		// begin or commit failed
		return nil, storageFailure(err)
	}

	return appt, nil
}

// reserveCompensating is used when storage has no transactions. Each step
// is atomic on its own; a failed later step undoes the earlier ones.
func (s *ReservationService) reserveCompensating(ctx context.Context, date time.Time, vaccine, patient string) (*models.Appointment, error) {
	slots := s.repomanager.Availabilities(s.db)
	lots := s.repomanager.Vaccines(s.db)
	bookings := s.repomanager.Appointments(s.db)

	caregiver, ok, err := slots.PickAndConsume(ctx, date)
	if err != nil {
		return nil, storageFailure(err)
	}
	if !ok {
		return nil, common.ErrNoCaregiverAvailable
	}

	restoreSlot := func() error {
		s.logger.Debug(ctx, "restoring slot", "caregiver", caregiver, "date", models.FormatDate(date))
		if err := slots.Restore(ctx, caregiver, date); err != nil {
			s.logger.Error(ctx, "restoring slot failed", "caregiver", caregiver, "date", models.FormatDate(date), "error", err)
			return err
		}
		return nil
	}

	reserved, err := lots.TryReserveOne(ctx, vaccine)
	if err != nil {
		return nil, storageFailure(errors.Join(err, restoreSlot()))
	}
	if !reserved {
		if err := restoreSlot(); err != nil {
			return nil, storageFailure(err)
		}
		return nil, common.ErrInsufficientDoses
	}

	id, err := bookings.Append(ctx, date, patient, caregiver, vaccine)
	if err != nil {
		s.logger.Debug(ctx, "releasing dose", "vaccine", vaccine)
		releaseErr := lots.ReleaseOne(ctx, vaccine)
		if releaseErr != nil {
			s.logger.Error(ctx, "releasing dose failed", "vaccine", vaccine, "error", releaseErr)
		}
		return nil, storageFailure(errors.Join(err, releaseErr, restoreSlot()))
	}

	return &models.Appointment{ID: id, Date: date, Patient: patient, Caregiver: caregiver, Vaccine: vaccine}, nil
}

func isReservationOutcome(err error) bool {
	return errors.Is(err, common.ErrNoCaregiverAvailable) ||
		errors.Is(err, common.ErrInsufficientDoses) ||
		errors.Is(err, common.ErrStorageFailure)
}
