// Package appointments is the durable log of confirmed bookings.
package appointments

import (
	"context"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type Repository interface {
	// Append stores a booking under the next identifier and returns it.
	// Identifiers start at 1 and are never reused.
	Append(ctx context.Context, date time.Time, patient, caregiver, vaccine string) (int64, error)

	// ByPatient lists a patient's bookings ordered by caregiver, then id.
	ByPatient(ctx context.Context, patient string) ([]models.Appointment, error)

	// ByPatientByID lists a patient's bookings ordered by id.
	ByPatientByID(ctx context.Context, patient string) ([]models.Appointment, error)

	// ByCaregiver lists a caregiver's bookings ordered by id.
	ByCaregiver(ctx context.Context, caregiver string) ([]models.Appointment, error)
}
