package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Append bumps the counter row and inserts in one statement. The counter
// row lock serializes concurrent appends and rolls back with the caller's
// transaction, so committed identifiers have no gaps.
func (r *PostgresRepository) Append(ctx context.Context, date time.Time, patient, caregiver, vaccine string) (int64, error) {
	query :=
		`WITH next AS (
		     UPDATE appointment_counter SET last_id = last_id + 1
		     RETURNING last_id
		 )
		 INSERT INTO appointments (id, appointment_date, patient_username, caregiver_username, vaccine_name)
		 SELECT last_id, $1, $2, $3, $4 FROM next
		 RETURNING id
		 `

	var id int64
	if err := r.db.QueryRowContext(ctx, query, date, patient, caregiver, vaccine).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) ByPatient(ctx context.Context, patient string) ([]models.Appointment, error) {
	query :=
		`SELECT id, appointment_date, patient_username, caregiver_username, vaccine_name
		 FROM appointments
		 WHERE patient_username = $1
		 ORDER BY caregiver_username, id
		 `

	return r.list(ctx, query, patient)
}

func (r *PostgresRepository) ByPatientByID(ctx context.Context, patient string) ([]models.Appointment, error) {
	query :=
		`SELECT id, appointment_date, patient_username, caregiver_username, vaccine_name
		 FROM appointments
		 WHERE patient_username = $1
		 ORDER BY id
		 `

	return r.list(ctx, query, patient)
}

func (r *PostgresRepository) ByCaregiver(ctx context.Context, caregiver string) ([]models.Appointment, error) {
	query :=
		`SELECT id, appointment_date, patient_username, caregiver_username, vaccine_name
		 FROM appointments
		 WHERE caregiver_username = $1
		 ORDER BY id
		 `

	return r.list(ctx, query, caregiver)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func scanAppointments(rows *sql.Rows) ([]models.Appointment, error) {
	result := make([]models.Appointment, 0)
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.Date, &a.Patient, &a.Caregiver, &a.Vaccine); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
