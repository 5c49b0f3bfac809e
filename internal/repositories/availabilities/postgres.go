package availabilities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Publish skips a pair that already has an appointment; the unique
// (caregiver, date) constraint on appointments would reject booking it again.
func (r *PostgresRepository) Publish(ctx context.Context, caregiver string, date time.Time) error {
	query :=
		`INSERT INTO availabilities (caregiver_username, available_on)
		 SELECT $1::text, $2::date
		 WHERE NOT EXISTS (
		     SELECT 1 FROM appointments
		     WHERE caregiver_username = $1 AND appointment_date = $2
		 )
		 ON CONFLICT DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, caregiver, date); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// PickAndConsume locks the chosen row with SKIP LOCKED, so a concurrent
// reservation moves on to the next caregiver instead of waiting for a row it
// could never get. Rows whose pair is already booked are never picked.
func (r *PostgresRepository) PickAndConsume(ctx context.Context, date time.Time) (string, bool, error) {
	query :=
		`DELETE FROM availabilities
		 WHERE (caregiver_username, available_on) IN (
		     SELECT av.caregiver_username, av.available_on FROM availabilities av
		     WHERE av.available_on = $1
		       AND NOT EXISTS (
		           SELECT 1 FROM appointments ap
		           WHERE ap.caregiver_username = av.caregiver_username
		             AND ap.appointment_date = av.available_on
		       )
		     ORDER BY av.caregiver_username
		     LIMIT 1
		     FOR UPDATE SKIP LOCKED
		 )
		 RETURNING caregiver_username
		 `

	var caregiver string
	err := r.db.QueryRowContext(ctx, query, date).Scan(&caregiver)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("db error: %w", err)
	}

	return caregiver, true, nil
}

func (r *PostgresRepository) ListAvailable(ctx context.Context, date time.Time) ([]string, error) {
	query :=
		`SELECT av.caregiver_username FROM availabilities av
		 WHERE av.available_on = $1
		   AND NOT EXISTS (
		       SELECT 1 FROM appointments ap
		       WHERE ap.caregiver_username = av.caregiver_username
		         AND ap.appointment_date = av.available_on
		   )
		 ORDER BY av.caregiver_username
		 `

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var caregiver string
		if err := rows.Scan(&caregiver); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, caregiver)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Restore(ctx context.Context, caregiver string, date time.Time) error {
	return r.Publish(ctx, caregiver, date)
}
