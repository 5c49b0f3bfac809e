package vaccines

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// PostgresRepository keeps lots in the vaccines table. Every mutation is a
// single statement, so row-level locking makes it atomic on its own.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) AddDoses(ctx context.Context, name string, count int) (int, error) {
	query :=
		`INSERT INTO vaccines (name, doses)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET doses = vaccines.doses + EXCLUDED.doses
		 RETURNING doses
		 `

	var doses int
	if err := r.db.QueryRowContext(ctx, query, name, count).Scan(&doses); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return doses, nil
}

func (r *PostgresRepository) TryReserveOne(ctx context.Context, name string) (bool, error) {
	query :=
		`UPDATE vaccines SET doses = doses - 1
		 WHERE name = $1 AND doses > 0
		 RETURNING doses
		 `

	var doses int
	err := r.db.QueryRowContext(ctx, query, name).Scan(&doses)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}

	return true, nil
}

func (r *PostgresRepository) ReleaseOne(ctx context.Context, name string) error {
	query :=
		`UPDATE vaccines SET doses = doses + 1
		 WHERE name = $1
		 `

	res, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Vaccine, error) {
	query :=
		`SELECT name, doses FROM vaccines
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Vaccine, 0)
	for rows.Next() {
		var v models.Vaccine
		if err := rows.Scan(&v.Name, &v.Doses); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
