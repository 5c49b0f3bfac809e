package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

var errUnknownRole = errors.New("unknown account role")

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func tableFor(role models.Role) (string, error) {
	switch role {
	case models.RolePatient:
		return "patients", nil
	case models.RoleCaregiver:
		return "caregivers", nil
	default:
		return "", errUnknownRole
	}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) error {
	table, err := tableFor(account.Role)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (username, salt, hash)
		 VALUES ($1, $2, $3)
		 `, table)

	if _, err := r.db.ExecContext(ctx, query, account.Username, account.Salt, account.Hash); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrUsernameTaken
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, role models.Role, username string) (*models.Account, error) {
	table, err := tableFor(role)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT username, salt, hash FROM %s
		 WHERE username = $1
		 `, table)

	account := &models.Account{Role: role}
	err = r.db.QueryRowContext(ctx, query, username).Scan(&account.Username, &account.Salt, &account.Hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, role models.Role, username string) (bool, error) {
	table, err := tableFor(role)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE username = $1)
		 `, table)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}
