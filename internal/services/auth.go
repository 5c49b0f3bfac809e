package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/cryptox"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

const minPasswordLength = 8

type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *AuthService {
	return &AuthService{db: db, repomanager: m, logger: logger}
}

// StrongPassword reports whether password has at least 8 characters, mixes
// upper and lower case letters with digits and contains one of ! @ # ?.
// Any other character makes the password invalid.
func StrongPassword(password []byte) bool {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	n := 0

	for _, c := range string(password) {
		n++
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case c == '!' || c == '@' || c == '#' || c == '?':
			hasSpecial = true
		default:
			return false
		}
	}

	return n >= minPasswordLength && hasUpper && hasLower && hasDigit && hasSpecial
}

// Register creates an account. The username check runs before the password
// check, so a taken name is reported even for a weak password.
func (s *AuthService) Register(ctx context.Context, role models.Role, username string, password []byte) (*models.Account, error) {

	repo := s.repomanager.Accounts(s.db)

	exists, err := repo.Exists(ctx, role, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}
	if exists {
		return nil, common.ErrUsernameTaken
	}

	if !StrongPassword(password) {
		return nil, common.ErrWeakPassword
	}

	salt := cryptox.NewSalt()
	account := &models.Account{
		Role:     role,
		Username: username,
		Salt:     salt,
		Hash:     cryptox.HashPassword(password, salt),
	}

	if err := repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}

	s.logger.Info(ctx, "account created", "role", role.String(), "username", username)
	return account, nil
}

func (s *AuthService) Login(ctx context.Context, role models.Role, username string, password []byte) (*models.Account, error) {

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByUsername(ctx, role, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "login failed", "role", role.String(), "username", username, "reason", "unknown user")
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "login lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(password, account.Salt, account.Hash) {
		s.logger.Warn(ctx, "login failed", "role", role.String(), "username", username, "reason", "bad password")
		return nil, common.ErrorUnauthorized
	}

	s.logger.Info(ctx, "logged in", "role", role.String(), "username", username)
	return account, nil
}
