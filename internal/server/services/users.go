package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/solarplan/internal/common"
	"github.com/dmitrijs2005/solarplan/internal/cryptox"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/repomanager"
)

// UserService registers accounts and checks credentials.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates an account. Only a bcrypt hash of password is stored.
// An email that is already registered yields common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrTooLong) {
			return nil, fmt.Errorf("%w: password is too long", common.ErrorValidation)
		}
		return nil, err
	}

	user := &models.User{ID: newID(), Email: email, PasswordHash: hash}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, fmt.Errorf("%w: email %s is already registered", common.ErrorConflict, email)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u, nil
}

// Login returns the identity of the account matching email and password.
// Unknown emails yield common.ErrorNotFound and wrong passwords
// common.ErrorUnauthorized; both take a bcrypt comparison.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.CompareDummy(password)
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if err := cryptox.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error checking password: %w", err)
	}

	return user.Identity(), nil
}
