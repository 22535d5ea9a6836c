package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/solarplan/internal/common"
	"github.com/dmitrijs2005/solarplan/internal/dbx"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/repomanager"
)

// ProjectService manages projects on behalf of their owners. Every
// operation is scoped by user id; a project owned by someone else behaves
// as if it did not exist.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager) *ProjectService {
	return &ProjectService{db: db, repomanager: m}
}

// List returns the user's projects oldest first. Users without projects
// get an empty, non-nil slice.
func (s *ProjectService) List(ctx context.Context, userID string) ([]*models.Project, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	items, err := s.repomanager.Projects(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}

	return items, nil
}

// Create stores a new project for in.UserID. The owner must exist; the
// check and the insert share a transaction.
func (s *ProjectService) Create(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	in, err := validateProjectInput(in)
	if err != nil {
		return nil, err
	}

	var created *models.Project
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := s.repomanager.Users(tx).Exists(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %s does not exist", common.ErrorValidation, in.UserID)
		}

		created, err = s.repomanager.Projects(tx).Create(ctx, &models.Project{
			ID:     newID(),
			UserID: in.UserID,
			Name:   in.Name,
			Cost:   in.Cost,
			Status: in.Status,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	return created, nil
}

// Update rewrites name, cost and status of project id. The row must be
// owned by in.UserID, otherwise common.ErrorNotFound is returned and
// nothing changes.
func (s *ProjectService) Update(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error) {
	in, err := validateProjectInput(in)
	if err != nil {
		return nil, err
	}
	if !validEntityID(id) {
		return nil, common.ErrorNotFound
	}

	p, err := s.repomanager.Projects(s.db).Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("error updating project: %w", err)
	}

	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if !validEntityID(id) {
		return common.ErrorNotFound
	}

	if err := s.repomanager.Projects(s.db).Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	return nil
}

func validateProjectInput(in models.ProjectInput) (models.ProjectInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Status = models.Status(strings.TrimSpace(string(in.Status)))

	var missing []string
	if in.Name == "" {
		missing = append(missing, "nome")
	}
	if strings.TrimSpace(in.Cost) == "" {
		missing = append(missing, "custo")
	}
	if in.Status == "" {
		missing = append(missing, "status")
	}
	if strings.TrimSpace(in.UserID) == "" {
		missing = append(missing, "user_id")
	}
	if len(missing) > 0 {
		return in, fmt.Errorf("%w: missing %s", common.ErrorValidation, strings.Join(missing, ", "))
	}

	if err := validateUserID(in.UserID); err != nil {
		return in, err
	}

	cost, err := normalizeCost(in.Cost)
	if err != nil {
		return in, err
	}
	in.Cost = cost

	return in, nil
}
