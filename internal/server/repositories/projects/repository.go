package projects

import (
	"context"

	"github.com/dmitrijs2005/solarplan/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Project, error)
	Update(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id, userID string) error
}
