package client

import (
	"context"

	"github.com/dmitrijs2005/solarplan/internal/server/models"
)

type Client interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*models.Identity, error)

	ListProjects(ctx context.Context, userID string) ([]*models.Project, error)
	CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, id, userID string) error

	SaveEstimate(ctx context.Context, userID string, consumptionKwh float64) (*models.SavedEstimate, error)
	ListEstimates(ctx context.Context, userID string) ([]*models.SavedEstimate, error)
}
