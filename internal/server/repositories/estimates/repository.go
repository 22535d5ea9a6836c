package estimates

import (
	"context"

	"github.com/dmitrijs2005/solarplan/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.SavedEstimate) (*models.SavedEstimate, error)
	ListByUser(ctx context.Context, userID string) ([]*models.SavedEstimate, error)
}
