package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrijs2005/solarplan/internal/budget"
	"github.com/dmitrijs2005/solarplan/internal/common"
	"github.com/dmitrijs2005/solarplan/internal/dbx"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/repomanager"
)

// EstimateService sizes installations with the budget package and keeps
// the results a user chose to save.
type EstimateService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEstimateService(db *sql.DB, m repomanager.RepositoryManager) *EstimateService {
	return &EstimateService{db: db, repomanager: m}
}

// Create computes the estimate for consumption (kWh/month, as typed by the
// user) and stores it. The figures are recomputed here; the client's copy
// is never trusted.
func (s *EstimateService) Create(ctx context.Context, userID, consumption string) (*models.SavedEstimate, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	est, err := budget.EstimateFromInput(consumption)
	if err != nil {
		return nil, err
	}
	if est.TotalCostCents >= maxCost*100 || est.PanelsNeeded > math.MaxInt32 {
		return nil, fmt.Errorf("%w: consumption %s is too large to store", common.ErrorValidation, consumption)
	}

	var saved *models.SavedEstimate
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := s.repomanager.Users(tx).Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %s does not exist", common.ErrorValidation, userID)
		}

		saved, err = s.repomanager.Estimates(tx).Create(ctx, &models.SavedEstimate{
			ID:             newID(),
			UserID:         userID,
			ConsumptionKwh: strconv.FormatFloat(est.ConsumptionKwh, 'f', -1, 64),
			Panels:         est.PanelsNeeded,
			Cost:           est.FormattedCost(),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error saving estimate: %w", err)
	}

	return saved, nil
}

// List returns the user's saved estimates, newest first.
func (s *EstimateService) List(ctx context.Context, userID string) ([]*models.SavedEstimate, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	items, err := s.repomanager.Estimates(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing estimates: %w", err)
	}

	return items, nil
}
