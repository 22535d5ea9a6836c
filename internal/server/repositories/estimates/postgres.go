// Package estimates stores budget estimates (orcamentos) users chose to keep.
package estimates

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/solarplan/internal/dbx"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
)

const columns = `id::text, user_id::text, consumo_kwh::text, placas, custo::text, criado_em`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.SavedEstimate) (*models.SavedEstimate, error) {
	query :=
		`INSERT INTO orcamentos (id, user_id, consumo_kwh, placas, custo)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + columns

	out := &models.SavedEstimate{}
	err := r.db.QueryRowContext(ctx, query, e.ID, e.UserID, e.ConsumptionKwh, e.Panels, e.Cost).
		Scan(&out.ID, &out.UserID, &out.ConsumptionKwh, &out.Panels, &out.Cost, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

// ListByUser returns the user's estimates, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.SavedEstimate, error) {
	query :=
		`SELECT ` + columns + ` FROM orcamentos
		 WHERE user_id = $1
		 ORDER BY criado_em DESC, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.SavedEstimate, 0)
	for rows.Next() {
		e := &models.SavedEstimate{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.ConsumptionKwh, &e.Panels, &e.Cost, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
