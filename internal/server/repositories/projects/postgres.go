// Package projects stores projetos rows.
package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/solarplan/internal/common"
	"github.com/dmitrijs2005/solarplan/internal/dbx"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
)

const columns = `id::text, user_id::text, nome, custo::text, status, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*models.Project, error) {
	p := &models.Project{}
	var status string
	if err := s.Scan(&p.ID, &p.UserID, &p.Name, &p.Cost, &status, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Status = models.Status(status)
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	query :=
		`INSERT INTO projetos (id, user_id, nome, custo, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + columns

	row := r.db.QueryRowContext(ctx, query, p.ID, p.UserID, p.Name, p.Cost, string(p.Status))
	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Project, error) {
	query :=
		`SELECT ` + columns + ` FROM projetos
		 WHERE user_id = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update rewrites name, cost and status of the project id owned by
// in.UserID. A project owned by someone else is reported as not found.
func (r *PostgresRepository) Update(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error) {
	query :=
		`UPDATE projetos SET nome = $1, custo = $2, status = $3
		 WHERE id = $4 AND user_id = $5
		 RETURNING ` + columns

	row := r.db.QueryRowContext(ctx, query, in.Name, in.Cost, string(in.Status), id, in.UserID)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM projetos WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
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
