// Package repomanager provides the PostgreSQL RepositoryManager.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/solarplan/internal/dbx"
	serverdb "github.com/dmitrijs2005/solarplan/internal/server/db"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/estimates"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/projects"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/users"
)

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Projects(db dbx.DBTX) projects.Repository {
	return projects.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Estimates(db dbx.DBTX) estimates.Repository {
	return estimates.NewPostgresRepository(db)
}

// RunMigrations applies the embedded schema migrations to db.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return serverdb.RunMigrations(ctx, db)
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
