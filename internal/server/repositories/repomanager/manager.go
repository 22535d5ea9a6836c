package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/solarplan/internal/dbx"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/estimates"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/projects"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can use
// the same repositories on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Projects(db dbx.DBTX) projects.Repository
	Estimates(db dbx.DBTX) estimates.Repository
}
