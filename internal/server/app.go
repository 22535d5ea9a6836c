// Package server wires configuration, storage, services and the HTTP
// surface together and runs them until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/solarplan/internal/logging"
	"github.com/dmitrijs2005/solarplan/internal/server/config"
	serverdb "github.com/dmitrijs2005/solarplan/internal/server/db"
	"github.com/dmitrijs2005/solarplan/internal/server/httpapi"
	"github.com/dmitrijs2005/solarplan/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/solarplan/internal/server/services"
)

// Seams for tests.
var (
	openDB         = serverdb.Open
	newRepoManager = repomanager.NewPostgresRepositoryManager
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *services.UserService
	projectService  *services.ProjectService
	estimateService *services.EstimateService
}

// NewApp connects to the store, applies pending migrations and builds the
// services. On error nothing is left open.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	db, err := openDB(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		userService:     services.NewUserService(db, rm),
		projectService:  services.NewProjectService(db, rm),
		estimateService: services.NewEstimateService(db, rm),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.db,
		app.userService, app.projectService, app.estimateService,
		httpapi.Options{
			QueryTimeout:    app.config.QueryTimeout,
			ShutdownTimeout: app.config.ShutdownTimeout,
		})

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or a signal arrives, waits for the
// HTTP server to drain, then closes the pool.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup
	var runErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")

	return runErr
}
