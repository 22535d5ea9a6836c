// Package httpapi exposes the services over REST/JSON with gin.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/solarplan/internal/logging"
	"github.com/dmitrijs2005/solarplan/internal/server/models"
	"github.com/gin-gonic/gin"
)

type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Identity, error)
}

type ProjectService interface {
	List(ctx context.Context, userID string) ([]*models.Project, error)
	Create(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id, userID string) error
}

type EstimateService interface {
	Create(ctx context.Context, userID, consumption string) (*models.SavedEstimate, error)
	List(ctx context.Context, userID string) ([]*models.SavedEstimate, error)
}

// Pinger reports store health. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options holds the timeouts the server applies.
type Options struct {
	// QueryTimeout bounds the store work of a single request.
	QueryTimeout time.Duration
	// ShutdownTimeout bounds how long in-flight requests may drain.
	ShutdownTimeout time.Duration
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     UserService
	projects  ProjectService
	estimates EstimateService
	db        Pinger
	opts      Options
	engine    *gin.Engine
}

func NewHTTPServer(a string, l logging.Logger, db Pinger, us UserService, ps ProjectService, es EstimateService, opts Options) *HTTPServer {
	s := &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		projects:  ps,
		estimates: es,
		db:        db,
		opts:      opts,
	}
	s.engine = s.routes()
	return s
}

// Handler returns the router. Useful for httptest.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), corsMiddleware(), s.queryTimeout())

	r.GET("/", s.root)
	r.GET("/healthz", s.healthz)

	api := r.Group("/api")
	{
		api.POST("/auth/register", s.register)
		api.POST("/auth/login", s.login)

		api.GET("/projetos", s.listProjects)
		api.POST("/projetos", s.createProject)
		api.PUT("/projetos/:id", s.updateProject)
		api.DELETE("/projetos/:id", s.deleteProject)

		api.GET("/orcamentos", s.listEstimates)
		api.POST("/orcamentos", s.createEstimate)
	}

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		sctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(sctx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-shutdownErr
}
