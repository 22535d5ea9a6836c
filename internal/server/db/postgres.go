// Package db opens the process-wide PostgreSQL connection pool. It applies
// the TLS policy towards the store and bounds the pool; RunMigrations brings
// the schema up to date with the embedded goose migrations.
package db

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/solarplan/internal/server/config"
	"github.com/dmitrijs2005/solarplan/internal/server/migrations"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PoolOptions bounds the connection pool.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// TLSPolicy describes how the store's certificate is checked.
type TLSPolicy struct {
	Insecure bool
	CAFile   string
}

// gooseUpContext is a seam for tests.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// ParseConfig parses dsn and applies the TLS policy to it.
func ParseConfig(dsn string, policy TLSPolicy) (*pgx.ConnConfig, error) {
	cc, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if err := applyTLSPolicy(cc, policy); err != nil {
		return nil, err
	}
	return cc, nil
}

// applyTLSPolicy rewrites every TLS config pgx derived from the DSN. With
// sslmode=require or prefer pgx skips verification; unless the policy is
// insecure we turn verification back on and pin the server name to the
// host. DSNs with sslmode=disable have no TLS config and are left alone.
func applyTLSPolicy(cc *pgx.ConnConfig, policy TLSPolicy) error {
	var roots *x509.CertPool
	if policy.CAFile != "" {
		pem, err := os.ReadFile(policy.CAFile)
		if err != nil {
			return fmt.Errorf("read CA file: %w", err)
		}
		roots = x509.NewCertPool()
		if !roots.AppendCertsFromPEM(pem) {
			return fmt.Errorf("no certificates found in %s", policy.CAFile)
		}
	}

	apply := func(t *tls.Config, host string) {
		if t == nil {
			return
		}
		if roots != nil {
			t.RootCAs = roots
		}
		if policy.Insecure {
			t.InsecureSkipVerify = true
			t.VerifyPeerCertificate = nil
			return
		}
		t.InsecureSkipVerify = false
		t.VerifyPeerCertificate = nil
		if t.ServerName == "" {
			t.ServerName = host
		}
	}

	apply(cc.TLSConfig, cc.Host)
	for _, fb := range cc.Fallbacks {
		apply(fb.TLSConfig, fb.Host)
	}

	return nil
}

// PolicyFor maps the configured TLS mode to a TLSPolicy. Unknown modes are
// an error.
func PolicyFor(cfg *config.Config) (TLSPolicy, error) {
	if err := cfg.Validate(); err != nil {
		return TLSPolicy{}, err
	}
	return TLSPolicy{
		Insecure: cfg.DatabaseTLSMode == config.TLSModeInsecure,
		CAFile:   cfg.DatabaseCAFile,
	}, nil
}

// Open builds the pool and checks connectivity. The caller owns the
// returned *sql.DB and must Close it on shutdown.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	policy, err := PolicyFor(cfg)
	if err != nil {
		return nil, err
	}

	cc, err := ParseConfig(cfg.DatabaseDSN, policy)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDB(*cc)
	Configure(db, PoolOptions{
		MaxOpenConns:    cfg.DatabaseMaxConns,
		MaxIdleConns:    cfg.DatabaseMaxIdleConns,
		ConnMaxLifetime: cfg.DatabaseConnMaxLifetime,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}

// Configure applies pool bounds. Checkouts block once MaxOpenConns
// connections are in use.
func Configure(db *sql.DB, o PoolOptions) {
	if o.MaxOpenConns > 0 {
		db.SetMaxOpenConns(o.MaxOpenConns)
	}
	if o.MaxIdleConns > 0 {
		idle := o.MaxIdleConns
		if o.MaxOpenConns > 0 && idle > o.MaxOpenConns {
			idle = o.MaxOpenConns
		}
		db.SetMaxIdleConns(idle)
	}
	if o.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(o.ConnMaxLifetime)
	}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
