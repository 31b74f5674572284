// Package server wires configuration, storage and services into the REST
// API and runs it until the context is cancelled.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/logging"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/blobstore"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/config"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/httpapi"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/repomanager"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/services"
)

// Seams for tests.
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepoManager = func() repomanager.RepositoryManager {
		return repomanager.NewPostgresRepositoryManager()
	}
	newBlobStore = func(ctx context.Context, cfg *config.Config) (blobstore.Store, error) {
		return blobstore.NewS3Store(ctx, cfg)
	}
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	blobs, err := newBlobStore(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	us := services.NewUserService(db, rm, blobs, c, logger.With("module", "user_service"))
	fs := services.NewFeedService(db, rm)
	api := httpapi.NewServer(us, fs, logger, c.SecretKey)

	return &App{config: c, logger: logger, db: db, handler: api.Handler()}, nil
}

func (app *App) Handler() http.Handler { return app.handler }

// Run serves until ctx is cancelled, then drains in-flight requests for up to
// ShutdownTimeout.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return err
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: app.handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		app.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()

		app.logger.Info(ctx, "Stopping HTTP server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (app *App) Close() error {
	return app.db.Close()
}
