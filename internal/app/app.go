// Package app wires configuration, logging, the vocabulary store and the
// HTTP server together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lehmann314159/latinvocab/internal/api"
	"github.com/lehmann314159/latinvocab/internal/config"
	"github.com/lehmann314159/latinvocab/internal/repository"
	"github.com/lehmann314159/latinvocab/internal/services"
)

// App holds the long-lived pieces of a running process.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Lookup *services.LookupService

	store *repository.SQLiteStore
}

// New opens the vocabulary store described by cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := NewLogger(cfg.Log)

	store, err := repository.OpenSQLite(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("vocabulary store opened", slog.String("path", cfg.Database.Path))

	return &App{
		Config: cfg,
		Logger: logger,
		Lookup: services.NewLookupService(store, logger),
		store:  store,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.store.Close()
}

// Serve runs the HTTP API until ctx is cancelled, then shuts down within
// the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	cfg := a.Config.Server
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.NewRouter(api.NewHandler(a.Lookup, a.Logger), a.Logger, a.Config.CORS),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
