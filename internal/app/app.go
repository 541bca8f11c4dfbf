// Package app assembles the service: storage, migrations, the artifact
// store, the business services and the HTTP server.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/annakorobkova/inspira/internal/artifact"
	"github.com/annakorobkova/inspira/internal/config"
	"github.com/annakorobkova/inspira/internal/lib/session"
	"github.com/annakorobkova/inspira/internal/migrations"
	authservice "github.com/annakorobkova/inspira/internal/services/auth"
	inspirationservice "github.com/annakorobkova/inspira/internal/services/inspiration"
	"github.com/annakorobkova/inspira/internal/storage/repository"
)

// App owns the HTTP server and the resources it depends on.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New wires every component together. The artifact store is optional:
// without credentials the disabled uploader is selected and image
// uploads silently degrade to "no image".
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(cfg.StorageConnectionString, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	var uploader artifact.Uploader
	if cfg.ArtifactStore.Enabled() {
		uploader, err = artifact.NewS3Uploader(ctx, cfg.ArtifactStore)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("artifact store not configured, image uploads disabled")
		uploader = artifact.Disabled{}
	}

	sessionMaker := session.NewMaker(cfg.Session.Secret, cfg.Session.TokenTTL)
	cookie := session.Cookie{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TokenTTL,
		Secure: cfg.Session.SecureCookies || cfg.Env == "prod",
	}

	authService := authservice.New(db, sessionMaker)
	inspirationService := inspirationservice.New(db, uploader, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, authService, inspirationService, sessionMaker, cookie)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// server fails, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.Close()
		return err
	}
}
