package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annakorobkova/inspira/internal/config"
	"github.com/annakorobkova/inspira/internal/http/handlers/auth/login"
	"github.com/annakorobkova/inspira/internal/http/handlers/auth/logout"
	"github.com/annakorobkova/inspira/internal/http/handlers/auth/me"
	"github.com/annakorobkova/inspira/internal/http/handlers/auth/register"
	"github.com/annakorobkova/inspira/internal/http/handlers/health"
	"github.com/annakorobkova/inspira/internal/http/handlers/inspiration/create"
	"github.com/annakorobkova/inspira/internal/http/handlers/inspiration/list"
	"github.com/annakorobkova/inspira/internal/http/handlers/inspiration/remove"
	"github.com/annakorobkova/inspira/internal/http/handlers/inspiration/update"
	"github.com/annakorobkova/inspira/internal/http/middlewarectx"
	"github.com/annakorobkova/inspira/internal/lib/session"
	authservice "github.com/annakorobkova/inspira/internal/services/auth"
	inspirationservice "github.com/annakorobkova/inspira/internal/services/inspiration"
)

// RegisterRoutes mounts every route of the application.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	authService *authservice.Service, inspirationService *inspirationservice.Service,
	sessionMaker session.Maker, cookie session.Cookie) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", register.New(logger, authService, cookie).ServeHTTP)
		r.Post("/login", login.New(logger, authService, cookie).ServeHTTP)
		r.Post("/logout", logout.New(logger, cookie).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(sessionMaker, cookie.Name, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/me", me.New(logger, authService).ServeHTTP)
			r.Get("/inspirations", list.New(logger, inspirationService).ServeHTTP)
			r.Post("/inspirations", create.New(logger, inspirationService).ServeHTTP)
			r.Put("/inspirations/{id}", update.New(logger, inspirationService).ServeHTTP)
			r.Delete("/inspirations/{id}", remove.New(logger, inspirationService).ServeHTTP)
		})
	})

	r.Get("/health", health.New().ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
}
