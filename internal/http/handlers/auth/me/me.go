// Package me implements the HTTP handler returning the authenticated
// user.
package me

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/annakorobkova/inspira/internal/http/middlewarectx"
	"github.com/annakorobkova/inspira/internal/http/response"
	"github.com/annakorobkova/inspira/internal/lib/sl"
	"github.com/annakorobkova/inspira/internal/models"
	"github.com/annakorobkova/inspira/internal/storage"
)

// Service is the auth contract the handler needs.
type Service interface {
	Me(ctx context.Context, uid string) (*models.User, error)
}

// Handler serves GET /api/me.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates the handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid, ok := middlewarectx.UserUIDFromContext(r.Context())
	if !ok {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	user, err := h.service.Me(r.Context(), uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("session user no longer exists", slog.String("uid", uid))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}
		log.Error("failed to load user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load user"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user,
	}))
}
