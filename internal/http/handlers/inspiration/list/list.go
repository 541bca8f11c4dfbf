// Package list implements the HTTP handler returning the gallery of
// the authenticated user, optionally filtered by a search substring and
// a set of required tags.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/annakorobkova/inspira/internal/http/middlewarectx"
	"github.com/annakorobkova/inspira/internal/http/response"
	"github.com/annakorobkova/inspira/internal/lib/sl"
	"github.com/annakorobkova/inspira/internal/models"
)

// Service is the gallery contract the handler needs.
type Service interface {
	List(ctx context.Context, userUID string, filter models.Filter) ([]*models.Inspiration, error)
}

// Handler serves GET /api/inspirations.
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
	const op = "handlers.inspiration.list"

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

	filter := models.Filter{
		Search: r.URL.Query().Get("search"),
	}
	if rawTags := r.URL.Query().Get("tags"); rawTags != "" {
		filter.Tags = []string{rawTags}
	}

	res, err := h.service.List(r.Context(), uid, filter)
	if err != nil {
		log.Error("failed to list inspirations", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list inspirations"))
		return
	}

	log.Info("inspirations listed", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":        len(res),
		"inspirations": res,
	}))
}
