// Package health implements the liveness endpoint.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/annakorobkova/inspira/internal/http/response"
)

// Handler serves GET /health.
type Handler struct{}

// New creates the handler.
func New() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": "ok",
	}))
}
