// Package logout implements the HTTP handler clearing the session
// cookie. The server keeps no session state, so logout is advisory: an
// already issued token stays valid until it expires.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/annakorobkova/inspira/internal/http/response"
	"github.com/annakorobkova/inspira/internal/lib/session"
)

// Handler serves POST /api/logout.
type Handler struct {
	log    *slog.Logger
	cookie session.Cookie
}

// New creates the handler.
func New(log *slog.Logger, cookie session.Cookie) *Handler {
	return &Handler{
		log:    log,
		cookie: cookie,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.cookie.Clear(w)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "logout successful",
	}))
}
