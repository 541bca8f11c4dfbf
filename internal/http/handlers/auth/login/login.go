// Package login implements the HTTP handler authenticating users.
//
// Unknown email and wrong password produce the same "invalid
// credentials" response so the endpoint cannot be used to enumerate
// accounts.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/annakorobkova/inspira/internal/http/response"
	"github.com/annakorobkova/inspira/internal/lib/session"
	"github.com/annakorobkova/inspira/internal/lib/sl"
	"github.com/annakorobkova/inspira/internal/models"
	"github.com/annakorobkova/inspira/internal/services/auth"
)

// Request is the login input.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Service is the auth contract the handler needs.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// Handler serves POST /api/login.
type Handler struct {
	log      *slog.Logger
	service  Service
	cookie   session.Cookie
	validate *validator.Validate
}

// New creates the handler.
func New(log *slog.Logger, service Service, cookie session.Cookie) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		cookie:   cookie,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Error("login rejected")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to login"))
		return
	}

	log.Info("login success", slog.String("uid", user.UID))
	h.cookie.Set(w, token)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user,
	}))
}
