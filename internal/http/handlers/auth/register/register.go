// Package register implements the HTTP handler creating new accounts.
//
// The handler decodes a JSON body with name, email and password,
// validates it, delegates to the auth service and on success issues the
// session cookie alongside HTTP 201.
package register

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
	"github.com/annakorobkova/inspira/internal/storage"
)

// Request is the registration input. Password must be at least six
// characters.
type Request struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Service is the auth contract the handler needs.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
}

// Handler serves POST /api/register.
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
	const op = "handlers.auth.register"

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

	user, token, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			log.Error("email already registered", slog.String("email", req.Email))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("user already exists with this email"))
			return
		}
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("user registered", slog.String("uid", user.UID))
	h.cookie.Set(w, token)
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user,
	}))
}
