// Package create implements the HTTP handler adding a new inspiration.
//
// The request is multipart/form-data with title, description and tags
// fields and an optional image file. A failed or unconfigured image
// upload does not fail the request; the record is created without an
// image.
package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/annakorobkova/inspira/internal/http/middlewarectx"
	"github.com/annakorobkova/inspira/internal/http/response"
	"github.com/annakorobkova/inspira/internal/lib/sl"
	"github.com/annakorobkova/inspira/internal/models"
	"github.com/annakorobkova/inspira/internal/services/inspiration"
)

// maxUploadSize caps the in-memory multipart form, image included.
const maxUploadSize = 10 << 20

// Service is the gallery contract the handler needs.
type Service interface {
	Create(ctx context.Context, userUID string, in inspiration.CreateInput) (*models.Inspiration, error)
}

// Handler serves POST /api/inspirations.
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
	const op = "handlers.inspiration.create"

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

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	title := r.FormValue("title")
	if title == "" {
		log.Error("title is missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("title is required"))
		return
	}

	in := inspiration.CreateInput{
		Title:       title,
		Description: r.FormValue("description"),
		Tags:        r.MultipartForm.Value["tags"],
	}

	image, imageType, err := readImage(r)
	if err != nil {
		log.Error("failed to read image file", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid image file"))
		return
	}
	in.Image = image
	in.ImageType = imageType

	insp, err := h.service.Create(r.Context(), uid, in)
	if err != nil {
		log.Error("failed to create inspiration", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create inspiration"))
		return
	}

	log.Info("inspiration created", slog.String("id", insp.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"inspiration": insp,
	}))
}

func readImage(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Header.Get("Content-Type"), nil
}
