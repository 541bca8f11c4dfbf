// Package update implements the HTTP handler applying a partial update
// to an inspiration.
//
// The request is multipart/form-data and every field is optional: a
// present non-empty title replaces the stored one, a present
// description replaces even with an empty string, a present tags field
// fully replaces the tag set, removeImage=true clears the image URL and
// a new image file replaces it. A record owned by another user yields
// 404, not 403, so ids cannot be probed for existence.
package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/annakorobkova/inspira/internal/http/middlewarectx"
	"github.com/annakorobkova/inspira/internal/http/response"
	"github.com/annakorobkova/inspira/internal/lib/sl"
	"github.com/annakorobkova/inspira/internal/models"
	"github.com/annakorobkova/inspira/internal/services/inspiration"
	"github.com/annakorobkova/inspira/internal/storage"
)

const maxUploadSize = 10 << 20

// Service is the gallery contract the handler needs.
type Service interface {
	Update(ctx context.Context, userUID, id string, in inspiration.UpdateInput) (*models.Inspiration, error)
}

// Handler serves PUT /api/inspirations/{id}.
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
	const op = "handlers.inspiration.update"

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

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	in := inspiration.UpdateInput{
		RemoveImage: r.FormValue("removeImage") == "true",
	}
	values := r.MultipartForm.Value
	if titles, ok := values["title"]; ok && titles[0] != "" {
		in.Title = &titles[0]
	}
	if descriptions, ok := values["description"]; ok {
		in.Description = &descriptions[0]
	}
	if rawTags, ok := values["tags"]; ok {
		in.Tags = &rawTags
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

	insp, err := h.service.Update(r.Context(), uid, id, in)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("inspiration not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("inspiration not found"))
			return
		}
		log.Error("failed to update inspiration", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update inspiration"))
		return
	}

	log.Info("inspiration updated", slog.String("id", insp.ID))
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
