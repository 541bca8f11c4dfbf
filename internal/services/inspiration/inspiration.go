// Package inspiration contains the business logic for the gallery
// records: listing, creation, partial update and removal, plus the
// optional image hosting.
package inspiration

import (
	"context"
	"log/slog"

	"github.com/annakorobkova/inspira/internal/artifact"
	"github.com/annakorobkova/inspira/internal/lib/sl"
	"github.com/annakorobkova/inspira/internal/lib/tags"
	"github.com/annakorobkova/inspira/internal/models"
)

// Repository is the storage contract the service needs. Every method is
// scoped by the owning user uid.
type Repository interface {
	CreateInspiration(ctx context.Context, insp models.Inspiration) (*models.Inspiration, error)
	ListInspirations(ctx context.Context, userUID string, filter models.Filter) ([]*models.Inspiration, error)
	UpdateInspiration(ctx context.Context, userUID, id string, patch models.InspirationPatch) (*models.Inspiration, error)
	DeleteInspiration(ctx context.Context, userUID, id string) error
}

// CreateInput carries the fields of a new record. Tags arrive raw and
// are normalized here. Image is optional.
type CreateInput struct {
	Title       string
	Description string
	Tags        []string
	Image       []byte
	ImageType   string
}

// UpdateInput carries a partial update. Nil pointers leave the stored
// value untouched; RemoveImage wins over a new Image.
type UpdateInput struct {
	Title       *string
	Description *string
	Tags        *[]string
	Image       []byte
	ImageType   string
	RemoveImage bool
}

// Service implements the gallery operations.
type Service struct {
	repo     Repository
	uploader artifact.Uploader
	log      *slog.Logger
}

// New creates the inspiration service.
func New(repo Repository, uploader artifact.Uploader, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		log:      log,
	}
}

// List returns the user's records matching the filter, newest first.
func (s *Service) List(ctx context.Context, userUID string, filter models.Filter) ([]*models.Inspiration, error) {
	filter.Tags = tags.Normalize(filter.Tags)
	return s.repo.ListInspirations(ctx, userUID, filter)
}

// Create stores a new record. When an image is attached it is uploaded
// first; an upload failure is logged and the record is still created
// with an empty image URL. The degrade is intentional, see the artifact
// package comment.
func (s *Service) Create(ctx context.Context, userUID string, in CreateInput) (*models.Inspiration, error) {
	imageURL := ""
	if len(in.Image) > 0 {
		url, err := s.uploader.Upload(ctx, in.Image, in.ImageType)
		if err != nil {
			s.log.Warn("image upload failed, creating inspiration without image", sl.Err(err))
		} else {
			imageURL = url
		}
	}

	return s.repo.CreateInspiration(ctx, models.Inspiration{
		UserUID:     userUID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    imageURL,
		Tags:        tags.Normalize(in.Tags),
	})
}

// Update applies a partial update to the user's record. Image handling:
// RemoveImage clears the URL, a new image replaces it on successful
// upload, a failed upload keeps the previous URL, and neither leaves it
// untouched.
func (s *Service) Update(ctx context.Context, userUID, id string, in UpdateInput) (*models.Inspiration, error) {
	patch := models.InspirationPatch{
		Title:       in.Title,
		Description: in.Description,
	}
	if in.Tags != nil {
		normalized := tags.Normalize(*in.Tags)
		patch.Tags = &normalized
	}

	switch {
	case in.RemoveImage:
		empty := ""
		patch.ImageURL = &empty
	case len(in.Image) > 0:
		url, err := s.uploader.Upload(ctx, in.Image, in.ImageType)
		if err != nil {
			s.log.Warn("image upload failed, updating inspiration without changing image", sl.Err(err))
		} else {
			patch.ImageURL = &url
		}
	}

	return s.repo.UpdateInspiration(ctx, userUID, id, patch)
}

// Remove deletes the user's record.
func (s *Service) Remove(ctx context.Context, userUID, id string) error {
	return s.repo.DeleteInspiration(ctx, userUID, id)
}
