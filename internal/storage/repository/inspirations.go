package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/annakorobkova/inspira/internal/models"
	"github.com/annakorobkova/inspira/internal/storage"
)

const inspirationColumns = `id, user_uid, title, description, image_url, tags, created_at, updated_at`

// CreateInspiration inserts a new record and returns it with the
// database-assigned id and timestamps.
func (s *Storage) CreateInspiration(ctx context.Context, insp models.Inspiration) (*models.Inspiration, error) {
	const op = "repository.CreateInspiration"

	query := `INSERT INTO inspirations (user_uid, title, description, image_url, tags)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + inspirationColumns
	row := s.DB.QueryRow(ctx, query,
		insp.UserUID, insp.Title, insp.Description, insp.ImageURL, insp.Tags)
	result, err := scanInspiration(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListInspirations returns all records owned by userUID that match the
// filter, newest first. Search matches title or description
// case-insensitively; every filter tag must be present on a record.
func (s *Storage) ListInspirations(ctx context.Context, userUID string, filter models.Filter) ([]*models.Inspiration, error) {
	const op = "repository.ListInspirations"

	query := `SELECT ` + inspirationColumns + `
			  FROM inspirations
			  WHERE user_uid = $1`
	args := []any{userUID}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if len(filter.Tags) > 0 {
		args = append(args, filter.Tags)
		query += fmt.Sprintf(" AND tags @> $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]*models.Inspiration, 0)
	for rows.Next() {
		insp, err := scanInspiration(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, insp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateInspiration applies a partial update to the record owned by
// userUID and refreshes updated_at. A missing id and a foreign owner
// both yield storage.ErrNotFound.
func (s *Storage) UpdateInspiration(ctx context.Context, userUID, id string, patch models.InspirationPatch) (*models.Inspiration, error) {
	const op = "repository.UpdateInspiration"

	query := `UPDATE inspirations
			  SET title = COALESCE($3, title),
			      description = COALESCE($4, description),
			      tags = COALESCE($5, tags),
			      image_url = COALESCE($6, image_url),
			      updated_at = now()
			  WHERE id = $1 AND user_uid = $2
			  RETURNING ` + inspirationColumns
	row := s.DB.QueryRow(ctx, query,
		id, userUID, patch.Title, patch.Description, patch.Tags, patch.ImageURL)
	result, err := scanInspiration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteInspiration removes the record owned by userUID. Same
// ownership-scoped semantics as UpdateInspiration.
func (s *Storage) DeleteInspiration(ctx context.Context, userUID, id string) error {
	const op = "repository.DeleteInspiration"

	query := `DELETE FROM inspirations WHERE id = $1 AND user_uid = $2`
	tag, err := s.DB.Exec(ctx, query, id, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

func scanInspiration(row pgx.Row) (*models.Inspiration, error) {
	insp := &models.Inspiration{}
	if err := row.Scan(&insp.ID, &insp.UserUID, &insp.Title, &insp.Description,
		&insp.ImageURL, &insp.Tags, &insp.CreatedAt, &insp.UpdatedAt); err != nil {
		return nil, err
	}
	if insp.Tags == nil {
		insp.Tags = []string{}
	}
	return insp, nil
}
