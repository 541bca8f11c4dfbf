// Package repository implements the PostgreSQL storage for users and
// inspirations on top of a pgx connection pool.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage wraps the PostgreSQL connection pool and implements the user
// and inspiration repositories.
type Storage struct {
	DB *pgxpool.Pool
}

// New connects to PostgreSQL and verifies the connection.
func New(ctx context.Context, storageConnectionString string) (*Storage, error) {
	const op = "repository.New"

	pool, err := pgxpool.New(ctx, storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: pool}, nil
}

// Close releases the connection pool.
func (s *Storage) Close() {
	s.DB.Close()
}
