// Package auth contains the business logic for registration, login and
// session issuance.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/annakorobkova/inspira/internal/lib/password"
	"github.com/annakorobkova/inspira/internal/lib/session"
	"github.com/annakorobkova/inspira/internal/models"
	"github.com/annakorobkova/inspira/internal/storage"
)

// ErrInvalidCredentials is returned for both an unknown email and a
// wrong password. The two cases are deliberately indistinguishable so
// login failures do not reveal whether an account exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository is the storage contract the service needs.
type UserRepository interface {
	// CreateUser stores a new user; duplicate email yields storage.ErrEmailTaken.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// GetUserByEmail returns a user or storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUser returns a user by uid or storage.ErrNotFound.
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

// Service implements registration, login and current-user lookup.
type Service struct {
	users        UserRepository
	sessionMaker session.Maker
}

// New creates the auth service.
func New(users UserRepository, sessionMaker session.Maker) *Service {
	return &Service{
		users:        users,
		sessionMaker: sessionMaker,
	}
}

// Register hashes the password, stores the user and issues a session
// token bound to the new uid. The plaintext password is never stored.
func (s *Service) Register(ctx context.Context, name, email, rawPassword string) (*models.User, string, error) {
	const op = "auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	})
	if err != nil {
		return nil, "", err
	}
	token, err := s.sessionMaker.GenerateToken(user.UID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// Login verifies the credentials and issues a fresh session token.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.sessionMaker.GenerateToken(user.UID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// Me returns the user identified by a verified session token.
func (s *Service) Me(ctx context.Context, uid string) (*models.User, error) {
	return s.users.GetUser(ctx, uid)
}
