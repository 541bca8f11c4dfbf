// Package models contains the domain structures shared by the storage,
// service and HTTP layers.
package models

import "time"

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	UID          string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
