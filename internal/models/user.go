package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`       // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // User email
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash of the password
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Identity is the authenticated caller as supplied by the identity provider.
type Identity struct {
	UserID   uuid.UUID
	Username string
}
