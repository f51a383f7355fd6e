package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity. PasswordHash never leaves the service layer;
// DTOs expose the rest.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
