package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for users. Implementations return AppError
// values from the errors package so callers can translate them uniformly.
type Repository interface {
	// Create stores a new user. Fails with an already-exists error when the
	// email is taken.
	Create(ctx context.Context, u User) error

	// GetByID returns the user with the given id, or a not-found error.
	GetByID(ctx context.Context, id uuid.UUID) (User, error)

	// GetByEmail returns the user with the given email, or a not-found error.
	GetByEmail(ctx context.Context, email string) (User, error)

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]User, error)

	// Update replaces the stored user. Fails with not-found when the id is
	// unknown and already-exists when the new email belongs to another user.
	Update(ctx context.Context, u User) error

	// Delete removes the user with the given id, or returns a not-found error.
	Delete(ctx context.Context, id uuid.UUID) error
}
