package user

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/stratakit/strata/errors"
)

// MemoryRepository is a mutex-guarded in-memory Repository. It backs the
// example API and tests; swap it for a real store by registering a different
// implementation under the same registry key.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]User
	byEmail map[string]uuid.UUID
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[uuid.UUID]User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores a new user, rejecting duplicate emails.
func (r *MemoryRepository) Create(ctx context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := normalizeEmail(u.Email)
	if _, taken := r.byEmail[email]; taken {
		return errors.AlreadyExists("user", "email")
	}
	r.users[u.ID] = u
	r.byEmail[email] = u.ID
	return nil
}

// GetByID returns the stored user or a not-found error.
func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return User{}, errors.NotFound("user", id.String())
	}
	return u, nil
}

// GetByEmail returns the user owning the email or a not-found error.
func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return User{}, errors.NotFound("user", "")
	}
	return r.users[id], nil
}

// List returns all users ordered by creation time, then id for stability.
func (r *MemoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// Update replaces the stored user, keeping the email index consistent.
func (r *MemoryRepository) Update(ctx context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[u.ID]
	if !ok {
		return errors.NotFound("user", u.ID.String())
	}

	oldEmail := normalizeEmail(current.Email)
	newEmail := normalizeEmail(u.Email)
	if oldEmail != newEmail {
		if owner, taken := r.byEmail[newEmail]; taken && owner != u.ID {
			return errors.AlreadyExists("user", "email")
		}
		delete(r.byEmail, oldEmail)
		r.byEmail[newEmail] = u.ID
	}
	r.users[u.ID] = u
	return nil
}

// Delete removes the user or returns a not-found error.
func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("user", id.String())
	}
	delete(r.byEmail, normalizeEmail(u.Email))
	delete(r.users, id)
	return nil
}
