package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stratakit/strata/auth"
	"github.com/stratakit/strata/errors"
	"github.com/stratakit/strata/logger"
)

// Service implements the user use cases on top of a Repository.
type Service struct {
	repo   Repository
	hasher auth.Hasher
	log    *logger.Logger

	now func() time.Time
}

// NewService creates a user service.
func NewService(repo Repository, hasher auth.Hasher, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("user")
	}
	return &Service{
		repo:   repo,
		hasher: hasher,
		log:    log.WithComponent("user_service"),
		now:    time.Now,
	}
}

// Create hashes the password and stores a new user.
func (s *Service) Create(ctx context.Context, req CreateRequest) (User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return User{}, errors.Internal(err)
	}

	now := s.now().UTC()
	u := User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}

	s.log.Info("User created", logger.Fields("user_id", u.ID.String()))
	return u, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Update applies the non-empty fields of req to the stored user.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	u.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Delete removes a user by id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("User deleted", logger.Fields("user_id", id.String()))
	return nil
}

// Authenticate verifies the email/password pair and returns the user.
// Both unknown email and wrong password map to the same unauthorized error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, errors.Unauthorized("Invalid email or password.")
	}
	if err := s.hasher.Verify(password, u.PasswordHash); err != nil {
		return User{}, errors.Unauthorized("Invalid email or password.")
	}
	return u, nil
}
