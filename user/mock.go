package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/stratakit/strata/errors"
)

// MockRepository is a hand-written Repository test double. Each method
// counts its calls and delegates to the corresponding Fn when set; unset
// functions fall back to not-found responses.
type MockRepository struct {
	CreateFn     func(ctx context.Context, u User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmailFn func(ctx context.Context, email string) (User, error)
	ListFn       func(ctx context.Context) ([]User, error)
	UpdateFn     func(ctx context.Context, u User) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	CreateCalls     int
	GetByIDCalls    int
	GetByEmailCalls int
	ListCalls       int
	UpdateCalls     int
	DeleteCalls     int
}

func (m *MockRepository) Create(ctx context.Context, u User) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	m.GetByIDCalls++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return User{}, errors.NotFound("user", id.String())
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	m.GetByEmailCalls++
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return User{}, errors.NotFound("user", "")
}

func (m *MockRepository) List(ctx context.Context) ([]User, error) {
	m.ListCalls++
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockRepository) Update(ctx context.Context, u User) error {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, u)
	}
	return errors.NotFound("user", u.ID.String())
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errors.NotFound("user", id.String())
}
