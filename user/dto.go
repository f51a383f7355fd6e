package user

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest is the payload for POST /users.
type CreateRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateRequest is the payload for PUT /users/:id. Empty fields keep their
// current values.
type UpdateRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Response is the public representation of a user.
type Response struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListResponse wraps the collection endpoint payload.
type ListResponse struct {
	Users []Response `json:"users"`
	Count int        `json:"count"`
}

func toResponse(u User) Response {
	return Response{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toListResponse(users []User) ListResponse {
	out := make([]Response, 0, len(users))
	for _, u := range users {
		out = append(out, toResponse(u))
	}
	return ListResponse{Users: out, Count: len(out)}
}
