package user

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stratakit/strata/errors"
	"github.com/stratakit/strata/server"
	"github.com/stratakit/strata/validation"
)

// Handler is the gin controller for the user resource.
type Handler struct {
	service *Service
}

// NewHandler creates a user handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Validation("Invalid user id.").WithDetail("id", c.Param("id"))
	}
	return id, nil
}

// Create handles POST /users.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.Error(c, errors.Validation("Request body is not valid JSON.").WithCause(err))
		return
	}
	if err := validation.Struct(req); err != nil {
		server.Error(c, err)
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		server.Error(c, err)
		return
	}
	server.Created(c, toResponse(u))
}

// Get handles GET /users/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		server.Error(c, err)
		return
	}

	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		server.Error(c, err)
		return
	}
	server.OK(c, toResponse(u))
}

// List handles GET /users.
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		server.Error(c, err)
		return
	}
	server.OK(c, toListResponse(users))
}

// Update handles PUT /users/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		server.Error(c, err)
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.Error(c, errors.Validation("Request body is not valid JSON.").WithCause(err))
		return
	}
	if err := validation.Struct(req); err != nil {
		server.Error(c, err)
		return
	}

	u, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		server.Error(c, err)
		return
	}
	server.OK(c, toResponse(u))
}

// Delete handles DELETE /users/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		server.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		server.Error(c, err)
		return
	}
	server.NoContent(c)
}
