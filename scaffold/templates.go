package scaffold

// resourceTemplates emit a resource package in the same shape as the bundled
// user package: entity, repository interface, in-memory implementation,
// DTOs, service, gin handler, routes, registry wiring, mock, and a service
// test.
var resourceTemplates = []FileTemplate{
	{
		Path: "{{.Resource.Name}}/{{.Resource.Name}}.go",
		Content: `package {{.Resource.Name}}

import (
	"time"

	"github.com/google/uuid"
)

// {{.Resource.Pascal}} is the domain entity.
type {{.Resource.Pascal}} struct {
	ID        uuid.UUID {{tick}}json:"id"{{tick}}
	Name      string    {{tick}}json:"name"{{tick}}
	CreatedAt time.Time {{tick}}json:"created_at"{{tick}}
	UpdatedAt time.Time {{tick}}json:"updated_at"{{tick}}
}
`,
	},
	{
		Path: "{{.Resource.Name}}/repository.go",
		Content: `package {{.Resource.Name}}

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for the {{.Resource.Name}} resource.
// Implementations return AppError values from the errors package.
type Repository interface {
	Create(ctx context.Context, e {{.Resource.Pascal}}) error
	GetByID(ctx context.Context, id uuid.UUID) ({{.Resource.Pascal}}, error)
	List(ctx context.Context) ([]{{.Resource.Pascal}}, error)
	Update(ctx context.Context, e {{.Resource.Pascal}}) error
	Delete(ctx context.Context, id uuid.UUID) error
}
`,
	},
	{
		Path: "{{.Resource.Name}}/memory.go",
		Content: `package {{.Resource.Name}}

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"{{.Module}}/errors"
)

// MemoryRepository is a mutex-guarded in-memory Repository.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]{{.Resource.Pascal}}
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[uuid.UUID]{{.Resource.Pascal}})}
}

func (r *MemoryRepository) Create(ctx context.Context, e {{.Resource.Pascal}}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = e
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) ({{.Resource.Pascal}}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return {{.Resource.Pascal}}{}, errors.NotFound("{{.Resource.Name}}", id.String())
	}
	return e, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]{{.Resource.Pascal}}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]{{.Resource.Pascal}}, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, e {{.Resource.Pascal}}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.ID]; !ok {
		return errors.NotFound("{{.Resource.Name}}", e.ID.String())
	}
	r.entries[e.ID] = e
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return errors.NotFound("{{.Resource.Name}}", id.String())
	}
	delete(r.entries, id)
	return nil
}
`,
	},
	{
		Path: "{{.Resource.Name}}/dto.go",
		Content: `package {{.Resource.Name}}

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest is the payload for POST /{{.Resource.Plural}}.
type CreateRequest struct {
	Name string {{tick}}json:"name" validate:"required,min=2,max=100"{{tick}}
}

// UpdateRequest is the payload for PUT /{{.Resource.Plural}}/:id. Empty
// fields keep their current values.
type UpdateRequest struct {
	Name string {{tick}}json:"name" validate:"omitempty,min=2,max=100"{{tick}}
}

// Response is the public representation of a {{.Resource.Name}}.
type Response struct {
	ID        uuid.UUID {{tick}}json:"id"{{tick}}
	Name      string    {{tick}}json:"name"{{tick}}
	CreatedAt time.Time {{tick}}json:"created_at"{{tick}}
	UpdatedAt time.Time {{tick}}json:"updated_at"{{tick}}
}

// ListResponse wraps the collection endpoint payload.
type ListResponse struct {
	Items []Response {{tick}}json:"{{.Resource.Plural}}"{{tick}}
	Count int        {{tick}}json:"count"{{tick}}
}

func toResponse(e {{.Resource.Pascal}}) Response {
	return Response{ID: e.ID, Name: e.Name, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
}

func toListResponse(items []{{.Resource.Pascal}}) ListResponse {
	out := make([]Response, 0, len(items))
	for _, e := range items {
		out = append(out, toResponse(e))
	}
	return ListResponse{Items: out, Count: len(out)}
}
`,
	},
	{
		Path: "{{.Resource.Name}}/service.go",
		Content: `package {{.Resource.Name}}

import (
	"context"
	"time"

	"github.com/google/uuid"

	"{{.Module}}/logger"
)

// Service implements the {{.Resource.Name}} use cases on top of a Repository.
type Service struct {
	repo Repository
	log  *logger.Logger

	now func() time.Time
}

// NewService creates a {{.Resource.Name}} service.
func NewService(repo Repository, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("{{.Resource.Name}}")
	}
	return &Service{
		repo: repo,
		log:  log.WithComponent("{{.Resource.Name}}_service"),
		now:  time.Now,
	}
}

// Create stores a new {{.Resource.Name}}.
func (s *Service) Create(ctx context.Context, req CreateRequest) ({{.Resource.Pascal}}, error) {
	now := s.now().UTC()
	e := {{.Resource.Pascal}}{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return {{.Resource.Pascal}}{}, err
	}
	s.log.Info("{{.Resource.Pascal}} created", logger.Fields("{{.Resource.Name}}_id", e.ID.String()))
	return e, nil
}

// Get returns a {{.Resource.Name}} by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) ({{.Resource.Pascal}}, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all {{.Resource.Plural}}.
func (s *Service) List(ctx context.Context) ([]{{.Resource.Pascal}}, error) {
	return s.repo.List(ctx)
}

// Update applies the non-empty fields of req to the stored {{.Resource.Name}}.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) ({{.Resource.Pascal}}, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return {{.Resource.Pascal}}{}, err
	}
	if req.Name != "" {
		e.Name = req.Name
	}
	e.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, e); err != nil {
		return {{.Resource.Pascal}}{}, err
	}
	return e, nil
}

// Delete removes a {{.Resource.Name}} by id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
`,
	},
	{
		Path: "{{.Resource.Name}}/handler.go",
		Content: `package {{.Resource.Name}}

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"{{.Module}}/errors"
	"{{.Module}}/server"
	"{{.Module}}/validation"
)

// Handler is the gin controller for the {{.Resource.Name}} resource.
type Handler struct {
	service *Service
}

// NewHandler creates a {{.Resource.Name}} handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Validation("Invalid {{.Resource.Name}} id.").WithDetail("id", c.Param("id"))
	}
	return id, nil
}

// Create handles POST /{{.Resource.Plural}}.
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

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		server.Error(c, err)
		return
	}
	server.Created(c, toResponse(e))
}

// Get handles GET /{{.Resource.Plural}}/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		server.Error(c, err)
		return
	}

	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		server.Error(c, err)
		return
	}
	server.OK(c, toResponse(e))
}

// List handles GET /{{.Resource.Plural}}.
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		server.Error(c, err)
		return
	}
	server.OK(c, toListResponse(items))
}

// Update handles PUT /{{.Resource.Plural}}/:id.
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

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		server.Error(c, err)
		return
	}
	server.OK(c, toResponse(e))
}

// Delete handles DELETE /{{.Resource.Plural}}/:id.
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
`,
	},
	{
		Path: "{{.Resource.Name}}/routes.go",
		Content: `package {{.Resource.Name}}

import "github.com/gin-gonic/gin"

// Routes mounts the {{.Resource.Name}} endpoints on the given router group.
func Routes(rg *gin.RouterGroup, h *Handler) {
	{{.Resource.Plural}} := rg.Group("/{{.Resource.Plural}}")
	{{.Resource.Plural}}.POST("", h.Create)
	{{.Resource.Plural}}.GET("", h.List)
	{{.Resource.Plural}}.GET("/:id", h.Get)
	{{.Resource.Plural}}.PUT("/:id", h.Update)
	{{.Resource.Plural}}.DELETE("/:id", h.Delete)
}
`,
	},
	{
		Path: "{{.Resource.Name}}/register.go",
		Content: `package {{.Resource.Name}}

import (
	"{{.Module}}/logger"
	"{{.Module}}/registry"
)

// Resource is the key namespace for the {{.Resource.Name}} resource.
const Resource = "{{.Resource.Name}}"

// Register wires the {{.Resource.Name}} layers into the dependency registry:
// repository, then service resolving the repository, then handler resolving
// the service.
func Register(reg *registry.Registry, log *logger.Logger) error {
	if err := reg.RegisterSingleton(registry.RepositoryKey(Resource), func() (any, error) {
		return NewMemoryRepository(), nil
	}); err != nil {
		return err
	}

	if err := reg.RegisterSingleton(registry.ServiceKey(Resource), func() (any, error) {
		repo, err := registry.Singleton[Repository](reg, registry.RepositoryKey(Resource))
		if err != nil {
			return nil, err
		}
		return NewService(repo, log), nil
	}); err != nil {
		return err
	}

	return reg.RegisterSingleton(registry.HandlerKey(Resource), func() (any, error) {
		service, err := registry.Singleton[*Service](reg, registry.ServiceKey(Resource))
		if err != nil {
			return nil, err
		}
		return NewHandler(service), nil
	})
}

// HandlerFrom resolves the wired handler, building the full chain on first
// use.
func HandlerFrom(reg *registry.Registry) (*Handler, error) {
	return registry.Singleton[*Handler](reg, registry.HandlerKey(Resource))
}
`,
	},
	{
		Path: "{{.Resource.Name}}/mock.go",
		Content: `package {{.Resource.Name}}

import (
	"context"

	"github.com/google/uuid"

	"{{.Module}}/errors"
)

// MockRepository is a hand-written Repository test double. Each method
// counts its calls and delegates to the corresponding Fn when set.
type MockRepository struct {
	CreateFn  func(ctx context.Context, e {{.Resource.Pascal}}) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) ({{.Resource.Pascal}}, error)
	ListFn    func(ctx context.Context) ([]{{.Resource.Pascal}}, error)
	UpdateFn  func(ctx context.Context, e {{.Resource.Pascal}}) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	CreateCalls  int
	GetByIDCalls int
	ListCalls    int
	UpdateCalls  int
	DeleteCalls  int
}

func (m *MockRepository) Create(ctx context.Context, e {{.Resource.Pascal}}) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) ({{.Resource.Pascal}}, error) {
	m.GetByIDCalls++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return {{.Resource.Pascal}}{}, errors.NotFound("{{.Resource.Name}}", id.String())
}

func (m *MockRepository) List(ctx context.Context) ([]{{.Resource.Pascal}}, error) {
	m.ListCalls++
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockRepository) Update(ctx context.Context, e {{.Resource.Pascal}}) error {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, e)
	}
	return errors.NotFound("{{.Resource.Name}}", e.ID.String())
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errors.NotFound("{{.Resource.Name}}", id.String())
}
`,
	},
	{
		Path: "{{.Resource.Name}}/service_test.go",
		Content: `package {{.Resource.Name}}

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"{{.Module}}/errors"
)

func TestServiceCreate(t *testing.T) {
	repo := &MockRepository{}
	var stored {{.Resource.Pascal}}
	repo.CreateFn = func(ctx context.Context, e {{.Resource.Pascal}}) error {
		stored = e
		return nil
	}
	svc := NewService(repo, nil)

	e, err := svc.Create(context.Background(), CreateRequest{Name: "example"})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.CreateCalls)
	assert.Equal(t, "example", stored.Name)
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestServiceGetMissing(t *testing.T) {
	svc := NewService(&MockRepository{}, nil)

	_, err := svc.Get(context.Background(), uuid.New())

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestServiceUpdateAppliesFields(t *testing.T) {
	existing := {{.Resource.Pascal}}{ID: uuid.New(), Name: "before"}
	repo := &MockRepository{}
	repo.GetByIDFn = func(ctx context.Context, id uuid.UUID) ({{.Resource.Pascal}}, error) {
		return existing, nil
	}
	var updated {{.Resource.Pascal}}
	repo.UpdateFn = func(ctx context.Context, e {{.Resource.Pascal}}) error {
		updated = e
		return nil
	}
	svc := NewService(repo, nil)

	_, err := svc.Update(context.Background(), existing.ID, UpdateRequest{Name: "after"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
}
`,
	},
}
