package user

import (
	"github.com/stratakit/strata/auth"
	"github.com/stratakit/strata/logger"
	"github.com/stratakit/strata/registry"
)

// Resource is the key namespace for the user resource.
const Resource = "user"

// Register wires the user layers into the dependency registry: repository,
// then service resolving the repository, then handler resolving the service.
// Construction is lazy; a missing link surfaces as a not-registered error at
// first resolution.
func Register(reg *registry.Registry, hasher auth.Hasher, log *logger.Logger) error {
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
		return NewService(repo, hasher, log), nil
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
