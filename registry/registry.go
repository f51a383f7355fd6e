package registry

import (
	"fmt"
	"sync"
)

// Factory constructs a component instance. Factories take no arguments;
// anything they depend on is resolved from the registry inside the closure.
type Factory func() (any, error)

// Kind distinguishes the two registration namespaces.
type Kind string

const (
	KindSingleton Kind = "singleton"
	KindFactory   Kind = "factory"
)

// RegistrationInfo describes a registered component for introspection.
type RegistrationInfo struct {
	Key   string
	Kind  Kind
	Built bool // true once a singleton has a cached instance
}

// singletonEntry holds one singleton registration. Its mutex serializes the
// first construction so concurrent resolvers observe exactly one successful
// factory invocation per entry.
type singletonEntry struct {
	factory  Factory
	mu       sync.Mutex
	instance any
	built    bool
}

// Registry maps string keys to lazily-built shared singletons and to
// stateless factories producing a fresh instance per lookup. The two
// namespaces are independent: the same key may be registered in both.
//
// A Registry is safe for concurrent use. Construct one per application (or
// per test) with New; there is no package-level instance.
type Registry struct {
	mu         sync.RWMutex
	singletons map[string]*singletonEntry
	factories  map[string]Factory
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		singletons: make(map[string]*singletonEntry),
		factories:  make(map[string]Factory),
	}
}

// RegisterSingleton stores factory under key in the singleton namespace.
// The factory is not invoked until the first GetSingleton call.
//
// Re-registering an existing key replaces the factory and drops any cached
// instance. Components that already resolved the old instance keep holding
// it; this is intended for tests overriding production bindings before
// resolution starts.
func (r *Registry) RegisterSingleton(key string, factory Factory) error {
	if err := checkRegistration(key, factory); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.singletons[key] = &singletonEntry{factory: factory}
	return nil
}

// RegisterFactory stores factory under key in the factory namespace.
// Re-registering an existing key replaces the prior factory.
func (r *Registry) RegisterFactory(key string, factory Factory) error {
	if err := checkRegistration(key, factory); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[key] = factory
	return nil
}

// GetSingleton resolves key from the singleton namespace, invoking the stored
// factory on first resolution and caching the result. Every later call
// returns the identical cached instance.
//
// A factory error propagates to the caller as-is and leaves the cache slot
// empty, so the next call retries construction from scratch.
//
// Construction of each entry is serialized, so a factory that resolves its
// own key (directly or through a registration cycle) blocks forever.
// Factories may only resolve other keys.
func (r *Registry) GetSingleton(key string) (any, error) {
	r.mu.RLock()
	entry, ok := r.singletons[key]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotRegisteredError{Key: key, Kind: KindSingleton}
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.built {
		return entry.instance, nil
	}

	instance, err := entry.factory()
	if err != nil {
		return nil, err
	}

	entry.instance = instance
	entry.built = true
	return instance, nil
}

// GetFactory resolves key from the factory namespace, invoking the stored
// factory and returning a fresh result on every call. Nothing is cached.
func (r *Registry) GetFactory(key string) (any, error) {
	r.mu.RLock()
	factory, ok := r.factories[key]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotRegisteredError{Key: key, Kind: KindFactory}
	}

	return factory()
}

// Reset clears both namespaces, including cached singleton instances.
// It is the only way to remove entries and is safe to call repeatedly.
// Intended for test isolation between cases.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.singletons = make(map[string]*singletonEntry)
	r.factories = make(map[string]Factory)
}

// Registrations returns info about all registered keys for introspection.
func (r *Registry) Registrations() []RegistrationInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]RegistrationInfo, 0, len(r.singletons)+len(r.factories))

	for key, entry := range r.singletons {
		entry.mu.Lock()
		built := entry.built
		entry.mu.Unlock()
		result = append(result, RegistrationInfo{Key: key, Kind: KindSingleton, Built: built})
	}

	for key := range r.factories {
		result = append(result, RegistrationInfo{Key: key, Kind: KindFactory})
	}

	return result
}

func checkRegistration(key string, factory Factory) error {
	if key == "" {
		return fmt.Errorf("registry: key must be non-empty")
	}
	if factory == nil {
		return fmt.Errorf("registry: factory for %q must be non-nil", key)
	}
	return nil
}
