package registry

import "fmt"

// Singleton resolves a singleton with type safety, returning an error on
// missing registration, factory failure, or type mismatch.
//
// Example:
//
//	repo, err := registry.Singleton[user.Repository](reg, registry.RepositoryKey("user"))
func Singleton[T any](r *Registry, key string) (T, error) {
	var zero T
	instance, err := r.GetSingleton(key)
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("registry: singleton %q is %T, expected %T", key, instance, zero)
	}
	return result, nil
}

// MustSingleton resolves a singleton with type safety, panicking on error.
// Use this in wiring code where a missing dependency is a programmer error.
func MustSingleton[T any](r *Registry, key string) T {
	result, err := Singleton[T](r, key)
	if err != nil {
		panic(fmt.Sprintf("registry: failed to resolve singleton %s: %v", key, err))
	}
	return result
}

// Instance resolves a fresh instance from the factory namespace with type
// safety, returning an error on missing registration, factory failure, or
// type mismatch.
func Instance[T any](r *Registry, key string) (T, error) {
	var zero T
	instance, err := r.GetFactory(key)
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("registry: factory %q produced %T, expected %T", key, instance, zero)
	}
	return result, nil
}

// MustInstance resolves a fresh instance with type safety, panicking on error.
func MustInstance[T any](r *Registry, key string) T {
	result, err := Instance[T](r, key)
	if err != nil {
		panic(fmt.Sprintf("registry: failed to resolve factory %s: %v", key, err))
	}
	return result
}
