// Package registry provides the dependency registry at the core of strata's
// layered wiring: a key-value mapping from string identifiers to either
// lazily-built shared singletons or per-call factories.
//
// Each resource registers its layers in order — repository singleton first,
// then a service singleton whose factory resolves the repository, then a
// handler singleton whose factory resolves the service. The registry performs
// no dependency-graph analysis; a factory that resolves a not-yet-registered
// key fails immediately with a NotRegisteredError.
//
// # Registration
//
//	reg := registry.New()
//	reg.RegisterSingleton("user.repository", func() (any, error) {
//	    return user.NewMemoryRepository(), nil
//	})
//
// # Resolution
//
//	repo := registry.MustSingleton[user.Repository](reg, "user.repository")
package registry
