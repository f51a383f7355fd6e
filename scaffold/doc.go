// Package scaffold generates new resource packages in the layered shape the
// bundled user package demonstrates: entity, repository with an in-memory
// implementation, DTOs, service, gin handler, routes, registry wiring, a
// mock repository, and a starter service test.
package scaffold
