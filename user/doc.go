// Package user is the example resource shipped with strata. It demonstrates
// the layered convention end to end: entity, repository interface with an
// in-memory implementation, service, gin handler, and the Register function
// wiring the three layers through the dependency registry. The scaffolding
// generator emits new resources in this exact shape.
package user
