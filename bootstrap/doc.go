// Package bootstrap assembles and runs a strata application. It builds the
// dependency registry with the core infrastructure singletons, drives
// component lifecycle (start in registration order, stop in reverse), runs
// user hooks at defined points, and handles signal-driven graceful shutdown.
package bootstrap
