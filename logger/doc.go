// Package logger provides structured logging for strata services, backed by
// zerolog. It exposes a Logger wrapper with component tagging and field
// helpers, plus package-level functions that delegate to a global instance
// for code that has no logger handle.
package logger
