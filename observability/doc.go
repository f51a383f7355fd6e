// Package observability wires OpenTelemetry tracing and metrics into strata
// services: OTLP HTTP exporters, global tracer/meter providers, request
// metric instruments, and a Gin middleware that opens a server span and
// records request metrics per request.
package observability
