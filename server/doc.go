// Package server provides the HTTP surface for strata services: a Gin
// engine served over h2c with a standard middleware stack, response helpers
// writing the uniform JSON envelopes, and default health/version endpoints.
// The Server implements component.Component so bootstrap drives its
// lifecycle.
package server
