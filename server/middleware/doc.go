// Package middleware provides the standard Gin middleware stack for strata
// servers: panic recovery, request IDs, CORS, request logging, and Bearer
// token authentication.
package middleware
