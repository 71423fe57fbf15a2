// Package middleware provides HTTP middleware for the itinerary API server.
package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight result.
const corsMaxAge = 300

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry must be a full origin (scheme + host, no trailing slash) or the
// single wildcard "*". An empty list disables cross-origin access entirely.
//
// X-Request-Id is exposed so browser clients can quote it when reporting errors.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         corsMaxAge,
	}
	// Credentials cannot be combined with a wildcard origin.
	opts.AllowCredentials = !slices.Contains(allowedOrigins, "*")

	c := cors.New(opts)
	return c.Handler
}
