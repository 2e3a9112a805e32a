package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
)

// DefaultCORSMaxAge is the default preflight cache duration.
const DefaultCORSMaxAge = 12 * time.Hour

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowOrigins lists allowed origins. "*" allows any origin.
	// Wildcards such as "https://*.example.com" are supported.
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithAllowOrigins sets the allowed origins. Empty input keeps the default.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *CORSConfig) {
		if len(origins) > 0 {
			cfg.AllowOrigins = origins
		}
	}
}

// WithAllowCredentials allows cookies and authorization headers.
// go-chi/cors echoes the request origin instead of "*" in that case.
func WithAllowCredentials() CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowCredentials = true
	}
}

// WithCORSMaxAge sets how long browsers may cache preflight responses.
func WithCORSMaxAge(d time.Duration) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.MaxAge = d
	}
}

// CORS returns an http middleware answering preflight requests and adding
// CORS headers, so the form can be served from a different origin than the API.
// Register it with WithHTTPMiddleware so preflights never reach the router.
func CORS(opts ...CORSOption) func(http.Handler) http.Handler {
	cfg := &CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Accept", "Content-Type", "X-Request-ID", "HX-Request", "HX-Target", "HX-Current-URL"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        DefaultCORSMaxAge,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowOrigins,
		AllowedMethods:   cfg.AllowMethods,
		AllowedHeaders:   cfg.AllowHeaders,
		ExposedHeaders:   cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           int(cfg.MaxAge / time.Second),
	})
}
