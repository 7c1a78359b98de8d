package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/prismaglow/chatproxy/internal/config"
)

// CORS creates a middleware that handles Cross-Origin Resource Sharing using
// the github.com/rs/cors library. Browser clients consume the completion
// stream with fetch, so preflight must admit the Authorization header or no
// streamed request ever leaves the page.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		// No CORS config means same-origin deployments; pass through.
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
