package http

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
)

// NewCORS returns middleware that answers browser preflight requests and
// sets CORS headers for the configured origins.
func NewCORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "X-Correlation-ID"},
		ExposedHeaders: []string{"Location", "X-Request-ID", "X-Correlation-ID"},
		MaxAge:         cfg.MaxAge,
	})
	return c.Handler
}
