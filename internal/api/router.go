package api

import (
	"net/http"
	"time"
	"trainer-market-service/internal/api/handlers"
	"trainer-market-service/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries the cross-cutting HTTP settings.
type RouterConfig struct {
	AllowedOrigins  []string
	RateLimit       int // requests per window per IP; 0 disables limiting
	RateLimitWindow time.Duration
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(explorer *services.Explorer, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	cityHandler := &handlers.CityHandler{Explorer: explorer}
	viewHandler := &handlers.ViewHandler{Explorer: explorer}

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(httprate.Limit(cfg.RateLimit, cfg.RateLimitWindow, httprate.WithKeyFuncs(httprate.KeyByIP)))
		}

		r.Get("/cities", cityHandler.List)
		r.Get("/cities/export.xlsx", cityHandler.Export)
		r.Get("/states", cityHandler.States)
		r.Get("/summary", cityHandler.Summary)
		r.Get("/recommendations", cityHandler.Recommendations)
		r.Post("/views", viewHandler.View)
	})

	return r
}
