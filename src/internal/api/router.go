package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lojadigital/produtos/src/internal/products"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestID)
	r.Use(Recovery)
	r.Use(Logger)
	if deps.CORS {
		r.Use(CORS)
	}

	// Must be set before Route so the mounted subrouter inherits them
	fallback := deps.Frontend
	if fallback == nil {
		fallback = http.NotFoundHandler()
	}
	r.NotFound(fallback.ServeHTTP)
	r.MethodNotAllowed(fallback.ServeHTTP)

	h := NewHandler(deps.Store, deps.Policy)

	r.Get("/health", h.CheckHealth)
	r.Head("/health", h.CheckHealth)

	r.Route("/api/produtos", func(r chi.Router) {
		r.Use(middleware.StripSlashes)
		// HEAD outside the API reaches the frontend through the fallback
		r.Use(middleware.GetHead)
		if deps.Policy.Mode == products.ModeStrict {
			r.Use(JSONContentType)
		}

		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/{id}", h.GetProduct)
		r.Put("/{id}", h.UpdateProduct)
		r.Delete("/{id}", h.DeleteProduct)
	})

	registerPprof(r)

	return r
}
