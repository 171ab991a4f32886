/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /api/login               Token issuance (public)
  /api/health              Liveness (public)
  /api/*                   Everything else requires a bearer token;
                           admin-only routes additionally RequireAdmin.

SEE ALSO:
  - handlers.go: Handler implementations
  - auth.go: Token middleware
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/login", h.Login)
		r.Get("/health", h.Health)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(h.RequireAuth)

			r.Route("/branches", func(r chi.Router) {
				r.Get("/", h.ListBranches)
				r.With(h.RequireAdmin).Post("/", h.CreateBranch)
				r.With(h.RequireAdmin).Delete("/{id}", h.DeleteBranch)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.ListEmployees)
				r.Get("/balances", h.ListBalances)
				r.With(h.RequireAdmin).Post("/", h.CreateEmployee)
				r.Get("/{id}", h.GetEmployee)
				r.Get("/{id}/balance", h.GetBalance)
				r.With(h.RequireAdmin).Put("/{id}", h.UpdateEmployee)
				r.With(h.RequireAdmin).Delete("/{id}", h.DeleteEmployee)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.ListLeaves)
				r.Post("/", h.CreateLeave)
				r.Delete("/{id}", h.DeleteLeave)
			})

			r.Route("/public-holidays", func(r chi.Router) {
				r.Get("/", h.ListHolidays)
				r.With(h.RequireAdmin).Post("/", h.CreateHoliday)
				r.With(h.RequireAdmin).Post("/defaults", h.AddDefaultHolidays)
				r.With(h.RequireAdmin).Delete("/{id}", h.DeleteHoliday)
			})

			r.Get("/calendar", h.GetCalendar)
		})
	})

	return r
}
