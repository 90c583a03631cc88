package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-be/internal/catalog"
	"portfolio-be/internal/config"
	"portfolio-be/internal/logger"
	"portfolio-be/internal/middleware"
	"portfolio-be/internal/utils"

	"go.uber.org/zap"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, svc catalog.Service, limiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(limiter.Middleware)

	projectHandler := NewProjectHandler(svc)
	adminHandler := NewAdminHandler(cfg, svc)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", projectHandler.Health)

		r.Get("/categories", projectHandler.ListCategories)
		r.Get("/categories/options", projectHandler.ListOptions)
		r.Get("/categories/{id}", projectHandler.GetCategory)
		r.Get("/categories/{categoryID}/projects/{projectID}", projectHandler.GetProject)
		r.Get("/skills", projectHandler.ListSkills)
		r.Get("/stats", projectHandler.GetStats)

		if cfg.AdminEnabled() {
			r.Route("/admin", func(r chi.Router) {
				r.Post("/login", adminHandler.Login)
				r.With(middleware.RequireAdmin(cfg.JWTSecret)).Post("/reload", adminHandler.Reload)
			})
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	if err := utils.WriteJSON(w, status, data); err != nil {
		logger.L().Error("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	utils.WriteJSONError(w, message, status)
}
