package main

import (
	"net/http"

	"github.com/dstrickland/wordsmith-api/internal/api"
	apiMiddleware "github.com/dstrickland/wordsmith-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	userHandler := api.NewUserHandler(app.userStore, app.bundleStore, app.logger)
	wordHandler := api.NewWordHandler(app.wordService, app.reviewService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	batchHandler := api.NewBatchHandler(app.batchService, app.logger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Profile management
			r.Get("/users/me", userHandler.GetProfile)
			r.Put("/users/me", userHandler.UpdateProfile)
			r.Delete("/users/me", userHandler.DeleteAccount)

			// Saved word management
			r.Post("/words", wordHandler.SaveWord)
			r.Get("/words", wordHandler.ListWords)
			r.Delete("/words/{id}", wordHandler.DeleteWord)
			r.Post("/words/{id}/known", wordHandler.MarkKnown)

			// Scheduling projections
			r.Get("/words/{id}/schedule", wordHandler.Schedule)
			r.Get("/words/{id}/retention", wordHandler.Retention)

			// Review submission and due reads
			r.Post("/reviews", reviewHandler.SubmitReview)
			r.Get("/reviews/next", reviewHandler.NextReview)
			r.Get("/reviews/due-count", reviewHandler.DueCount)

			// Batch assembly
			r.Get("/batch", batchHandler.GetBatch)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
