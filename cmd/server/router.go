package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tbouvier/leitner-api/internal/api"
	"github.com/tbouvier/leitner-api/internal/api/middleware"
)

// setupRouter builds the HTTP router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace)

	authHandler := api.NewAuthHandler(app.tokenService, app.logger)
	cardHandler := api.NewCardHandler(app.cardService, app.logger)
	quizHandler := api.NewQuizHandler(app.quizService, app.cardService, app.logger)
	authMiddleware := middleware.NewAuthMiddleware(app.tokenService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints.
		r.Post("/auth/login", authHandler.Login)

		// Protected endpoints.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/cards", cardHandler.CreateCard)
			r.Get("/cards", cardHandler.GetCards)

			r.Get("/quiz", quizHandler.GetQuizCards)
			r.Post("/quiz/{cardId}/answer", quizHandler.AnswerCard)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
