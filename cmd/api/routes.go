package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.MethodNotAllowed(app.Http.MethodNotAllowed)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)
	router.Get("/healthcheck", app.healthcheck)
	router.Route("/movies", func(r chi.Router) {
		r.With(app.gate.Simple).Get("/", app.listMovies)
		r.Post("/", app.createMovie)
		r.Get("/{id}", app.getMovie)
		r.Patch("/{id}", app.updateMovie)
		r.With(app.gate.Simple).Delete("/{id}", app.deleteMovie)
		r.Options("/{id}", app.gate.PreflightHandler)
	})
	return router
}
