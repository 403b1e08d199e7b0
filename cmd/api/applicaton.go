package main

import (
	"log/slog"
	"movies/proj/internal/config"
	"movies/proj/internal/lib/access"
	"movies/proj/internal/lib/decoder"
	"movies/proj/internal/lib/validator"
	"movies/proj/internal/services/movies"
	"sync"
)

type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Http      *Http
	movies    *movies.MovieService
	validator *validator.Validator
	decoder   *decoder.URLDecoder
	gate      *access.Gate
	// closed by Close; stops background goroutines started by middlewares
	done      chan struct{}
	closeOnce sync.Once
}

func NewApplication(cfg *config.Config, log *slog.Logger, storage movies.MoviesStorage) *Application {
	app := &Application{
		cfg:       cfg,
		log:       log,
		validator: validator.New(),
		decoder:   decoder.New(),
		movies:    movies.New(log, storage),
		gate:      access.NewGate(cfg.CORS.AllowedOrigins),
		done:      make(chan struct{}),
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
	return app
}

// Close stops background work owned by the application. Safe to call more than once.
func (app *Application) Close() {
	app.closeOnce.Do(func() { close(app.done) })
}
