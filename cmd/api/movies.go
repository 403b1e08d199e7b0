package main

import (
	"errors"
	"movies/proj/internal/domain/filters"
	"movies/proj/internal/services/movies"
	"net/http"
)

const movieNotFoundMsg = "Movie not found"

func (app *Application) listMovies(w http.ResponseWriter, r *http.Request) {
	var f filters.Filters
	if err := app.decoder.Decode(&f, r.URL.Query()); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	list, err := app.movies.List(f)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, list)
}

func (app *Application) getMovie(w http.ResponseWriter, r *http.Request) {
	id := app.extractIDParam(r)
	movie, err := app.movies.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, movieNotFoundMsg)
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, movie)
}

func (app *Application) createMovie(w http.ResponseWriter, r *http.Request) {
	input, err := app.readJSON(w, r)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	movie, errs := app.validator.ValidateFull(input)
	if errs != nil {
		app.Http.ValidationFailed(w, r, errs)
		return
	}
	created, err := app.movies.Create(*movie)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, created)
}

// updateMovie validates the payload before looking the movie up, so an invalid
// body is reported as 400 even for an unknown id.
func (app *Application) updateMovie(w http.ResponseWriter, r *http.Request) {
	input, err := app.readJSON(w, r)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	patch, errs := app.validator.ValidatePartial(input)
	if errs != nil {
		app.Http.ValidationFailed(w, r, errs)
		return
	}
	id := app.extractIDParam(r)
	updated, err := app.movies.Update(id, *patch)
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, movieNotFoundMsg)
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, updated)
}

func (app *Application) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id := app.extractIDParam(r)
	if err := app.movies.Delete(id); err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, movieNotFoundMsg)
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"message": "Movie deleted"})
}
