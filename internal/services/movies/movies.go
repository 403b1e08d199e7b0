package movies

import (
	"errors"
	"log/slog"
	"movies/proj/internal/domain/filters"
	"movies/proj/internal/domain/models"
	"movies/proj/internal/storage"
)

type MoviesStorage interface {
	Get(id string) (*models.Movie, error)
	Insert(movie models.Movie) (*models.Movie, error)
	List(f filters.Filters) ([]models.Movie, error)
	Update(id string, patch models.MoviePatch) (*models.Movie, error)
	Delete(id string) error
}

type MovieService struct {
	log     *slog.Logger
	storage MoviesStorage
}

func New(log *slog.Logger, storage MoviesStorage) *MovieService {
	return &MovieService{
		log:     log,
		storage: storage,
	}
}

func (s *MovieService) Get(id string) (*models.Movie, error) {
	const op = "movies.MovieService.Get"
	log := s.log.With("op", op, "id", id)
	movie, err := s.storage.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Create(movie models.Movie) (*models.Movie, error) {
	const op = "movies.MovieService.Create"
	log := s.log.With("op", op, "title", movie.Title, "year", movie.Year, "genre", movie.Genre)
	created, err := s.storage.Insert(movie)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	log.Info("movie created", "id", created.ID)
	return created, nil
}

func (s *MovieService) List(f filters.Filters) ([]models.Movie, error) {
	const op = "movies.MovieService.List"
	log := s.log.With("op", op, "genre", f.Genre)
	movies, err := s.storage.List(f)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return movies, nil
}

func (s *MovieService) Update(id string, patch models.MoviePatch) (*models.Movie, error) {
	const op = "movies.MovieService.Update"
	log := s.log.With("op", op, "id", id)
	updated, err := s.storage.Update(id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error("Error updating movie: " + err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *MovieService) Delete(id string) error {
	const op = "movies.MovieService.Delete"
	log := s.log.With("op", op, "id", id)
	if err := s.storage.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return ErrMovieNotFound
		}
		log.Error("Error deleting movie: " + err.Error())
		return err
	}
	log.Info("movie deleted")
	return nil
}
