package memory

import (
	"fmt"
	"movies/proj/internal/domain/filters"
	"movies/proj/internal/domain/models"
	"movies/proj/internal/storage"
	"sync"

	"github.com/google/uuid"
)

// MemoryDB keeps movies in insertion order. All mutations are serialized by mu.
type MemoryDB struct {
	mu     sync.RWMutex
	movies []models.Movie
	// every id ever handed out, including deleted ones
	issued map[string]struct{}
	newID  func() (string, error)
}

func New(seed []models.Movie) (*MemoryDB, error) {
	db := &MemoryDB{
		movies: make([]models.Movie, 0, len(seed)),
		issued: make(map[string]struct{}, len(seed)),
		newID:  newUUID,
	}
	for _, movie := range seed {
		if movie.ID == "" {
			return nil, fmt.Errorf("seed movie %q has no id", movie.Title)
		}
		if _, ok := db.issued[movie.ID]; ok {
			return nil, fmt.Errorf("seed movie id %s: %w", movie.ID, storage.ErrConflict)
		}
		db.issued[movie.ID] = struct{}{}
		db.movies = append(db.movies, movie.Clone())
	}
	return db, nil
}

func newUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (db *MemoryDB) indexOf(id string) int {
	for i := range db.movies {
		if db.movies[i].ID == id {
			return i
		}
	}
	return -1
}

func (db *MemoryDB) List(f filters.Filters) ([]models.Movie, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	movies := make([]models.Movie, 0, len(db.movies))
	for i := range db.movies {
		if f.Match(&db.movies[i]) {
			movies = append(movies, db.movies[i].Clone())
		}
	}
	return movies, nil
}

func (db *MemoryDB) Get(id string) (*models.Movie, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	i := db.indexOf(id)
	if i == -1 {
		return nil, storage.ErrNotFound
	}
	movie := db.movies[i].Clone()
	return &movie, nil
}

// Insert stores movie under a freshly generated id, ignoring movie.ID.
func (db *MemoryDB) Insert(movie models.Movie) (*models.Movie, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	var id string
	for {
		var err error
		id, err = db.newID()
		if err != nil {
			return nil, fmt.Errorf("generate movie id: %w", err)
		}
		if _, taken := db.issued[id]; !taken {
			break
		}
	}
	db.issued[id] = struct{}{}
	movie = movie.Clone()
	movie.ID = id
	db.movies = append(db.movies, movie)
	stored := movie.Clone()
	return &stored, nil
}

// Update merges patch into the stored movie, keeping its position in the collection.
func (db *MemoryDB) Update(id string, patch models.MoviePatch) (*models.Movie, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	i := db.indexOf(id)
	if i == -1 {
		return nil, storage.ErrNotFound
	}
	updated := patch.Apply(db.movies[i].Clone())
	updated.ID = id
	db.movies[i] = updated
	result := updated.Clone()
	return &result, nil
}

func (db *MemoryDB) Delete(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	i := db.indexOf(id)
	if i == -1 {
		return storage.ErrNotFound
	}
	db.movies = append(db.movies[:i], db.movies[i+1:]...)
	return nil
}
