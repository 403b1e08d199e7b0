package memory

import (
	_ "embed"
	"fmt"
	"movies/proj/internal/domain/models"
	"movies/proj/internal/lib/validator"
	"os"

	"github.com/goccy/go-json"
)

//go:embed movies.json
var defaultSeed []byte

type SeedValidator interface {
	ValidateFull(input map[string]any) (*models.Movie, validator.FieldErrors)
}

// ReadSeed returns the contents of path, or the embedded collection when path is empty.
func ReadSeed(path string) ([]byte, error) {
	if path == "" {
		return defaultSeed, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return data, nil
}

// ParseSeed decodes a JSON array of movies. Every record must carry an id and
// pass full validation.
func ParseSeed(data []byte, v SeedValidator) ([]models.Movie, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	movies := make([]models.Movie, 0, len(raw))
	for i, record := range raw {
		id, _ := record["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("seed movie #%d: missing id", i)
		}
		movie, errs := v.ValidateFull(record)
		if errs != nil {
			return nil, fmt.Errorf("seed movie %s: %w", id, errs)
		}
		movie.ID = id
		movies = append(movies, *movie)
	}
	return movies, nil
}

// Load builds a store from the seed at path (embedded seed when empty).
func Load(path string, v SeedValidator) (*MemoryDB, error) {
	data, err := ReadSeed(path)
	if err != nil {
		return nil, err
	}
	seed, err := ParseSeed(data, v)
	if err != nil {
		return nil, err
	}
	return New(seed)
}
