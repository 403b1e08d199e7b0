package memory

import (
	"movies/proj/internal/domain/filters"
	"movies/proj/internal/domain/models"
	"movies/proj/internal/lib/validator"
	"movies/proj/internal/storage"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newMovie(title string, genres ...models.Genre) models.Movie {
	return models.Movie{
		Title:    title,
		Year:     2000,
		Director: "D",
		Duration: 90,
		Rate:     6,
		Poster:   "http://a.com/p.jpg",
		Genre:    genres,
	}
}

func newTestDB(t *testing.T) *MemoryDB {
	t.Helper()
	db, err := New(nil)
	require.NoError(t, err)
	return db
}

func TestInsert(t *testing.T) {
	db := newTestDB(t)
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		m := newMovie("movie " + strconv.Itoa(i))
		m.ID = "ignored"
		stored, err := db.Insert(m)
		require.NoError(t, err)
		assert.NotEqual(t, "ignored", stored.ID)
		parsed, err := uuid.Parse(stored.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		assert.False(t, seen[stored.ID])
		seen[stored.ID] = true
	}
	movies, err := db.List(filters.Filters{})
	require.NoError(t, err)
	require.Len(t, movies, 20)
	for i, m := range movies {
		assert.Equal(t, "movie "+strconv.Itoa(i), m.Title)
	}
}

func TestInsertSkipsIssuedIDs(t *testing.T) {
	db, err := New([]models.Movie{{ID: "a", Title: "seed"}})
	require.NoError(t, err)
	ids := []string{"a", "a", "b"}
	db.newID = func() (string, error) {
		id := ids[0]
		ids = ids[1:]
		return id, nil
	}
	stored, err := db.Insert(newMovie("new"))
	require.NoError(t, err)
	assert.Equal(t, "b", stored.ID)
}

func TestDeletedIDNotReused(t *testing.T) {
	db := newTestDB(t)
	stored, err := db.Insert(newMovie("first"))
	require.NoError(t, err)
	require.NoError(t, db.Delete(stored.ID))
	ids := []string{stored.ID, "fresh"}
	db.newID = func() (string, error) {
		id := ids[0]
		ids = ids[1:]
		return id, nil
	}
	again, err := db.Insert(newMovie("second"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", again.ID)
}

func TestGet(t *testing.T) {
	db := newTestDB(t)
	stored, err := db.Insert(newMovie("X", models.GenreDrama))
	require.NoError(t, err)
	t.Run("found", func(t *testing.T) {
		movie, err := db.Get(stored.ID)
		require.NoError(t, err)
		assert.Equal(t, *stored, *movie)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := db.Get("missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
	t.Run("result is a copy", func(t *testing.T) {
		movie, err := db.Get(stored.ID)
		require.NoError(t, err)
		movie.Genre[0] = models.GenreHorror
		movie.Title = "changed"
		again, err := db.Get(stored.ID)
		require.NoError(t, err)
		assert.Equal(t, "X", again.Title)
		assert.Equal(t, models.GenreDrama, again.Genre[0])
	})
}

func TestList(t *testing.T) {
	db := newTestDB(t)
	for _, m := range []models.Movie{
		newMovie("a", models.GenreComedy),
		newMovie("b", models.GenreDrama),
		newMovie("c", models.GenreDrama, models.GenreComedy),
	} {
		_, err := db.Insert(m)
		require.NoError(t, err)
	}
	t.Run("no filter", func(t *testing.T) {
		movies, err := db.List(filters.Filters{})
		require.NoError(t, err)
		assert.Len(t, movies, 3)
	})
	t.Run("case insensitive genre", func(t *testing.T) {
		movies, err := db.List(filters.Filters{Genre: "comedy"})
		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, "a", movies[0].Title)
		assert.Equal(t, "c", movies[1].Title)
	})
	t.Run("no match", func(t *testing.T) {
		movies, err := db.List(filters.Filters{Genre: "horror"})
		require.NoError(t, err)
		assert.Empty(t, movies)
		assert.NotNil(t, movies)
	})
}

func TestUpdate(t *testing.T) {
	db := newTestDB(t)
	first, err := db.Insert(newMovie("first", models.GenreDrama))
	require.NoError(t, err)
	target, err := db.Insert(newMovie("target", models.GenreDrama))
	require.NoError(t, err)
	_, err = db.Insert(newMovie("last", models.GenreDrama))
	require.NoError(t, err)

	t.Run("merges supplied fields only", func(t *testing.T) {
		updated, err := db.Update(target.ID, models.MoviePatch{Year: ptr(2001), Rate: ptr(9.5)})
		require.NoError(t, err)
		expected := *target
		expected.Year = 2001
		expected.Rate = 9.5
		assert.Equal(t, expected, *updated)

		movies, err := db.List(filters.Filters{})
		require.NoError(t, err)
		require.Len(t, movies, 3)
		assert.Equal(t, first.ID, movies[0].ID)
		assert.Equal(t, expected, movies[1])
	})
	t.Run("empty patch keeps record", func(t *testing.T) {
		before, err := db.Get(target.ID)
		require.NoError(t, err)
		after, err := db.Update(target.ID, models.MoviePatch{})
		require.NoError(t, err)
		assert.Equal(t, *before, *after)
	})
	t.Run("genre replaced", func(t *testing.T) {
		updated, err := db.Update(target.ID, models.MoviePatch{Genre: []models.Genre{models.GenreHorror}})
		require.NoError(t, err)
		assert.Equal(t, []models.Genre{models.GenreHorror}, updated.Genre)
	})
	t.Run("not found does not insert", func(t *testing.T) {
		_, err := db.Update("missing", models.MoviePatch{Title: ptr("x")})
		assert.ErrorIs(t, err, storage.ErrNotFound)
		movies, err := db.List(filters.Filters{})
		require.NoError(t, err)
		assert.Len(t, movies, 3)
	})
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	a, err := db.Insert(newMovie("a"))
	require.NoError(t, err)
	b, err := db.Insert(newMovie("b"))
	require.NoError(t, err)
	c, err := db.Insert(newMovie("c"))
	require.NoError(t, err)

	require.NoError(t, db.Delete(b.ID))
	_, err = db.Get(b.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, db.Delete(b.ID), storage.ErrNotFound)

	movies, err := db.List(filters.Filters{})
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, a.ID, movies[0].ID)
	assert.Equal(t, c.ID, movies[1].ID)
}

func TestNewRejectsDuplicateSeedIDs(t *testing.T) {
	_, err := New([]models.Movie{{ID: "a"}, {ID: "a"}})
	assert.ErrorIs(t, err, storage.ErrConflict)
	_, err = New([]models.Movie{{Title: "no id"}})
	assert.Error(t, err)
}

func TestLoadEmbeddedSeed(t *testing.T) {
	db, err := Load("", validator.New())
	require.NoError(t, err)
	movies, err := db.List(filters.Filters{})
	require.NoError(t, err)
	assert.NotEmpty(t, movies)
	for _, m := range movies {
		assert.NotEmpty(t, m.ID)
	}
}

func TestParseSeed(t *testing.T) {
	v := validator.New()
	t.Run("defaults rate", func(t *testing.T) {
		data := []byte(`[{"id":"1","title":"X","year":2000,"director":"D","duration":90,"poster":"http://a.com/p.jpg","genre":["Drama"]}]`)
		movies, err := ParseSeed(data, v)
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "1", movies[0].ID)
		assert.Equal(t, models.DefaultRate, movies[0].Rate)
	})
	t.Run("invalid record", func(t *testing.T) {
		data := []byte(`[{"id":"1","title":"X","year":1500,"director":"D","duration":90,"poster":"http://a.com/p.jpg","genre":["Drama"]}]`)
		_, err := ParseSeed(data, v)
		var fieldErrs validator.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.True(t, fieldErrs.Has("year"))
	})
	t.Run("missing id", func(t *testing.T) {
		_, err := ParseSeed([]byte(`[{"title":"X"}]`), v)
		assert.Error(t, err)
	})
	t.Run("bad json", func(t *testing.T) {
		_, err := ParseSeed([]byte(`{`), v)
		assert.Error(t, err)
	})
}
