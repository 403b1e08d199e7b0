package models

type Genre string

const (
	GenreAction    Genre = "Action"
	GenreAdventure Genre = "Adventure"
	GenreCrime     Genre = "Crime"
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreFantasy   Genre = "Fantasy"
	GenreHorror    Genre = "Horror"
	GenreThriller  Genre = "Thriller"
	GenreSciFi     Genre = "Sci-Fi"
)

// Genres lists every accepted genre token in canonical order.
var Genres = []Genre{
	GenreAction, GenreAdventure, GenreCrime, GenreComedy, GenreDrama,
	GenreFantasy, GenreHorror, GenreThriller, GenreSciFi,
}

const DefaultRate = 6.0

type Movie struct {
	ID       string  `json:"id"`       // UUID v4 assigned by the store on insert
	Title    string  `json:"title"`    // Movie title
	Year     int     `json:"year"`     // Movie release year (1900..2024)
	Director string  `json:"director"` // Movie director
	Duration int     `json:"duration"` // Movie duration (in minutes)
	Rate     float64 `json:"rate"`     // Rating from 0 to 10
	Poster   string  `json:"poster"`   // Absolute URL of the poster image
	Genre    []Genre `json:"genre"`    // Movie genres (i.e. Comedy, Drama, Sci-Fi)
}

// MoviePatch holds the fields supplied by a partial update. Nil means "not supplied".
type MoviePatch struct {
	Title    *string
	Year     *int
	Director *string
	Duration *int
	Rate     *float64
	Poster   *string
	Genre    []Genre
}

func (p MoviePatch) IsEmpty() bool {
	return p.Title == nil && p.Year == nil && p.Director == nil && p.Duration == nil &&
		p.Rate == nil && p.Poster == nil && p.Genre == nil
}

// Apply returns a copy of m with every supplied field of p overwritten.
func (p MoviePatch) Apply(m Movie) Movie {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.Director != nil {
		m.Director = *p.Director
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
	if p.Rate != nil {
		m.Rate = *p.Rate
	}
	if p.Poster != nil {
		m.Poster = *p.Poster
	}
	if p.Genre != nil {
		m.Genre = append([]Genre(nil), p.Genre...)
	}
	return m
}

// Clone returns a deep copy so callers can't alias the stored genre slice.
func (m Movie) Clone() Movie {
	m.Genre = append([]Genre(nil), m.Genre...)
	return m
}
