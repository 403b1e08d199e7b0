package filters

import (
	"movies/proj/internal/domain/models"
	"strings"
)

type Filters struct {
	Genre string `schema:"genre"`
}

func (f *Filters) IsEmpty() bool {
	return f.Genre == ""
}

// Match reports whether movie passes the filter. Genre comparison ignores case.
func (f *Filters) Match(movie *models.Movie) bool {
	if f.IsEmpty() {
		return true
	}
	for _, g := range movie.Genre {
		if strings.EqualFold(string(g), f.Genre) {
			return true
		}
	}
	return false
}
