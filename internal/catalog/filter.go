// Package catalog implements the pure query and rendering functions over
// the fetched cinema dataset. Nothing here performs I/O or keeps state;
// every function takes the catalog (or a slice of it) and returns data.
package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
)

// FilterByCategory selects the movies matching value for the given
// category. Unknown categories, a nil catalog, an unparsable price
// ceiling, and plain no-matches all yield an empty slice — filtering is
// never an error, the formatter renders empties as a "no results" line.
func FilterByCategory(category domain.Intent, value string, c *domain.Catalog) []domain.Movie {
	if c == nil {
		return nil
	}
	value = strings.ToLower(value)

	var out []domain.Movie
	switch category {
	case domain.IntentGenero:
		for _, m := range c.Peliculas {
			if hasGenre(m, value) {
				out = append(out, m)
			}
		}
	case domain.IntentPrecio:
		ceiling, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil
		}
		for _, m := range c.Peliculas {
			if generalPrice(m) <= ceiling {
				out = append(out, m)
			}
		}
	case domain.IntentPromocion:
		for _, m := range c.Peliculas {
			if hasPromotion(m, value) {
				out = append(out, m)
			}
		}
	case domain.IntentCartelera:
		for _, m := range c.Peliculas {
			if hasShowtime(m, value) {
				out = append(out, m)
			}
		}
	}
	return out
}

// FindMovieByTitle returns the first movie whose title contains title as
// a case-insensitive substring, or nil when none does. The lookup key is
// typically the entire user message, so a miss is the common case and
// the detail formatter renders its fixed "no information" sentence.
func FindMovieByTitle(title string, c *domain.Catalog) *domain.Movie {
	if c == nil {
		return nil
	}
	lower := strings.ToLower(title)
	for i := range c.Peliculas {
		if strings.Contains(strings.ToLower(c.Peliculas[i].Titulo), lower) {
			return &c.Peliculas[i]
		}
	}
	return nil
}

// Genres derives the genre vocabulary from the catalog: lowercased,
// deduplicated, in first-seen order.
func Genres(c *domain.Catalog) []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, m := range c.Peliculas {
		for _, g := range m.Genero {
			lg := strings.ToLower(g)
			if !seen[lg] {
				seen[lg] = true
				out = append(out, lg)
			}
		}
	}
	return out
}

// hasGenre reports whether value equals one of the movie's genre tokens,
// case-insensitively. Exact token match, not substring.
func hasGenre(m domain.Movie, value string) bool {
	for _, g := range m.Genero {
		if strings.ToLower(g) == value {
			return true
		}
	}
	return false
}

// generalPrice returns the movie's general-admission price, or +Inf when
// the tier is absent so the movie never passes a parsed ceiling.
func generalPrice(m domain.Movie) float64 {
	if p, ok := m.Precios[domain.PriceGeneral]; ok {
		return p
	}
	return math.Inf(1)
}

// hasPromotion reports whether value is a case-insensitive substring of
// any of the movie's promotion strings.
func hasPromotion(m domain.Movie, value string) bool {
	for _, p := range m.Promociones {
		if strings.Contains(strings.ToLower(p), value) {
			return true
		}
	}
	return false
}

// hasShowtime reports whether value equals one of the movie's showtime
// tokens, case-insensitively.
func hasShowtime(m domain.Movie, value string) bool {
	for _, h := range m.Horarios {
		if strings.ToLower(h) == value {
			return true
		}
	}
	return false
}
