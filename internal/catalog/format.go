package catalog

import (
	"fmt"
	"strings"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
)

// Fixed user-facing sentences. These are part of the frontend contract
// and must not be reworded.
const (
	msgNoMovies  = "No se encontraron películas que coincidan con tu búsqueda en nuestra base de datos."
	msgNoPromos  = "No hay promociones generales disponibles."
	msgNoCombos  = "No hay combos disponibles."
	msgNoDetails = "No encontré información sobre esa película."
)

// synopsisPreviewLen is how many characters of the synopsis appear in
// list renderings before the ellipsis.
const synopsisPreviewLen = 100

// FormatMovies renders one line per movie: title, comma-joined genres
// and a truncated synopsis.
func FormatMovies(movies []domain.Movie) string {
	if len(movies) == 0 {
		return msgNoMovies
	}
	lines := make([]string, 0, len(movies))
	for _, m := range movies {
		lines = append(lines, fmt.Sprintf("- %s (%s): %s...",
			m.Titulo, strings.Join(m.Genero, ", "), truncate(m.Sinopsis, synopsisPreviewLen)))
	}
	return strings.Join(lines, "\n")
}

// FormatPromociones renders the cinema-wide promotions as a bullet list.
func FormatPromociones(promos []domain.Promotion) string {
	if len(promos) == 0 {
		return msgNoPromos
	}
	lines := make([]string, 0, len(promos))
	for _, p := range promos {
		lines = append(lines, fmt.Sprintf("• %s: %s", p.Nombre, p.Descripcion))
	}
	return strings.Join(lines, "\n")
}

// FormatCombos renders the snack combos as a bullet list.
func FormatCombos(combos []domain.Combo) string {
	if len(combos) == 0 {
		return msgNoCombos
	}
	lines := make([]string, 0, len(combos))
	for _, c := range combos {
		lines = append(lines, fmt.Sprintf("• %s: %s (S/%v)", c.Nombre, c.Contenido, c.Precio))
	}
	return strings.Join(lines, "\n")
}

// FormatMovieDetails renders the full detail block for one movie. A nil
// movie yields the fixed "no information" sentence. A movie missing any
// required field yields *domain.ErrIncompleteRecord rather than a block
// with holes in it.
func FormatMovieDetails(m *domain.Movie) (string, error) {
	if m == nil {
		return msgNoDetails, nil
	}
	if err := validateMovie(m); err != nil {
		return "", err
	}

	details := []string{
		fmt.Sprintf("🎬 **%s**", m.Titulo),
		fmt.Sprintf("📌 Género: %s", strings.Join(m.Genero, ", ")),
		fmt.Sprintf("📝 Sinopsis: %s", m.Sinopsis),
		fmt.Sprintf("⏱️ Duración: %d minutos", m.Duracion),
		fmt.Sprintf("🎫 Clasificación: %s", m.Clasificacion),
		fmt.Sprintf("⏰ Horarios: %s", strings.Join(m.Horarios, ", ")),
		"💲 Precios:",
		fmt.Sprintf("  - General: S/%v", m.Precios[domain.PriceGeneral]),
		fmt.Sprintf("  - Niños: S/%v", m.Precios[domain.PriceNinos]),
		fmt.Sprintf("  - Tercera edad: S/%v", m.Precios[domain.PriceTerceraEdad]),
		fmt.Sprintf("  - VIP: S/%v", m.Precios[domain.PriceVIP]),
	}
	if len(m.Promociones) > 0 {
		details = append(details, fmt.Sprintf("🎁 Promociones: %s", strings.Join(m.Promociones, ", ")))
	}
	details = append(details, fmt.Sprintf("⭐ Rating: %v/10", m.Rating))
	return strings.Join(details, "\n"), nil
}

// validateMovie checks the fields the detail block interpolates.
func validateMovie(m *domain.Movie) error {
	missing := func(field string) error {
		return &domain.ErrIncompleteRecord{Title: m.Titulo, Field: field}
	}
	switch {
	case m.Titulo == "":
		return missing("titulo")
	case len(m.Genero) == 0:
		return missing("genero")
	case m.Sinopsis == "":
		return missing("sinopsis")
	case m.Duracion == 0:
		return missing("duracion")
	case m.Clasificacion == "":
		return missing("clasificacion")
	case len(m.Horarios) == 0:
		return missing("horarios")
	}
	for _, tier := range []string{domain.PriceGeneral, domain.PriceNinos, domain.PriceTerceraEdad, domain.PriceVIP} {
		if _, ok := m.Precios[tier]; !ok {
			return missing("precios." + tier)
		}
	}
	return nil
}

// truncate cuts s to at most n runes. Multi-byte safe: the synopsis is
// Spanish text with accented characters.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
