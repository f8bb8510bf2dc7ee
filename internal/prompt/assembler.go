// Package prompt assembles the two text blocks handed to the completion
// service: the fixed system instruction and the per-turn user context.
//
// The user context is deterministic for a given (history, message,
// intent, catalog) tuple: windowed history as "role: content" lines, the
// current question verbatim, then exactly one intent-specific context
// block rendered from the catalog.
package prompt

import (
	"fmt"
	"strings"

	"github.com/s1lver0/cinemax-chat-go/internal/catalog"
	"github.com/s1lver0/cinemax-chat-go/internal/domain"
)

// SystemPrompt constrains the completion service to answer only from the
// supplied context, in Spanish, concisely. Part of the model contract —
// do not reword.
const SystemPrompt = `Eres un asistente de cine para CineMax Premium. Debes seguir estas reglas estrictamente:
1. **SOLO** usa la información del contexto proporcionado. Nunca inventes datos.
2. Para detalles de películas, usa EXCLUSIVAMENTE la información del JSON.
3. Si no sabes algo, di amablemente que no tienes esa información.
4. Mantén respuestas breves y en español.
5. Para preguntas sobre películas específicas, muestra TODOS los detalles disponibles.`

// Entity fallbacks applied when classification produced an intent but no
// usable entity. The frontend's canned suggestions assume these values.
const (
	defaultGenre    = "acción"
	defaultShowtime = "20:00"
	defaultPrice    = "35"
	defaultPromo    = "2x1"
)

// Build renders the user-context block for one turn. history should
// already be windowed by the caller (the service passes the last 8
// turns, including the just-appended user turn). The only error path is
// an incomplete movie record on the detail branch.
func Build(history []domain.Turn, question string, intent domain.Intent, ents domain.Entities, c *domain.Catalog) (string, error) {
	var b strings.Builder

	b.WriteString("Historial de Conversación:\n")
	lines := make([]string, 0, len(history))
	for _, t := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, t.Content))
	}
	b.WriteString(strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "\n\nPregunta Actual: %s\n\nContexto relevante:\n", question)

	switch intent {
	case domain.IntentEmpresa:
		fmt.Fprintf(&b, "**Cine**: %s\n**Ubicación**: %s\n**Promociones**: %s\n**Combos**: %s",
			c.Cine, c.Ubicacion,
			catalog.FormatPromociones(c.PromocionesGenerales),
			catalog.FormatCombos(c.Combos))

	case domain.IntentGenero:
		genero := entityOr(ents, "genero", defaultGenre)
		filtered := catalog.FilterByCategory(domain.IntentGenero, genero, c)
		fmt.Fprintf(&b, "Películas de %s:\n%s", genero, catalog.FormatMovies(filtered))

	case domain.IntentCartelera:
		horario := entityOr(ents, "horario", defaultShowtime)
		filtered := catalog.FilterByCategory(domain.IntentCartelera, horario, c)
		fmt.Fprintf(&b, "Películas para las %s:\n%s", horario, catalog.FormatMovies(filtered))

	case domain.IntentPrecio:
		precio := entityOr(ents, "precio", defaultPrice)
		filtered := catalog.FilterByCategory(domain.IntentPrecio, precio, c)
		fmt.Fprintf(&b, "Películas por menos de S/%s:\n%s", precio, catalog.FormatMovies(filtered))

	case domain.IntentPromocion:
		promo := entityOr(ents, "promo", defaultPromo)
		filtered := catalog.FilterByCategory(domain.IntentPromocion, promo, c)
		fmt.Fprintf(&b, "Películas con la promoción '%s':\n%s", promo, catalog.FormatMovies(filtered))

	case domain.IntentDetalle:
		movie := catalog.FindMovieByTitle(ents["titulo"], c)
		details, err := catalog.FormatMovieDetails(movie)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "Detalles de la película:\n%s", details)

	default:
		b.WriteString("No se detectó una intención clara. Responde amablemente que no entiendes la pregunta.")
	}

	return b.String(), nil
}

func entityOr(ents domain.Entities, key, fallback string) string {
	if v, ok := ents[key]; ok && v != "" {
		return v
	}
	return fallback
}
