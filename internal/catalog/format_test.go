package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/s1lver0/cinemax-chat-go/internal/catalog"
	"github.com/s1lver0/cinemax-chat-go/internal/domain"
)

func TestFormatMovies(t *testing.T) {
	c := testCatalog()
	got := catalog.FormatMovies(c.Peliculas[:2])

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one line per movie, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "- La Sombra del Pasado (Terror, Suspenso): ") {
		t.Errorf("unexpected list line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "...") {
		t.Errorf("expected trailing ellipsis, got %q", lines[0])
	}
}

func TestFormatMovies_TruncatesSynopsis(t *testing.T) {
	long := strings.Repeat("á", 150)
	got := catalog.FormatMovies([]domain.Movie{{Titulo: "X", Genero: []string{"Drama"}, Sinopsis: long}})

	// 100 runes of synopsis plus the ellipsis; multi-byte runes must not
	// be cut in half.
	if !strings.Contains(got, strings.Repeat("á", 100)+"...") {
		t.Errorf("expected 100-rune preview, got %q", got)
	}
	if strings.Contains(got, strings.Repeat("á", 101)) {
		t.Error("synopsis preview exceeds 100 runes")
	}
}

func TestFormatMovies_Empty(t *testing.T) {
	want := "No se encontraron películas que coincidan con tu búsqueda en nuestra base de datos."
	if got := catalog.FormatMovies(nil); got != want {
		t.Errorf("empty list sentence = %q, want %q", got, want)
	}
}

func TestFormatPromociones(t *testing.T) {
	got := catalog.FormatPromociones([]domain.Promotion{
		{Nombre: "Martes 2x1", Descripcion: "Dos entradas por una"},
	})
	if got != "• Martes 2x1: Dos entradas por una" {
		t.Errorf("unexpected promo line: %q", got)
	}

	if got := catalog.FormatPromociones(nil); got != "No hay promociones generales disponibles." {
		t.Errorf("empty promos sentence = %q", got)
	}
}

func TestFormatCombos(t *testing.T) {
	got := catalog.FormatCombos([]domain.Combo{
		{Nombre: "Combo Pareja", Contenido: "2 gaseosas + canchita", Precio: 25.5},
	})
	if got != "• Combo Pareja: 2 gaseosas + canchita (S/25.5)" {
		t.Errorf("unexpected combo line: %q", got)
	}

	if got := catalog.FormatCombos(nil); got != "No hay combos disponibles." {
		t.Errorf("empty combos sentence = %q", got)
	}
}

func TestFormatMovieDetails_Complete(t *testing.T) {
	c := testCatalog()
	got, err := catalog.FormatMovieDetails(&c.Peliculas[0])
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, want := range []string{
		"🎬 **La Sombra del Pasado**",
		"📌 Género: Terror, Suspenso",
		"⏱️ Duración: 110 minutos",
		"🎫 Clasificación: +14",
		"⏰ Horarios: 18:00, 20:00, 22:30",
		"  - General: S/30",
		"  - Niños: S/20",
		"  - Tercera edad: S/18",
		"  - VIP: S/45",
		"🎁 Promociones: 2x1 los martes",
		"⭐ Rating: 7.8/10",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("detail block missing %q\nblock:\n%s", want, got)
		}
	}
}

func TestFormatMovieDetails_NoPromotions(t *testing.T) {
	c := testCatalog()
	got, err := catalog.FormatMovieDetails(&c.Peliculas[1])
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(got, "🎁") {
		t.Error("promotions line must be omitted when the movie has none")
	}
}

func TestFormatMovieDetails_Missing(t *testing.T) {
	got, err := catalog.FormatMovieDetails(nil)
	if err != nil {
		t.Fatalf("nil movie is not an error, got %v", err)
	}
	if got != "No encontré información sobre esa película." {
		t.Errorf("missing-movie sentence = %q", got)
	}
}

func TestFormatMovieDetails_IncompleteRecord(t *testing.T) {
	m := &domain.Movie{
		Titulo:        "Incompleta",
		Genero:        []string{"Drama"},
		Sinopsis:      "Algo",
		Duracion:      90,
		Clasificacion: "APT",
		Horarios:      []string{"20:00"},
		Precios:       map[string]float64{"general": 30}, // other tiers absent
		Rating:        5,
	}

	_, err := catalog.FormatMovieDetails(m)
	var incomplete *domain.ErrIncompleteRecord
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected ErrIncompleteRecord, got %v", err)
	}
	if incomplete.Title != "Incompleta" {
		t.Errorf("error names wrong record: %q", incomplete.Title)
	}
	if !strings.HasPrefix(incomplete.Field, "precios.") {
		t.Errorf("expected a price-tier field, got %q", incomplete.Field)
	}
}
