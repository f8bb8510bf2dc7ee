package prompt_test

import (
	"strings"
	"testing"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
	"github.com/s1lver0/cinemax-chat-go/internal/prompt"
)

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Cine:      "CineMax Premium",
		Ubicacion: "Av. Principal 123, Lima",
		PromocionesGenerales: []domain.Promotion{
			{Nombre: "Martes 2x1", Descripcion: "Dos entradas por una"},
		},
		Combos: []domain.Combo{
			{Nombre: "Combo Pareja", Contenido: "2 gaseosas + canchita", Precio: 25},
		},
		Peliculas: []domain.Movie{
			{
				Titulo:        "Galaxia Perdida",
				Genero:        []string{"Acción"},
				Sinopsis:      "Una expedición interestelar queda varada.",
				Duracion:      140,
				Clasificacion: "+14",
				Horarios:      []string{"20:00"},
				Precios:       map[string]float64{"general": 30, "niños": 25, "tercera_edad": 22, "VIP": 60},
				Rating:        8.4,
			},
		},
	}
}

func TestBuild_HistoryAndQuestion(t *testing.T) {
	history := []domain.Turn{
		{Role: domain.RoleUser, Content: "hola"},
		{Role: domain.RoleAssistant, Content: "¡Hola! ¿En qué puedo ayudarte?"},
	}

	got, err := prompt.Build(history, "¿dónde están ubicados?", domain.IntentEmpresa, domain.Entities{}, testCatalog())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.HasPrefix(got, "Historial de Conversación:\n") {
		t.Errorf("prompt must open with the history header, got %q", got[:40])
	}
	if !strings.Contains(got, "user: hola\nassistant: ¡Hola! ¿En qué puedo ayudarte?") {
		t.Error("history turns must render as 'role: content' lines")
	}
	if !strings.Contains(got, "Pregunta Actual: ¿dónde están ubicados?") {
		t.Error("current question must appear verbatim")
	}
	if !strings.Contains(got, "Contexto relevante:") {
		t.Error("context header missing")
	}
}

func TestBuild_EmpresaBlock(t *testing.T) {
	got, err := prompt.Build(nil, "cine", domain.IntentEmpresa, domain.Entities{}, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"**Cine**: CineMax Premium",
		"**Ubicación**: Av. Principal 123, Lima",
		"• Martes 2x1: Dos entradas por una",
		"• Combo Pareja: 2 gaseosas + canchita (S/25)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("empresa block missing %q", want)
		}
	}
}

func TestBuild_GenreDefault(t *testing.T) {
	got, err := prompt.Build(nil, "recomiéndame algo", domain.IntentGenero, domain.Entities{}, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Películas de acción:") {
		t.Errorf("expected default genre 'acción', got:\n%s", got)
	}
	if !strings.Contains(got, "- Galaxia Perdida (Acción):") {
		t.Error("expected the matching movie in the rendered list")
	}
}

func TestBuild_PriceDefault(t *testing.T) {
	got, err := prompt.Build(nil, "precios", domain.IntentPrecio, domain.Entities{}, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Películas por menos de S/35:") {
		t.Errorf("expected default price ceiling 35, got:\n%s", got)
	}
}

func TestBuild_ShowtimeDefault(t *testing.T) {
	got, err := prompt.Build(nil, "cartelera", domain.IntentCartelera, domain.Entities{}, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Películas para las 20:00:") {
		t.Errorf("expected default showtime 20:00, got:\n%s", got)
	}
}

func TestBuild_PromoDefault(t *testing.T) {
	got, err := prompt.Build(nil, "ofertas", domain.IntentPromocion, domain.Entities{}, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Películas con la promoción '2x1':") {
		t.Errorf("expected default promo '2x1', got:\n%s", got)
	}
	// No movie carries that promo in this fixture.
	if !strings.Contains(got, "No se encontraron películas") {
		t.Error("expected the fixed no-results sentence")
	}
}

func TestBuild_DetailMiss(t *testing.T) {
	ents := domain.Entities{"titulo": "dime sobre Inception"}
	got, err := prompt.Build(nil, "dime sobre Inception", domain.IntentDetalle, ents, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Detalles de la película:\nNo encontré información sobre esa película.") {
		t.Errorf("expected the fixed no-information sentence, got:\n%s", got)
	}
}

func TestBuild_DetailHit(t *testing.T) {
	ents := domain.Entities{"titulo": "galaxia perdida"}
	got, err := prompt.Build(nil, "galaxia perdida", domain.IntentDetalle, ents, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "🎬 **Galaxia Perdida**") {
		t.Errorf("expected full detail block, got:\n%s", got)
	}
}

func TestBuild_DetailIncompleteRecord(t *testing.T) {
	c := testCatalog()
	c.Peliculas[0].Precios = map[string]float64{"general": 30} // drop tiers

	ents := domain.Entities{"titulo": "galaxia perdida"}
	_, err := prompt.Build(nil, "galaxia perdida", domain.IntentDetalle, ents, c)
	if err == nil {
		t.Fatal("expected incomplete-record error")
	}
}

func TestBuild_UnknownIntent(t *testing.T) {
	got, err := prompt.Build(nil, "???", domain.Intent("desconocido"), domain.Entities{}, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "No se detectó una intención clara. Responde amablemente que no entiendes la pregunta.") {
		t.Errorf("expected the fixed fallback instruction, got:\n%s", got)
	}
}
