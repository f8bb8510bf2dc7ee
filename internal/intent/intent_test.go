package intent_test

import (
	"testing"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
	"github.com/s1lver0/cinemax-chat-go/internal/intent"
)

var genres = []string{"acción", "terror", "comedia", "ciencia ficción"}

func TestClassify_DetailTriggersWin(t *testing.T) {
	cases := []string{
		"dame el detalle de esa película",
		"quiero más información",
		"dime sobre Inception",
		"hablame de la película de terror", // genre keyword present, detail still wins
		"qué sabes de Matrix",
	}
	for _, msg := range cases {
		got, ents := intent.Classify(msg, genres)
		if got != domain.IntentDetalle {
			t.Errorf("Classify(%q) = %s, want detalle_pelicula", msg, got)
		}
		if ents["titulo"] != msg {
			t.Errorf("Classify(%q) titulo entity = %q, want the raw message", msg, ents["titulo"])
		}
	}
}

func TestClassify_GenreSubstring(t *testing.T) {
	got, ents := intent.Classify("Quiero ver algo de TERROR esta noche", genres)
	if got != domain.IntentGenero {
		t.Fatalf("expected genero, got %s", got)
	}
	if ents["genero"] != "terror" {
		t.Errorf("expected genero entity 'terror', got %q", ents["genero"])
	}
}

func TestClassify_GenreBeatsKeywordTable(t *testing.T) {
	// "recomiend" is in the keyword table, but the genre rule runs first.
	got, ents := intent.Classify("recomiéndame una de comedia", genres)
	if got != domain.IntentGenero {
		t.Fatalf("expected genero, got %s", got)
	}
	if ents["genero"] != "comedia" {
		t.Errorf("expected genero entity 'comedia', got %q", ents["genero"])
	}
}

func TestClassify_KeywordTable(t *testing.T) {
	cases := []struct {
		msg  string
		want domain.Intent
	}{
		{"recomiéndame algo", domain.IntentGenero},
		{"sugiere una peli", domain.IntentGenero},
		{"qué hay en cartelera", domain.IntentCartelera},
		{"a qué hora empieza", domain.IntentCartelera},
		{"cuánto cuesta la entrada", domain.IntentPrecio},
		{"hay algún descuento", domain.IntentPromocion},
		{"tienen alguna oferta hoy", domain.IntentPromocion},
		{"dónde está ubicado", domain.IntentEmpresa},
	}
	for _, tc := range cases {
		got, _ := intent.Classify(tc.msg, genres)
		if got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.msg, got, tc.want)
		}
	}
}

func TestClassify_KeywordOrderFirstWins(t *testing.T) {
	// Both "horario" and "precio" appear; "horario" sits earlier in the table.
	got, _ := intent.Classify("horario y precio por favor", genres)
	if got != domain.IntentCartelera {
		t.Errorf("expected cartelera (first keyword wins), got %s", got)
	}
}

func TestClassify_Default(t *testing.T) {
	got, ents := intent.Classify("hola buenas tardes", genres)
	if got != domain.IntentEmpresa {
		t.Errorf("expected default empresa, got %s", got)
	}
	if len(ents) != 0 {
		t.Errorf("expected empty entities, got %v", ents)
	}
}

func TestClassify_NoGenres(t *testing.T) {
	got, _ := intent.Classify("algo de terror", nil)
	if got != domain.IntentEmpresa {
		t.Errorf("expected empresa with empty vocabulary, got %s", got)
	}
}

func TestClassify_AlwaysReturnsValidIntent(t *testing.T) {
	for _, msg := range []string{"", "   ", "????", "12345"} {
		got, _ := intent.Classify(msg, genres)
		switch got {
		case domain.IntentEmpresa, domain.IntentGenero, domain.IntentCartelera,
			domain.IntentPrecio, domain.IntentPromocion, domain.IntentDetalle:
		default:
			t.Errorf("Classify(%q) returned unknown intent %q", msg, got)
		}
	}
}
