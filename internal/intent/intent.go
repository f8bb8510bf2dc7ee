// Package intent maps a raw user message to a conversational intent plus
// best-effort entities.
//
// The classifier is a fixed-priority rule pipeline, evaluated in order:
//
//  1. Detail-request trigger phrases → detalle_pelicula, with the whole
//     raw message as the title-lookup key (downstream lookup does
//     substring containment, so no title parsing happens here).
//  2. Any known genre appearing as a substring → genero.
//  3. An ordered keyword table → the first matching keyword's intent.
//  4. Default → empresa.
//
// Matching is deliberately plain substring containment over the
// lowercased message — not tokenized — to preserve the behavior the
// frontend was built against. A genre name embedded inside an unrelated
// word will match; that is accepted.
package intent

import (
	"strings"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
)

// detailTriggers are the phrases that force the detalle_pelicula intent,
// regardless of any genre or keyword also present in the message.
var detailTriggers = []string{
	"detalle",
	"información",
	"dime sobre",
	"hablame de",
	"qué sabes de",
}

// keywordRule binds a keyword substring to an intent. Rules are checked
// in declaration order and the first hit wins, so more specific stems
// must come before broader ones.
type keywordRule struct {
	keyword string
	intent  domain.Intent
}

// keywordRules is the ordered keyword → intent table. Stems like
// "recomiend" intentionally match all conjugations (recomienda,
// recomiéndame, ...).
var keywordRules = []keywordRule{
	{"recomiend", domain.IntentGenero},
	{"sugier", domain.IntentGenero},
	{"cartelera", domain.IntentCartelera},
	{"horario", domain.IntentCartelera},
	{"hora", domain.IntentCartelera},
	{"función", domain.IntentCartelera},
	{"precio", domain.IntentPrecio},
	{"coste", domain.IntentPrecio},
	{"valor", domain.IntentPrecio},
	{"cuesta", domain.IntentPrecio},
	{"promocion", domain.IntentPromocion},
	{"descuento", domain.IntentPromocion},
	{"oferta", domain.IntentPromocion},
	{"empresa", domain.IntentEmpresa},
	{"cine", domain.IntentEmpresa},
	{"ubicado", domain.IntentEmpresa},
	{"dirección", domain.IntentEmpresa},
}

// Classify resolves message into an (intent, entities) pair. knownGenres
// is the catalog's genre vocabulary, lowercased. Classify always returns
// a valid intent; entities may be empty and callers apply their own
// defaults for absent keys.
func Classify(message string, knownGenres []string) (domain.Intent, domain.Entities) {
	lower := strings.ToLower(message)

	for _, trigger := range detailTriggers {
		if strings.Contains(lower, trigger) {
			return domain.IntentDetalle, domain.Entities{"titulo": message}
		}
	}

	for _, g := range knownGenres {
		if g != "" && strings.Contains(lower, g) {
			return domain.IntentGenero, domain.Entities{"genero": g}
		}
	}

	for _, rule := range keywordRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.intent, domain.Entities{}
		}
	}

	return domain.IntentEmpresa, domain.Entities{}
}
