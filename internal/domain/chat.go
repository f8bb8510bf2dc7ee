package domain

// ============================================================
// Chat — request/response between the frontend and this service
// ============================================================

// ChatRequest is the body of POST /chat. SessionID is optional; when
// absent the service generates one and returns it so the caller can
// resume the conversation on the next turn.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse carries the assistant's answer plus the session id the
// caller must send back to keep the history window.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// ClearHistoryRequest is the body of POST /chat/history/clear.
type ClearHistoryRequest struct {
	SessionID string `json:"session_id"`
}

// Completion is the result of one completion-service call. Token counts
// are zero when the provider does not report usage.
type Completion struct {
	Answer           string
	PromptTokens     int
	CompletionTokens int
}

// ============================================================
// Session history
// ============================================================

// Turn roles. These are also the literal prefixes rendered into the
// prompt history block ("user: ...", "assistant: ...").
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one immutable role-tagged message in a session's history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ============================================================
// Intent classification
// ============================================================

// Intent is the conversational goal inferred from a user message.
type Intent string

// The closed set of intents. Values double as filter category names for
// the four catalog-query intents.
const (
	IntentEmpresa   Intent = "empresa"
	IntentGenero    Intent = "genero"
	IntentCartelera Intent = "cartelera"
	IntentPrecio    Intent = "precio"
	IntentPromocion Intent = "promocion"
	IntentDetalle   Intent = "detalle_pelicula"
)

// Entities holds the best-effort values extracted alongside an intent
// (e.g. {"genero": "terror"} or {"titulo": "dime sobre inception"}).
// Keys are intent-specific and not guaranteed present; the prompt
// assembler applies per-intent defaults for absent keys.
type Entities map[string]string
