// Package port defines the interfaces (ports) between the core chat
// logic and its collaborators. The service layer depends on these, never
// on concrete clients, so each side can be swapped or mocked in tests.
package port

import (
	"context"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
)

// CatalogProvider fetches the cinema catalog document. The plain client
// re-fetches per request; a caching implementation can be slotted in
// front without the service layer noticing.
type CatalogProvider interface {
	Fetch(ctx context.Context) (*domain.Catalog, error)
}

// CompletionCaller invokes the remote completion service once per turn
// with a system instruction and the assembled user context.
type CompletionCaller interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*domain.Completion, error)
}

// HistoryStore owns per-session conversation history. Append is
// append-only; Recent windows the read path without truncating storage;
// Clear reports false when the session id is unknown.
type HistoryStore interface {
	Append(sessionID, role, content string)
	Recent(sessionID string, n int) []domain.Turn
	Clear(sessionID string) bool
}

// Cache is a generic cache abstraction (backed by the in-memory TTL
// cache; could be Redis in production).
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
