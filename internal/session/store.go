// Package session implements the in-memory conversation history store.
//
// The store is process-wide mutable state: a read-write mutex guards the
// session map and each session carries its own mutex, so two requests
// racing on the same session id append atomically and in arrival order,
// while requests on different sessions never contend with each other.
//
// History is append-only and never truncated in storage — only the read
// path (Recent) applies the recency window used for prompt building.
// There is no TTL; a session lives until Clear or process exit.
// Cross-restart persistence is intentionally out of scope.
package session

import (
	"sync"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
)

type record struct {
	mu    sync.Mutex
	turns []domain.Turn
}

// InMemoryStore maps session ids to their turn logs.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*record
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*record)}
}

// Append adds one turn to the session's log, creating the session on
// first use.
func (s *InMemoryStore) Append(sessionID, role, content string) {
	rec := s.getOrCreate(sessionID)
	rec.mu.Lock()
	rec.turns = append(rec.turns, domain.Turn{Role: role, Content: content})
	rec.mu.Unlock()
}

// Recent returns a copy of the last n turns in original order. Unknown
// sessions and n <= 0 yield an empty slice.
func (s *InMemoryStore) Recent(sessionID string, n int) []domain.Turn {
	s.mu.RLock()
	rec, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok || n <= 0 {
		return nil
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	start := len(rec.turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]domain.Turn, len(rec.turns)-start)
	copy(out, rec.turns[start:])
	return out
}

// Clear deletes the whole session record. Returns false when the id is
// unknown. A later Append to the same id starts a fresh history.
func (s *InMemoryStore) Clear(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return false
	}
	delete(s.sessions, sessionID)
	return true
}

// Len reports the number of live sessions.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *InMemoryStore) getOrCreate(sessionID string) *record {
	s.mu.RLock()
	rec, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return rec
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok = s.sessions[sessionID]; ok {
		return rec
	}
	rec = &record{}
	s.sessions[sessionID] = rec
	return rec
}
