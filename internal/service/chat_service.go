// Package service implements the ChatService, the orchestrator of one
// conversational turn.
//
// Flow per turn:
//  1. Resolve the session id (generate one when the caller sent none)
//  2. Append the user turn to the session history
//  3. Fetch the catalog from the provider
//  4. Classify the message against the catalog's genre vocabulary
//  5. Assemble the prompt (windowed history + intent-specific context)
//  6. Call the completion service
//  7. Append the assistant turn and return the answer
//
// A failed catalog fetch or completion call fails the turn outright; the
// already-appended user turn stays in history by design (no rollback).
package service

import (
	"context"
	"time"

	"github.com/s1lver0/cinemax-chat-go/internal/catalog"
	"github.com/s1lver0/cinemax-chat-go/internal/domain"
	"github.com/s1lver0/cinemax-chat-go/internal/infra/observability"
	"github.com/s1lver0/cinemax-chat-go/internal/intent"
	"github.com/s1lver0/cinemax-chat-go/internal/port"
	"github.com/s1lver0/cinemax-chat-go/internal/prompt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service/chat")

// HistoryWindow is how many trailing turns are rendered into the prompt.
// Storage keeps everything; this bounds only the read path.
const HistoryWindow = 8

// ChatService wires the catalog provider, completion caller and history
// store into the per-turn flow. All dependencies are injected.
type ChatService struct {
	catalogProvider port.CatalogProvider
	completion      port.CompletionCaller
	history         port.HistoryStore
	historyWindow   int
	metrics         *observability.Metrics
	logger          *zap.Logger
}

// NewChatService creates the chat service. historyWindow <= 0 falls back
// to the default window of 8 turns.
func NewChatService(
	catalogProvider port.CatalogProvider,
	completion port.CompletionCaller,
	history port.HistoryStore,
	historyWindow int,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ChatService {
	if historyWindow <= 0 {
		historyWindow = HistoryWindow
	}
	return &ChatService{
		catalogProvider: catalogProvider,
		completion:      completion,
		history:         history,
		historyWindow:   historyWindow,
		metrics:         metrics,
		logger:          logger,
	}
}

// ProcessMessage runs one full conversational turn and returns the
// assistant's answer plus the (possibly generated) session id.
func (s *ChatService) ProcessMessage(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "ChatService.ProcessMessage")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("chat", time.Since(start))
	}()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	span.SetAttributes(attribute.String("session.id", sessionID))

	// The user turn is logged before any upstream call and is not rolled
	// back on failure.
	s.history.Append(sessionID, domain.RoleUser, req.Message)

	cat, err := s.catalogProvider.Fetch(ctx)
	if err != nil {
		s.logger.Error("catalog fetch failed", zap.String("session_id", sessionID), zap.Error(err))
		s.metrics.IncrExternalError("catalog")
		s.metrics.IncrRequest("error")
		return nil, &domain.ErrCatalogUnavailable{Err: err}
	}
	if cat.Peliculas == nil {
		s.logger.Error("catalog document has no peliculas", zap.String("session_id", sessionID))
		s.metrics.IncrRequest("error")
		return nil, &domain.ErrCatalogUnavailable{Err: errNoMovies}
	}

	detected, ents := intent.Classify(req.Message, catalog.Genres(cat))
	s.metrics.IncrIntent(string(detected))
	s.logger.Info("chat message received",
		zap.String("session_id", sessionID),
		zap.String("intent", string(detected)),
		zap.Int("message_length", len(req.Message)),
	)

	recent := s.history.Recent(sessionID, s.historyWindow)
	userPrompt, err := prompt.Build(recent, req.Message, detected, ents, cat)
	if err != nil {
		s.logger.Error("prompt assembly failed",
			zap.String("session_id", sessionID),
			zap.String("intent", string(detected)),
			zap.Error(err),
		)
		s.metrics.IncrRequest("error")
		return nil, err
	}

	completionStart := time.Now()
	result, err := s.completion.Complete(ctx, prompt.SystemPrompt, userPrompt)
	s.metrics.RecordRequestDuration("completion", time.Since(completionStart))
	if err != nil {
		s.logger.Error("completion call failed", zap.String("session_id", sessionID), zap.Error(err))
		s.metrics.IncrExternalError("completion")
		s.metrics.IncrRequest("error")
		return nil, err
	}

	s.metrics.RecordTokens(result.PromptTokens, result.CompletionTokens)
	s.history.Append(sessionID, domain.RoleAssistant, result.Answer)
	s.metrics.IncrRequest("success")

	return &domain.ChatResponse{
		Response:  result.Answer,
		SessionID: sessionID,
	}, nil
}

// ClearHistory removes a session's entire history. Returns the fixed
// confirmation message on success.
func (s *ChatService) ClearHistory(sessionID string) (string, error) {
	if sessionID == "" {
		return "", &domain.ErrValidation{Field: "session_id", Message: "session_id is required"}
	}
	if !s.history.Clear(sessionID) {
		return "", &domain.ErrNotFound{Resource: "history for session", ID: sessionID}
	}
	s.logger.Info("session history cleared", zap.String("session_id", sessionID))
	return "History for session " + sessionID + " cleared.", nil
}

// errNoMovies is the cause recorded when the decoded catalog lacks the
// peliculas key entirely.
var errNoMovies = &domain.ErrValidation{Field: "peliculas", Message: "missing from catalog document"}
