package handler

import (
	"encoding/json"
	"net/http"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
	"github.com/s1lver0/cinemax-chat-go/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// catalogApology is the fixed user-facing message when the catalog
// cannot be loaded. Returned under the "response" key (not "error") so
// the frontend renders it as a normal assistant bubble.
const catalogApology = "Lo siento, no pude cargar la información de las películas en este momento."

// chatHandler serves POST /chat.
//
// Request:  {"message": "...", "session_id": "..."} (session_id optional)
// Response: {"response": "...", "session_id": "..."}
//
// The session id is generated server-side when absent and always echoed
// back, so the caller can resume the conversation on its next call.
func chatHandler(chatSvc *service.ChatService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /chat")
		defer span.End()

		var req domain.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: expected {\"message\": \"your message\"}")
			return
		}
		if req.Message == "" {
			writeError(w, http.StatusBadRequest, "message is required")
			return
		}
		if req.SessionID != "" {
			span.SetAttributes(attribute.String("session.id", req.SessionID))
		}

		resp, err := chatSvc.ProcessMessage(ctx, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// clearHistoryHandler serves POST /chat/history/clear.
//
// Request:  {"session_id": "..."} (required)
// Response: {"status": "success", "message": "History for session ... cleared."}
func clearHistoryHandler(chatSvc *service.ChatService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /chat/history/clear")
		defer span.End()

		var req domain.ClearHistoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.SessionID == "" {
			writeError(w, http.StatusBadRequest, "session_id is required")
			return
		}
		span.SetAttributes(attribute.String("session.id", req.SessionID))

		msg, err := chatSvc.ClearHistory(req.SessionID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "success",
			"message": msg,
		})
	}
}

// writeJSON serializes data as JSON and writes it to the response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a standardized error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleServiceError maps domain errors to HTTP status codes. Internal
// diagnostic detail is logged, never returned to the caller.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	switch e := err.(type) {
	case *domain.ErrValidation:
		writeError(w, http.StatusBadRequest, e.Error())
	case *domain.ErrNotFound:
		writeError(w, http.StatusNotFound, "No history found for session "+e.ID)
	case *domain.ErrCatalogUnavailable:
		logger.Error("catalog unavailable", zap.Error(e))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"response": catalogApology})
	case *domain.ErrExternalService:
		logger.Error("external service error", zap.String("service", e.Service), zap.Error(e.Err))
		writeError(w, http.StatusBadGateway, "external service unavailable: "+e.Service)
	default:
		logger.Error("unexpected error in chat handler", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
