// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dcastano/go-shopchat/internal/dtos"
	"github.com/dcastano/go-shopchat/internal/services"
	chatservice "github.com/dcastano/go-shopchat/internal/services/chat"
)

type ChatHandler struct {
	ChatService *services.ChatService
}

func NewChatHandler(cs *services.ChatService) *ChatHandler {
	return &ChatHandler{ChatService: cs}
}

// ProcessMessage handles POST /chat: one user message in, one completed
// exchange out.
func (h *ChatHandler) ProcessMessage(w http.ResponseWriter, r *http.Request) {
	var req dtos.ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.ChatService.ProcessMessage(r.Context(), req)
	if err != nil {
		writeChatError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetHistory handles GET /chat/history/{session_id}.
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	history, err := h.ChatService.GetSessionHistory(r.Context(), sessionID)
	if err != nil {
		writeChatError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// ClearHistory handles DELETE /chat/history/{session_id}.
func (h *ChatHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	deleted, err := h.ChatService.ClearSessionHistory(r.Context(), sessionID)
	if err != nil {
		writeChatError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.ClearHistoryResponse{
		DeletedCount: deleted,
		Message:      fmt.Sprintf("Historial de la sesión '%s' eliminado. Se borraron %d mensajes.", sessionID, deleted),
	})
}

// writeChatError maps the coarse failure kind to a status code. Causes stay
// in the logs; the caller only sees the short message.
func writeChatError(w http.ResponseWriter, err error) {
	switch chatservice.TypeOf(err) {
	case chatservice.ErrTypeValidation:
		writeError(w, err.Error(), http.StatusBadRequest)
	case chatservice.ErrTypeNotFound:
		writeError(w, "Not found", http.StatusNotFound)
	case chatservice.ErrTypeGeneration:
		writeError(w, "Chat service error: could not generate a response", http.StatusInternalServerError)
	case chatservice.ErrTypePersistence:
		writeError(w, "Chat service error: storage unavailable", http.StatusInternalServerError)
	default:
		writeError(w, "An unexpected error occurred", http.StatusInternalServerError)
	}
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
