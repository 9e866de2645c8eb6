// File: internal/dtos/chat.go
package dtos

import (
	"time"

	"github.com/dcastano/go-shopchat/internal/domain"
)

// ChatMessageRequest is the inbound body of POST /chat.
type ChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatMessageResponse echoes both turns of a completed exchange. The
// timestamp is the assistant message's persisted timestamp.
type ChatMessageResponse struct {
	SessionID        string    `json:"session_id"`
	UserMessage      string    `json:"user_message"`
	AssistantMessage string    `json:"assistant_message"`
	Timestamp        time.Time `json:"timestamp"`
}

// ChatHistoryEntry is one transcript row of GET /chat/history/{session_id}.
type ChatHistoryEntry struct {
	ID        uint        `json:"id"`
	Role      domain.Role `json:"role"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

// ClearHistoryResponse reports the outcome of DELETE /chat/history/{session_id}.
type ClearHistoryResponse struct {
	DeletedCount int64  `json:"deleted_count"`
	Message      string `json:"message"`
}

func HistoryFromDomain(messages []domain.ChatMessage) []ChatHistoryEntry {
	out := make([]ChatHistoryEntry, 0, len(messages))
	for _, m := range messages {
		out = append(out, ChatHistoryEntry{
			ID:        m.ID,
			Role:      m.Role,
			Message:   m.Message,
			Timestamp: m.Timestamp,
		})
	}
	return out
}
