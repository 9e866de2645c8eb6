// File: internal/domain/message.go
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

var (
	ErrEmptySessionID = errors.New("session_id cannot be empty")
	ErrEmptyMessage   = errors.New("message cannot be empty")
)

// ChatMessage is a single turn in a session transcript. Messages are
// append-only: once persisted they are never edited, only purged in bulk
// with the rest of their session.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	SessionID string    `json:"session_id" gorm:"size:100;not null;index"`
	Role      Role      `json:"role" gorm:"size:20;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp"`
}

func (ChatMessage) TableName() string { return "chat_memory" }

// NewChatMessage builds an unsaved message. The timestamp defaults to the
// creation time when left zero.
func NewChatMessage(sessionID string, role Role, message string) (*ChatMessage, error) {
	m := &ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the message invariants.
func (m *ChatMessage) Validate() error {
	if strings.TrimSpace(m.SessionID) == "" {
		return ErrEmptySessionID
	}
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return fmt.Errorf("role must be %q or %q", RoleUser, RoleAssistant)
	}
	if strings.TrimSpace(m.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// IsFromUser reports whether the message was written by the user.
func (m *ChatMessage) IsFromUser() bool {
	return m.Role == RoleUser
}

// IsFromAssistant reports whether the message was written by the assistant.
func (m *ChatMessage) IsFromAssistant() bool {
	return m.Role == RoleAssistant
}
