// File: internal/domain/context.go
package domain

import "strings"

// DefaultContextWindow is the number of recent messages handed to the
// response generator when no explicit window is configured.
const DefaultContextWindow = 6

// ChatContext is a read-only view over an already persisted transcript,
// built fresh per request and discarded afterwards. It keeps the full
// supplied sequence and derives the bounded window lazily, so a caller can
// inspect the complete history and render a bounded prompt from one fetch.
type ChatContext struct {
	Messages    []ChatMessage
	MaxMessages int
}

// NewChatContext wraps messages (chronological, oldest first) with the
// default window size.
func NewChatContext(messages []ChatMessage) *ChatContext {
	return NewChatContextWithWindow(messages, DefaultContextWindow)
}

// NewChatContextWithWindow wraps messages with an explicit window size.
func NewChatContextWithWindow(messages []ChatMessage, maxMessages int) *ChatContext {
	if maxMessages <= 0 {
		maxMessages = DefaultContextWindow
	}
	return &ChatContext{Messages: messages, MaxMessages: maxMessages}
}

// RecentMessages returns the suffix of at most MaxMessages messages,
// preserving chronological order.
func (c *ChatContext) RecentMessages() []ChatMessage {
	if len(c.Messages) <= c.MaxMessages {
		return c.Messages
	}
	return c.Messages[len(c.Messages)-c.MaxMessages:]
}

// FormatForPrompt renders the recent window as alternating
// "Usuario:"/"Asistente:" lines for the generator prompt. An empty window
// renders as the empty string, with no trailing newline otherwise.
func (c *ChatContext) FormatForPrompt() string {
	recent := c.RecentMessages()
	if len(recent) == 0 {
		return ""
	}
	lines := make([]string, 0, len(recent))
	for _, msg := range recent {
		label := "Asistente"
		if msg.IsFromUser() {
			label = "Usuario"
		}
		lines = append(lines, label+": "+msg.Message)
	}
	return strings.Join(lines, "\n")
}
