// File: internal/repository/chatmemory/interface.go
package chatmemory

import (
	"context"

	"github.com/dcastano/go-shopchat/internal/domain"
)

// ChatRepository is the persistence contract for the append-only per-session
// transcript. Both read methods return chronological ascending order and an
// empty slice (not an error) for a session with no messages.
type ChatRepository interface {
	// Append assigns an identity, persists the message and returns the
	// stored row. It never silently drops a message.
	Append(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)

	// FindBySession returns the session transcript oldest first. A positive
	// limit caps the result to the earliest `limit` messages; callers that
	// need the newest window must use FindRecent.
	FindBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error)

	// FindRecent returns at most `count` of the newest messages, reordered
	// oldest first.
	FindRecent(ctx context.Context, sessionID string, count int) ([]domain.ChatMessage, error)

	// PurgeSession deletes every message of the session and returns the
	// number removed. Purging an empty session returns 0.
	PurgeSession(ctx context.Context, sessionID string) (int64, error)
}
