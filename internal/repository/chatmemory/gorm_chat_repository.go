// File: internal/repository/chatmemory/gorm_chat_repository.go
package chatmemory

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/dcastano/go-shopchat/internal/domain"
)

type gormChatRepository struct {
	db *gorm.DB
}

// NewChatRepository returns the gorm-backed transcript store.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &gormChatRepository{db: db}
}

func (r *gormChatRepository) Append(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	if message == nil {
		return nil, errors.New("message cannot be nil")
	}
	if err := message.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		log.Printf("[ChatRepository] Database error appending message for session %q: %v", message.SessionID, err)
		return nil, errors.New("database error saving chat message")
	}
	return message, nil
}

func (r *gormChatRepository) FindBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.New("invalid session ID")
	}

	query := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var messages []domain.ChatMessage
	if err := query.Find(&messages).Error; err != nil {
		log.Printf("[ChatRepository] Database error reading history for session %q: %v", sessionID, err)
		return nil, errors.New("database error reading chat history")
	}
	return messages, nil
}

// FindRecent takes the newest `count` rows and reverses them, so ties on
// the timestamp keep insertion order via the id tiebreaker.
func (r *gormChatRepository) FindRecent(ctx context.Context, sessionID string, count int) ([]domain.ChatMessage, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.New("invalid session ID")
	}
	if count <= 0 {
		return []domain.ChatMessage{}, nil
	}

	var messages []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp DESC, id DESC").
		Limit(count).
		Find(&messages).Error
	if err != nil {
		log.Printf("[ChatRepository] Database error reading recent messages for session %q: %v", sessionID, err)
		return nil, errors.New("database error reading recent messages")
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *gormChatRepository) PurgeSession(ctx context.Context, sessionID string) (int64, error) {
	if strings.TrimSpace(sessionID) == "" {
		return 0, errors.New("invalid session ID")
	}

	result := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&domain.ChatMessage{})
	if result.Error != nil {
		log.Printf("[ChatRepository] Database error purging session %q: %v", sessionID, result.Error)
		return 0, errors.New("database error purging session history")
	}

	if result.RowsAffected > 0 {
		log.Printf("[ChatRepository] Purged %d messages for session %q", result.RowsAffected, sessionID)
	}
	return result.RowsAffected, nil
}
