// File: internal/services/chat_service.go
package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dcastano/go-shopchat/internal/domain"
	"github.com/dcastano/go-shopchat/internal/dtos"
	"github.com/dcastano/go-shopchat/internal/repository/chatmemory"
	"github.com/dcastano/go-shopchat/internal/repository/product"
	"github.com/dcastano/go-shopchat/internal/services/ai"
	chatservice "github.com/dcastano/go-shopchat/internal/services/chat"
)

// ChatService orchestrates one chat exchange: persist the user turn, gather
// catalog and recent history concurrently, generate the reply, persist the
// assistant turn. No state survives a request beyond the two stores.
type ChatService struct {
	config      *chatservice.Config
	chatRepo    chatmemory.ChatRepository
	productRepo product.ProductRepository
	aiProvider  ai.ResponseProvider
	logger      Logger
}

func NewChatService(
	chatRepo chatmemory.ChatRepository,
	productRepo product.ProductRepository,
	aiProvider ai.ResponseProvider,
	historyWindow int,
	logger Logger,
) (*ChatService, error) {
	if chatRepo == nil {
		return nil, chatservice.NewValidationError("constructor", "chat repository is required")
	}
	if productRepo == nil {
		return nil, chatservice.NewValidationError("constructor", "product repository is required")
	}
	if aiProvider == nil {
		return nil, chatservice.NewValidationError("constructor", "AI provider is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	config := chatservice.DefaultConfig()
	if historyWindow > 0 {
		config.HistoryWindow = historyWindow
	}
	if err := config.Validate(); err != nil {
		return nil, &chatservice.ChatError{Type: chatservice.ErrTypeConfig, Operation: "config", Message: err.Error()}
	}

	return &ChatService{
		config:      config,
		chatRepo:    chatRepo,
		productRepo: productRepo,
		aiProvider:  aiProvider,
		logger:      logger,
	}, nil
}

// ProcessMessage runs the full exchange for one inbound user message.
//
// The user turn is persisted before generation and stays in the transcript
// even when generation later fails; there is deliberately no compensation
// for that partial state. Exactly one generation attempt is made.
func (s *ChatService) ProcessMessage(ctx context.Context, req dtos.ChatMessageRequest) (*dtos.ChatMessageResponse, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, chatservice.NewValidationError("process_message", "session_id cannot be empty")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, chatservice.NewValidationError("process_message", "message cannot be empty")
	}
	if len(req.Message) > s.config.MaxMessageChars {
		return nil, chatservice.NewValidationError("process_message", "message is too long")
	}

	userMessage, err := domain.NewChatMessage(req.SessionID, domain.RoleUser, req.Message)
	if err != nil {
		return nil, chatservice.NewValidationError("process_message", err.Error())
	}
	if _, err := s.chatRepo.Append(ctx, userMessage); err != nil {
		s.logger.Error("failed to persist user turn", "session_id", req.SessionID, "error", err)
		return nil, chatservice.NewPersistenceError("save_user_turn", "could not save user message", err)
	}

	// Catalog snapshot and recent history are independent reads; run them
	// concurrently and join before generation. Either failure aborts the
	// exchange: the generator never sees partial context.
	var (
		products []domain.Product
		recent   []domain.ChatMessage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.productRepo.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.chatRepo.FindRecent(gctx, req.SessionID, s.config.HistoryWindow)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("context gathering failed", "session_id", req.SessionID, "error", err)
		return nil, chatservice.NewPersistenceError("gather_context", "could not load chat context", err)
	}

	chatContext := domain.NewChatContextWithWindow(recent, s.config.HistoryWindow)

	assistantText, err := s.aiProvider.GenerateResponse(ctx, req.Message, products, chatContext)
	if err != nil {
		s.logger.Error("response generation failed", "session_id", req.SessionID, "error", err)
		return nil, chatservice.NewGenerationError("generate", "could not generate assistant response", err)
	}

	assistantMessage, err := domain.NewChatMessage(req.SessionID, domain.RoleAssistant, assistantText)
	if err != nil {
		return nil, chatservice.NewGenerationError("generate", "generator produced an invalid message", err)
	}
	if _, err := s.chatRepo.Append(ctx, assistantMessage); err != nil {
		s.logger.Error("failed to persist assistant turn", "session_id", req.SessionID, "error", err)
		return nil, chatservice.NewPersistenceError("save_assistant_turn", "could not save assistant message", err)
	}

	s.logger.Info("chat exchange completed",
		"session_id", req.SessionID,
		"history_size", len(recent),
		"catalog_size", len(products),
	)

	return &dtos.ChatMessageResponse{
		SessionID:        req.SessionID,
		UserMessage:      userMessage.Message,
		AssistantMessage: assistantMessage.Message,
		Timestamp:        assistantMessage.Timestamp,
	}, nil
}

// GetSessionHistory returns the full chronological transcript of a session.
func (s *ChatService) GetSessionHistory(ctx context.Context, sessionID string) ([]dtos.ChatHistoryEntry, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, chatservice.NewValidationError("get_history", "session_id cannot be empty")
	}

	messages, err := s.chatRepo.FindBySession(ctx, sessionID, 0)
	if err != nil {
		return nil, chatservice.NewPersistenceError("get_history", "could not read session history", err)
	}
	return dtos.HistoryFromDomain(messages), nil
}

// ClearSessionHistory purges a session transcript and reports how many
// messages were removed. Clearing an unknown session returns 0.
func (s *ChatService) ClearSessionHistory(ctx context.Context, sessionID string) (int64, error) {
	if strings.TrimSpace(sessionID) == "" {
		return 0, chatservice.NewValidationError("clear_history", "session_id cannot be empty")
	}

	deleted, err := s.chatRepo.PurgeSession(ctx, sessionID)
	if err != nil {
		return 0, chatservice.NewPersistenceError("clear_history", "could not purge session history", err)
	}
	return deleted, nil
}
