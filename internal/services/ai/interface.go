// File: internal/services/ai/interface.go
package ai

import (
	"context"

	"github.com/dcastano/go-shopchat/internal/domain"
)

// ResponseProvider is the opaque generative-text boundary. Implementations
// receive the raw user message, the current catalog snapshot and the
// assembled conversation context, and return the assistant reply text.
// Every provider-side failure surfaces as a single *AIError; callers never
// inspect provider-specific error shapes.
type ResponseProvider interface {
	GenerateResponse(ctx context.Context, userMessage string, products []domain.Product, chatContext *domain.ChatContext) (string, error)
}

// ProviderStatus reports provider health for diagnostics.
type ProviderStatus struct {
	IsHealthy bool   `json:"is_healthy"`
	Model     string `json:"model"`
	Message   string `json:"message"`
}
