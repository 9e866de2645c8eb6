// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dcastano/go-shopchat/internal/domain"
)

// OpenAIProvider generates assistant replies through any OpenAI-compatible
// completion endpoint.
type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, NewConfigError(err.Error())
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

// GenerateResponse builds the sales prompt and requests a single completion.
// The call carries its own timeout; no retries are attempted here.
func (p *OpenAIProvider) GenerateResponse(
	ctx context.Context,
	userMessage string,
	products []domain.Product,
	chatContext *domain.ChatContext,
) (string, error) {
	prompt := BuildPrompt(userMessage, products, chatContext)

	callCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: p.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: p.config.Temperature,
		TopP:        p.config.TopP,
	})
	if err != nil {
		return "", NewProviderError("completion", "failed to create completion", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return FallbackReply, nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) GetStatus(ctx context.Context) ProviderStatus {
	return ProviderStatus{
		IsHealthy: true,
		Model:     p.config.Model,
		Message:   "OpenAI-compatible provider configured",
	}
}
