// File: internal/services/ai/openai_provider_test.go
package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCompletionServer fakes an OpenAI-compatible completion endpoint.
func newCompletionServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestProvider(t *testing.T, baseURL string) *OpenAIProvider {
	t.Helper()
	provider, err := NewOpenAIProvider(&Config{
		APIKey:  "test-key",
		BaseURL: baseURL + "/v1",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return provider
}

func completionWith(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		ID:     "cmpl-1",
		Object: "chat.completion",
		Choices: []openai.ChatCompletionChoice{
			{
				Index:        0,
				Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
				FinishReason: openai.FinishReasonStop,
			},
		},
	}
}

func TestGenerateResponse_ReturnsCompletionContent(t *testing.T) {
	server := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		if assert.Len(t, req.Messages, 1) {
			assert.Contains(t, req.Messages[0].Content, "Hola, busco zapatos")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionWith("Claro, tenemos varias opciones."))
	})
	provider := newTestProvider(t, server.URL)

	reply, err := provider.GenerateResponse(context.Background(), "Hola, busco zapatos", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Claro, tenemos varias opciones.", reply)
}

func TestGenerateResponse_EmptyPayloadFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		response openai.ChatCompletionResponse
	}{
		{"no choices", openai.ChatCompletionResponse{ID: "cmpl-1", Object: "chat.completion"}},
		{"blank content", completionWith("   \n\t")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newCompletionServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(tt.response)
			})
			provider := newTestProvider(t, server.URL)

			// A successful call with nothing usable in it is not an error;
			// the caller gets the fixed apology instead.
			reply, err := provider.GenerateResponse(context.Background(), "Hola", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, FallbackReply, reply)
		})
	}
}

func TestGenerateResponse_ProviderFailureIsSingleErrorShape(t *testing.T) {
	server := newCompletionServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
	})
	provider := newTestProvider(t, server.URL)

	reply, err := provider.GenerateResponse(context.Background(), "Hola", nil, nil)
	assert.Empty(t, reply)

	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ErrTypeProvider, aiErr.Type)
	assert.Equal(t, "completion", aiErr.Operation)
	assert.Error(t, aiErr.Cause)
}

func TestNewOpenAIProvider_RejectsInvalidConfig(t *testing.T) {
	_, err := NewOpenAIProvider(&Config{Model: "gpt-4o-mini", Timeout: time.Second})

	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ErrTypeConfig, aiErr.Type)
}

func TestGetStatus_ReportsConfiguredModel(t *testing.T) {
	server := newCompletionServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	provider := newTestProvider(t, server.URL)

	status := provider.GetStatus(context.Background())
	assert.True(t, status.IsHealthy)
	assert.Equal(t, "gpt-4o-mini", status.Model)
}
