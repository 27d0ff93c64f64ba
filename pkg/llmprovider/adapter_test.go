package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-orchestrator/config"
	"travel-orchestrator/pkg/groq"
)

func TestOpenAIAdapter_RoundTrip(t *testing.T) {
	var got groq.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{
			"model": "llama-3.1-8b-instant",
			"choices": [{"message": {"role": "assistant", "content": "", "tool_calls": [
				{"id": "x", "type": "function", "function": {"name": "get_weather", "arguments": "{\"city\":\"Sousse\"}"}}
			]}}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 2, "total_tokens": 5}
		}`))
	}))
	defer ts.Close()

	p, err := createProvider(context.Background(), config.ProviderConfig{
		Name:    "groq",
		APIKey:  "k",
		Model:   "llama-3.1-8b-instant",
		BaseURL: ts.URL,
	})
	require.NoError(t, err)
	assert.Equal(t, ProviderGroq, p.Name())

	resp, err := p.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "You are a travel manager."}}},
		Messages: []Message{
			{Role: RoleUser, Parts: []Part{{Text: "weather in Sousse"}}},
			{Role: RoleAssistant, Parts: []Part{{FunctionCall: &FunctionCall{Name: "get_weather", Args: map[string]interface{}{"city": "Sousse"}}}}},
			{Role: RoleTool, Parts: []Part{{FunctionResponse: &FunctionResponse{Name: "get_weather", Response: "sunny"}}}},
		},
		Tools:     []Tool{{Name: "get_weather", Description: "weather", Parameters: map[string]interface{}{"type": "object"}}},
		MaxTokens: 256,
	})
	require.NoError(t, err)

	require.Len(t, got.Messages, 4)
	assert.Equal(t, groq.RoleSystem, got.Messages[0].Role)
	assert.Equal(t, "You are a travel manager.", got.Messages[0].Content)
	assert.Equal(t, "weather in Sousse", got.Messages[1].Content)
	require.Len(t, got.Messages[2].ToolCalls, 1)
	assert.Equal(t, "call_get_weather_0", got.Messages[2].ToolCalls[0].ID)
	assert.Equal(t, groq.RoleTool, got.Messages[3].Role)
	assert.Equal(t, "call_get_weather_0", got.Messages[3].ToolCallID)
	assert.Equal(t, "sunny", got.Messages[3].Content)
	require.Len(t, got.Tools, 1)
	require.NotNil(t, got.Temperature)
	assert.Equal(t, 0.0, *got.Temperature)

	calls := resp.FunctionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Sousse", calls[0].Args["city"])
	assert.Equal(t, "x", calls[0].ID)
	assert.Equal(t, 5, resp.Usage.TotalTokens)
	assert.Equal(t, "groq", resp.ProviderName)
}

func TestOpenAIAdapter_RateLimited(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit reached"}}`))
	}))
	defer ts.Close()

	p, err := createProvider(context.Background(), config.ProviderConfig{
		Name: "openai", APIKey: "k", Model: "gpt-4o-mini", BaseURL: ts.URL,
	})
	require.NoError(t, err)

	_, err = p.GenerateContent(context.Background(), &Request{})
	assert.True(t, errors.Is(err, ErrProviderRateLimited))
}

func TestCreateProvider_Aliases(t *testing.T) {
	p, err := createProvider(context.Background(), config.ProviderConfig{Name: "Alibaba", APIKey: "k", Model: "qwen-plus"})
	require.NoError(t, err)
	assert.Equal(t, ProviderQwen, p.Name())
	assert.Equal(t, "qwen-plus", p.Model())

	p, err = createProvider(context.Background(), config.ProviderConfig{Name: "gemini", APIKey: "k", Model: "gemini-2.5-flash"})
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, p.Name())
}

func TestConvertToOpenAIMessages_RepeatedToolCalls(t *testing.T) {
	tests := []struct {
		name    string
		ids     [2]string
		wantIDs [2]string
	}{
		{name: "provider ids", ids: [2]string{"call_abc", "call_def"}, wantIDs: [2]string{"call_abc", "call_def"}},
		{name: "fallback ids", wantIDs: [2]string{"call_get_weather_0", "call_get_weather_1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := []Message{
				{Role: RoleAssistant, Parts: []Part{
					{FunctionCall: &FunctionCall{ID: tt.ids[0], Name: "get_weather", Args: map[string]any{"city": "Tunis"}}},
					{FunctionCall: &FunctionCall{ID: tt.ids[1], Name: "get_weather", Args: map[string]any{"city": "Sousse"}}},
				}},
				{Role: RoleTool, Parts: []Part{
					{FunctionResponse: &FunctionResponse{ID: tt.ids[0], Name: "get_weather", Response: "Tunis: sunny"}},
					{FunctionResponse: &FunctionResponse{ID: tt.ids[1], Name: "get_weather", Response: "Sousse: cloudy"}},
				}},
			}

			got := convertToOpenAIMessages(nil, msgs)

			require.Len(t, got, 3)
			require.Len(t, got[0].ToolCalls, 2)
			assert.Equal(t, tt.wantIDs[0], got[0].ToolCalls[0].ID)
			assert.Equal(t, tt.wantIDs[1], got[0].ToolCalls[1].ID)
			assert.NotEqual(t, got[0].ToolCalls[0].ID, got[0].ToolCalls[1].ID)

			assert.Equal(t, tt.wantIDs[0], got[1].ToolCallID)
			assert.Equal(t, "Tunis: sunny", got[1].Content)
			assert.Equal(t, tt.wantIDs[1], got[2].ToolCallID)
			assert.Equal(t, "Sousse: cloudy", got[2].Content)
		})
	}
}

func TestConvertFromOpenAIResponse_KeepsToolCallIDs(t *testing.T) {
	resp := &groq.Response{Choices: []groq.Choice{{Message: groq.Message{
		Role: groq.RoleAssistant,
		ToolCalls: []groq.ToolCall{
			{ID: "call_1", Type: "function", Function: groq.FunctionCall{Name: "get_weather", Arguments: `{"city":"Tunis"}`}},
			{ID: "call_2", Type: "function", Function: groq.FunctionCall{Name: "get_weather", Arguments: `{"city":"Sousse"}`}},
		},
	}}}}

	calls := convertFromOpenAIResponse(ProviderGroq, "llama", resp).FunctionCalls()

	require.Len(t, calls, 2)
	assert.Equal(t, "call_1", calls[0].ID)
	assert.Equal(t, "call_2", calls[1].ID)
	assert.Equal(t, "Sousse", calls[1].Args["city"])
}
