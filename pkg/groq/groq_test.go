package groq_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-orchestrator/pkg/groq"
)

func TestNew_Validation(t *testing.T) {
	_, err := groq.New(groq.Config{})
	assert.ErrorIs(t, err, groq.ErrMissingAPIKey)

	c, err := groq.New(groq.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, groq.DefaultModel, c.Model())
}

func TestClient_GenerateContent(t *testing.T) {
	var got groq.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "llama-3.1-8b-instant",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"intent\":\"weather\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
		}`))
	}))
	defer ts.Close()

	c, err := groq.New(groq.Config{APIKey: "test-key", BaseURL: ts.URL + "/openai/v1/"})
	require.NoError(t, err)

	temp := 0.0
	resp, err := c.GenerateContent(context.Background(), &groq.Request{
		Messages:    []groq.Message{{Role: groq.RoleUser, Content: "hi"}},
		Temperature: &temp,
		MaxTokens:   256,
	})
	require.NoError(t, err)

	assert.Equal(t, groq.DefaultModel, got.Model)
	require.NotNil(t, got.Temperature)
	assert.Equal(t, 0.0, *got.Temperature)
	assert.Equal(t, 256, got.MaxTokens)

	require.Len(t, resp.Choices, 1)
	assert.Equal(t, `{"intent":"weather"}`, resp.Choices[0].Message.Content)
	assert.Equal(t, 17, resp.Usage.TotalTokens)
}

func TestClient_APIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		rateLimited bool
	}{
		{"structured", http.StatusTooManyRequests, `{"error":{"message":"slow down","type":"rate_limit"}}`, "slow down", true},
		{"plain", http.StatusInternalServerError, "upstream exploded", "upstream exploded", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			c, err := groq.New(groq.Config{APIKey: "k", BaseURL: ts.URL})
			require.NoError(t, err)

			_, err = c.GenerateContent(context.Background(), &groq.Request{})
			var apiErr *groq.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.wantMessage, apiErr.Message)
			assert.Equal(t, tc.rateLimited, apiErr.RateLimited())
		})
	}
}
