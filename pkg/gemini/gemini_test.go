package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
	resp        *genai.GenerateContentResponse
	err         error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotContents = contents
	f.gotConfig = config
	return f.resp, f.err
}

func newTestClient(f *fakeModels) *geminiImpl {
	cfg := Config{APIKey: "k"}
	_ = cfg.Validate()
	return newGeminiImpl(cfg, f)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg = Config{APIKey: "k"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestGenerateContent_RequestMapping(t *testing.T) {
	f := &fakeModels{resp: &genai.GenerateContentResponse{}}
	g := newTestClient(f)

	_, err := g.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Content{Parts: []Part{{Text: "be brief"}}},
		Messages: []Content{
			{Role: "user", Parts: []Part{{Text: "weather in Sousse?"}}},
			{Role: "assistant", Parts: []Part{{FunctionCall: &FunctionCall{Name: "get_weather", Args: map[string]any{"city": "Sousse"}}}}},
			{Role: "tool", Parts: []Part{{FunctionResponse: &FunctionResponse{Name: "get_weather", Response: "sunny"}}}},
		},
		Tools: []Tool{{
			Name:        "get_weather",
			Description: "weather",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{"city": map[string]any{"type": "string"}},
				"required":   []string{"city"},
			},
		}},
		MaxTokens: 256,
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, f.gotModel)
	require.Len(t, f.gotContents, 3)
	assert.Equal(t, "user", f.gotContents[0].Role)
	assert.Equal(t, "model", f.gotContents[1].Role)
	assert.Equal(t, "get_weather", f.gotContents[1].Parts[0].FunctionCall.Name)
	assert.Equal(t, "user", f.gotContents[2].Role)
	assert.Equal(t, map[string]any{"result": "sunny"}, f.gotContents[2].Parts[0].FunctionResponse.Response)

	require.NotNil(t, f.gotConfig.Temperature)
	assert.Equal(t, float32(0), *f.gotConfig.Temperature)
	assert.Equal(t, int32(256), f.gotConfig.MaxOutputTokens)
	assert.Equal(t, "be brief", f.gotConfig.SystemInstruction.Parts[0].Text)

	require.Len(t, f.gotConfig.Tools, 1)
	decl := f.gotConfig.Tools[0].FunctionDeclarations[0]
	assert.Equal(t, genai.TypeObject, decl.Parameters.Type)
	assert.Equal(t, genai.TypeString, decl.Parameters.Properties["city"].Type)
	assert.Equal(t, []string{"city"}, decl.Parameters.Required)
}

func TestGenerateContent_ResponseMapping(t *testing.T) {
	f := &fakeModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{
				{Text: `{"intent":"plan"}`},
				nil,
				{FunctionCall: &genai.FunctionCall{Name: "find_hotel", Args: map[string]any{"city": "Tunis"}}},
			}},
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     10,
			CandidatesTokenCount: 4,
			TotalTokenCount:      14,
		},
	}}
	g := newTestClient(f)

	resp, err := g.GenerateContent(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, "assistant", resp.Content.Role)
	require.Len(t, resp.Content.Parts, 2)
	assert.Equal(t, `{"intent":"plan"}`, resp.Content.Parts[0].Text)
	assert.Equal(t, "find_hotel", resp.Content.Parts[1].FunctionCall.Name)
	assert.Equal(t, 14, resp.Usage.TotalTokens)
}

func TestGenerateContent_EmptyAndError(t *testing.T) {
	g := newTestClient(&fakeModels{resp: &genai.GenerateContentResponse{}})
	resp, err := g.GenerateContent(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Empty(t, resp.Content.Parts)
	assert.NotNil(t, resp.Usage)

	g = newTestClient(&fakeModels{err: errors.New("boom")})
	_, err = g.GenerateContent(context.Background(), &Request{})
	assert.ErrorContains(t, err, "boom")
}
