package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

func newGeminiImpl(cfg Config, models generator) *geminiImpl {
	return &geminiImpl{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		models:  models,
	}
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.models.GenerateContent(ctx, g.model, toContents(req.Messages), toConfig(req))
	if err != nil {
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("gemini: API error %d: %w", apiErr.Code, err)
		}
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	return fromResponse(resp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func toConfig(req *Request) *genai.GenerateContentConfig {
	temperature := float32(req.Temperature)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
	}

	if req.SystemInstruction != nil {
		cfg.SystemInstruction = &genai.Content{Parts: toParts(req.SystemInstruction.Parts)}
	}

	if len(req.Tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, len(req.Tools))
		for i, t := range req.Tools {
			decls[i] = &genai.FunctionDeclaration{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  toSchema(t.Parameters),
			}
		}
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	return cfg
}

func toContents(msgs []Content) []*genai.Content {
	contents := make([]*genai.Content, 0, len(msgs))
	for _, msg := range msgs {
		contents = append(contents, &genai.Content{
			Role:  toRole(msg.Role),
			Parts: toParts(msg.Parts),
		})
	}
	return contents
}

func toRole(role string) string {
	if role == roleAssistant {
		return string(genai.RoleModel)
	}
	return string(genai.RoleUser)
}

func toParts(parts []Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		switch {
		case p.FunctionCall != nil:
			out = append(out, &genai.Part{FunctionCall: &genai.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}})
		case p.FunctionResponse != nil:
			out = append(out, &genai.Part{FunctionResponse: &genai.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: toResponseMap(p.FunctionResponse.Response),
			}})
		default:
			out = append(out, &genai.Part{Text: p.Text})
		}
	}
	return out
}

// toResponseMap wraps non-object tool results under "result".
func toResponseMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{"result": v}
}

// toSchema converts a JSON Schema object into a genai schema.
func toSchema(m map[string]any) *genai.Schema {
	if len(m) == 0 {
		return nil
	}

	s := &genai.Schema{}
	if t, ok := m["type"].(string); ok {
		s.Type = genai.Type(strings.ToUpper(t))
	}
	if d, ok := m["description"].(string); ok {
		s.Description = d
	}
	if props, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if prop, ok := raw.(map[string]any); ok {
				s.Properties[name] = toSchema(prop)
			}
		}
	}
	if items, ok := m["items"].(map[string]any); ok {
		s.Items = toSchema(items)
	}
	s.Required = stringSlice(m["required"])
	s.Enum = stringSlice(m["enum"])
	return s
}

func stringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func fromResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{
		Content: Content{Role: roleAssistant},
		Usage:   &Usage{},
	}
	if resp == nil {
		return out
	}

	if u := resp.UsageMetadata; u != nil {
		out.Usage = &Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return out
	}

	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil {
			continue
		}
		switch {
		case p.FunctionCall != nil:
			out.Content.Parts = append(out.Content.Parts, Part{FunctionCall: &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}})
		case p.Text != "":
			out.Content.Parts = append(out.Content.Parts, Part{Text: p.Text})
		}
	}
	return out
}
