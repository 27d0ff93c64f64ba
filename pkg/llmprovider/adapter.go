package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"travel-orchestrator/pkg/gemini"
	"travel-orchestrator/pkg/groq"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Tools:             convertToGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	geminiTools := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		geminiTools[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return geminiTools
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// OpenAIAdapter adapts pkg/groq to llmprovider.Provider interface. The same
// client serves every OpenAI-compatible vendor; name tells them apart.
type OpenAIAdapter struct {
	name   string
	client groq.IGroq
}

// NewOpenAIAdapter creates a new adapter reporting the given provider name
func NewOpenAIAdapter(name string, client groq.IGroq) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	temperature := req.Temperature
	groqReq := &groq.Request{
		Messages:    convertToOpenAIMessages(req.SystemInstruction, req.Messages),
		Temperature: &temperature,
		MaxTokens:   req.MaxTokens,
	}
	if len(req.Tools) > 0 {
		groqReq.Tools = convertToOpenAITools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		var apiErr *groq.APIError
		if errors.As(err, &apiErr) && apiErr.RateLimited() {
			return nil, fmt.Errorf("%s: %w: %v", a.name, ErrProviderRateLimited, err)
		}
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	return convertFromOpenAIResponse(a.name, a.client.Model(), resp), nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// toolCallID returns the provider-assigned ID, or call_<name>_<i> where i is
// the position of the call (or response) within its message. Calls and their
// responses are emitted in the same order, so the fallback IDs pair up.
func toolCallID(id, name string, i int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("call_%s_%d", name, i)
}

// Conversion helpers for OpenAI-compatible APIs
func convertToOpenAIMessages(system *Message, msgs []Message) []groq.Message {
	messages := make([]groq.Message, 0, len(msgs)+1)

	if system != nil {
		if text := joinText(system.Parts); text != "" {
			messages = append(messages, groq.Message{Role: groq.RoleSystem, Content: text})
		}
	}

	for _, msg := range msgs {
		var text strings.Builder
		var calls []groq.ToolCall
		responses := 0

		for _, p := range msg.Parts {
			switch {
			case p.FunctionResponse != nil:
				messages = append(messages, groq.Message{
					Role:       groq.RoleTool,
					Name:       p.FunctionResponse.Name,
					ToolCallID: toolCallID(p.FunctionResponse.ID, p.FunctionResponse.Name, responses),
					Content:    toolResult(p.FunctionResponse.Response),
				})
				responses++
			case p.FunctionCall != nil:
				argsJSON, _ := json.Marshal(p.FunctionCall.Args)
				calls = append(calls, groq.ToolCall{
					ID:   toolCallID(p.FunctionCall.ID, p.FunctionCall.Name, len(calls)),
					Type: "function",
					Function: groq.FunctionCall{
						Name:      p.FunctionCall.Name,
						Arguments: string(argsJSON),
					},
				})
			default:
				text.WriteString(p.Text)
			}
		}

		if text.Len() == 0 && len(calls) == 0 {
			continue
		}
		role := msg.Role
		if role == "" {
			role = RoleUser
		}
		messages = append(messages, groq.Message{Role: role, Content: text.String(), ToolCalls: calls})
	}
	return messages
}

func toolResult(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func joinText(parts []Part) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

func convertToOpenAITools(tools []Tool) []groq.Tool {
	out := make([]groq.Tool, len(tools))
	for i, t := range tools {
		out[i] = groq.Tool{
			Type: "function",
			Function: groq.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func convertFromOpenAIResponse(name, model string, resp *groq.Response) *Response {
	out := &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{}},
		ProviderName: name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if resp.Model != "" {
		out.ModelName = resp.Model
	}
	if len(resp.Choices) == 0 {
		return out
	}

	choice := resp.Choices[0]
	if choice.Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: choice.Message.Content})
	}
	for _, tc := range choice.Message.ToolCalls {
		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			args = map[string]any{}
		}
		out.Content.Parts = append(out.Content.Parts, Part{
			FunctionCall: &FunctionCall{ID: tc.ID, Name: tc.Function.Name, Args: args},
		})
	}
	return out
}
