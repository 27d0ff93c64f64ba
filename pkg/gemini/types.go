package gemini

import (
	"errors"
	"time"
)

var ErrMissingAPIKey = errors.New("gemini: APIKey is required")

// Config holds Gemini client configuration
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Validate fills defaults and checks required fields
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// geminiImpl is the internal implementation of IGemini
type geminiImpl struct {
	model   string
	timeout time.Duration
	models  generator
}

// Request represents a Gemini generation request
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

// Content represents a message content.
// Roles are "user", "assistant" and "tool".
type Content struct {
	Role  string
	Parts []Part
}

// Part represents a message part
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool represents a function declaration with a JSON Schema for its parameters
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// FunctionCall represents a function call request
type FunctionCall struct {
	Name string
	Args map[string]any
}

// FunctionResponse represents a function execution result
type FunctionResponse struct {
	Name     string
	Response any
}

// Response represents a Gemini generation response
type Response struct {
	Content Content
	Usage   *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
