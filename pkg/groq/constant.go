package groq

import "time"

const (
	// DefaultBaseURL is the Groq OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama-3.1-8b-instant"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
)

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)
