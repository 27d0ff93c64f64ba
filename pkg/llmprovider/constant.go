package llmprovider

// Provider names accepted in config
const (
	ProviderGroq     = "groq"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
	ProviderGemini   = "gemini"
)

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleTool      = "tool"
)

// openAICompatibleURLs maps OpenAI-compatible vendors to their endpoints.
var openAICompatibleURLs = map[string]string{
	ProviderGroq:     "https://api.groq.com/openai/v1",
	ProviderOpenAI:   "https://api.openai.com/v1",
	ProviderDeepSeek: "https://api.deepseek.com/v1",
	ProviderQwen:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}
