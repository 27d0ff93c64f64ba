package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Travel orchestration specifics
	Router  RouterConfig
	Trigger TriggerConfig
	Agent   AgentConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string `validate:"required"`
}

type HTTPServerConfig struct {
	Port            int    `validate:"required,min=1,max=65535"`
	Mode            string `validate:"required,oneof=debug release test"`
	RateLimitPerMin int    `validate:"min=0"`
}

type LoggerConfig struct {
	Level        string `validate:"omitempty,oneof=debug info warn error"`
	Mode         string
	Encoding     string `validate:"omitempty,oneof=console json"`
	ColorEnabled bool
}

// RouterConfig controls the intent router.
// Mode "static" never calls the agent backend; "dynamic" does.
type RouterConfig struct {
	Mode        string `validate:"required,oneof=static dynamic"`
	DefaultCity string `validate:"required"`
}

type TriggerConfig struct {
	Words []string `validate:"required,min=1,dive,required"`
}

// AgentConfig configures the LLM travel agent used on the fallback path.
type AgentConfig struct {
	PromptsPath   string
	MaxIterations int     `validate:"min=1,max=10"`
	Timezone      string  `validate:"required"`
	Temperature   float64 `validate:"min=0,max=2"`
	MaxTokens     int     `validate:"min=0"`
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts" validate:"min=1"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name" validate:"required"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model" validate:"required"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Router
	cfg.Router.Mode = strings.ToLower(viper.GetString("router.mode"))
	// Legacy deployments toggle the agent with TRAVEL_AGENT_MODE.
	if legacyMode := os.Getenv("TRAVEL_AGENT_MODE"); legacyMode != "" {
		cfg.Router.Mode = strings.ToLower(legacyMode)
	}
	cfg.Router.DefaultCity = viper.GetString("router.default_city")

	// Trigger words: list in YAML, comma separated in env
	cfg.Trigger.Words = splitList(viper.Get("trigger.words"))

	// Agent
	cfg.Agent.PromptsPath = viper.GetString("agent.prompts_path")
	cfg.Agent.MaxIterations = viper.GetInt("agent.max_iterations")
	cfg.Agent.Timezone = viper.GetString("agent.timezone")
	cfg.Agent.Temperature = viper.GetFloat64("agent.temperature")
	cfg.Agent.MaxTokens = viper.GetInt("agent.max_tokens")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Single-key shortcut used by the original deployment
	if len(cfg.LLM.Providers) == 0 {
		if groqKey := viper.GetString("groq_api_key"); groqKey != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "groq",
				Enabled:  true,
				Priority: 1,
				APIKey:   groqKey,
				Model:    viper.GetString("groq_model"),
			})
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Router defaults
	viper.SetDefault("router.mode", "static")
	viper.SetDefault("router.default_city", "Tunis")
	viper.SetDefault("trigger.words", []string{"ai_agent", "walid_travel", "GoAround"})

	// Agent defaults
	viper.SetDefault("agent.prompts_path", "")
	viper.SetDefault("agent.max_iterations", 1)
	viper.SetDefault("agent.timezone", "Africa/Tunis")
	viper.SetDefault("agent.temperature", 0.0)
	viper.SetDefault("agent.max_tokens", 256)
	viper.SetDefault("groq_model", "llama-3.1-8b-instant")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// splitList accepts a YAML list or a comma separated string.
func splitList(raw interface{}) []string {
	var items []string
	switch v := raw.(type) {
	case []string:
		items = v
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	case string:
		items = strings.Split(v, ",")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
