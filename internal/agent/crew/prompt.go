package crew

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_prompts.yaml
var defaultPromptsYAML []byte

var ErrIncompletePrompts = errors.New("prompts are incomplete")

// AgentPrompt describes the agent persona.
type AgentPrompt struct {
	Role      string `yaml:"role"`
	Goal      string `yaml:"goal"`
	Backstory string `yaml:"backstory"`
}

// TaskPrompt describes the task handed to the agent.
type TaskPrompt struct {
	Description    string `yaml:"description"`
	ExpectedOutput string `yaml:"expected_output"`
}

// Prompts is the prompt file layout.
type Prompts struct {
	Agent AgentPrompt `yaml:"travel_manager"`
	Task  TaskPrompt  `yaml:"travel_manager_task"`
}

// DefaultPrompts returns the built-in prompts.
func DefaultPrompts() Prompts {
	var p Prompts
	// The embedded file is part of the binary; a decode failure is a build defect.
	if err := yaml.Unmarshal(defaultPromptsYAML, &p); err != nil {
		panic(fmt.Sprintf("crew: invalid embedded prompts: %v", err))
	}
	return p
}

// LoadPrompts reads prompts from a YAML file. Missing fields keep their
// built-in values. An empty path returns the defaults.
func LoadPrompts(path string) (Prompts, error) {
	p := DefaultPrompts()
	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Prompts{}, fmt.Errorf("read prompts %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Prompts{}, fmt.Errorf("parse prompts %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Prompts{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks that the fields the agent needs are present.
func (p Prompts) Validate() error {
	if strings.TrimSpace(p.Agent.Role) == "" {
		return fmt.Errorf("%w: travel_manager.role", ErrIncompletePrompts)
	}
	if !strings.Contains(p.Task.Description, PlaceholderConversation) {
		return fmt.Errorf("%w: travel_manager_task.description has no %s", ErrIncompletePrompts, PlaceholderConversation)
	}
	return nil
}

// SystemInstruction renders the persona and expected output.
func (p Prompts) SystemInstruction() string {
	var sb strings.Builder
	sb.WriteString("You are a ")
	sb.WriteString(strings.TrimSpace(p.Agent.Role))
	sb.WriteString(".\nYour goal: ")
	sb.WriteString(strings.TrimSpace(p.Agent.Goal))
	if bs := strings.TrimSpace(p.Agent.Backstory); bs != "" {
		sb.WriteString("\n")
		sb.WriteString(bs)
	}
	if out := strings.TrimSpace(p.Task.ExpectedOutput); out != "" {
		sb.WriteString("\n\nExpected output:\n")
		sb.WriteString(out)
	}
	return sb.String()
}

// TaskDescription fills the task placeholders.
func (p Prompts) TaskDescription(conversation, intent string, params map[string]any, timeContext string) string {
	if intent == "" {
		intent = UnknownIntent
	}
	paramsJSON := "{}"
	if len(params) > 0 {
		if b, err := json.Marshal(params); err == nil {
			paramsJSON = string(b)
		}
	}

	return strings.NewReplacer(
		PlaceholderConversation, conversation,
		PlaceholderIntent, intent,
		PlaceholderParams, paramsJSON,
		PlaceholderTimeContext, timeContext,
	).Replace(p.Task.Description)
}
