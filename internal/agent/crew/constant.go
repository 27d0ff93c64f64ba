package crew

// Log prefixes
const (
	LogPrefixRun = "internal.agent.crew.Run"
)

// Prompt placeholders
const (
	PlaceholderConversation = "{conversation}"
	PlaceholderIntent       = "{intent}"
	PlaceholderParams       = "{params}"
	PlaceholderTimeContext  = "{time_context}"
)

// Time context template
const (
	TimeContextTemplate = `Reference dates (%s):
- Today: %s (%s)
- Tomorrow: %s
- This week: %s to %s
- Next weekend: %s to %s
Resolve relative dates ("tomorrow", "this weekend") with these values and never ask the user for a date.`
)

// Instructions appended to the conversation
const (
	FinalAnswerInstruction = "You have used all your steps. Give your final answer now as the JSON object described above, without calling any tool."
	UnknownIntent          = "none (infer it from the conversation)"
)

// Error messages
const (
	ErrMsgAgentLLMError    = "agent LLM error at step %d"
	ErrMsgToolNotFound     = "tool not found"
	ErrMsgEmptyLLMResponse = "empty LLM response"
)

// Log messages
const (
	LogMsgAgentStep          = "Agent step %d/%d"
	LogMsgAgentFinished      = "Agent finished at step %d"
	LogMsgAgentCallingTool   = "Agent calling tool: %s with args: %+v"
	LogMsgToolExecutionError = "Tool %s failed: %v"
	LogMsgForcedFinalAnswer  = "Agent out of steps (%d), forcing final answer"
)

// Defaults
const (
	DefaultMaxIterations = 1
	DefaultMaxTokens     = 256
	DefaultTimezone      = "Africa/Tunis"
)
