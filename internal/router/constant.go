package router

// Log prefixes
const (
	LogPrefixRoute    = "internal.router.Route"
	LogPrefixFallback = "internal.router.fallback"
	LogPrefixHandler  = "internal.router.handle"
)

// Info codes
const (
	InfoNoTrigger  = "no_trigger_detected"
	InfoStaticMode = "static_mode"
)

// Error codes
const (
	ErrCodeAgentFailed   = "agent_failed"
	ErrCodeHandlerFailed = "handler_failed"
	ErrCodeInvalidInput  = "invalid_input"
)

// MaxDetailChars bounds the details of an error envelope. The tail is kept.
const MaxDetailChars = 2000

// Handler defaults
const (
	DefaultCity      = "Tunis"
	DefaultPlaceType = "restaurant"

	// NoteRangeTruncated is set in notes when a date range exceeds the cap.
	NoteRangeTruncated = "Date range truncated to %d days (%s to %s)"
)
