package travel

import "errors"

var (
	ErrMissingConversation = errors.New("conversation_input is required")
	ErrRequestCanceled     = errors.New("request canceled")
)
