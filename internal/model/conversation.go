package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConversationInput is returned when conversation_input is
// neither a string nor a list of messages.
var ErrInvalidConversationInput = errors.New("invalid conversation_input format")

// Message is a single chat message.
type Message struct {
	Sender    string  `json:"sender"`
	Content   string  `json:"content"`
	Timestamp *string `json:"timestamp,omitempty"`
}

// ConversationInput is either raw text or an ordered list of messages.
// IsList tells the two apart; the zero value is empty text.
type ConversationInput struct {
	Text     string
	Messages []Message
	IsList   bool
}

// NewTextInput wraps raw text.
func NewTextInput(text string) ConversationInput {
	return ConversationInput{Text: text}
}

// NewMessagesInput wraps a message list.
func NewMessagesInput(msgs []Message) ConversationInput {
	return ConversationInput{Messages: msgs, IsList: true}
}

// UnmarshalJSON accepts a JSON string or an array of message objects.
func (c *ConversationInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidConversationInput
	}

	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConversationInput, err)
		}
		*c = NewTextInput(text)
		return nil

	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConversationInput, err)
		}
		msgs := make([]Message, 0, len(raw))
		for i, item := range raw {
			msg, err := decodeMessage(item)
			if err != nil {
				return fmt.Errorf("%w: message %d: %v", ErrInvalidConversationInput, i, err)
			}
			msgs = append(msgs, msg)
		}
		*c = NewMessagesInput(msgs)
		return nil

	default:
		return ErrInvalidConversationInput
	}
}

// MarshalJSON writes the input back in the shape it arrived in.
func (c ConversationInput) MarshalJSON() ([]byte, error) {
	if c.IsList {
		return json.Marshal(c.Messages)
	}
	return json.Marshal(c.Text)
}

func decodeMessage(data json.RawMessage) (Message, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return Message{}, errors.New("not an object")
	}

	var msg Message
	for _, key := range []string{"sender", "content"} {
		raw, ok := fields[key]
		if !ok {
			return Message{}, fmt.Errorf("missing %q", key)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Message{}, fmt.Errorf("%q must be a string", key)
		}
		if key == "sender" {
			msg.Sender = s
		} else {
			msg.Content = s
		}
	}

	if raw, ok := fields["timestamp"]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		var ts string
		if err := json.Unmarshal(raw, &ts); err != nil {
			return Message{}, errors.New(`"timestamp" must be a string`)
		}
		msg.Timestamp = &ts
	}

	return msg, nil
}

// Flatten renders the input as a single text blob, one "sender: content"
// line per message.
func (c ConversationInput) Flatten() string {
	if !c.IsList {
		return c.Text
	}
	lines := make([]string, len(c.Messages))
	for i, m := range c.Messages {
		lines[i] = m.Sender + ": " + m.Content
	}
	return strings.Join(lines, "\n")
}

// Contents returns the message contents, or the raw text as one entry.
func (c ConversationInput) Contents() []string {
	if !c.IsList {
		return []string{c.Text}
	}
	out := make([]string, len(c.Messages))
	for i, m := range c.Messages {
		out[i] = m.Content
	}
	return out
}
