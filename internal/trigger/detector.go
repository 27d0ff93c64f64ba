package trigger

import "travel-orchestrator/internal/model"

// Contains reports whether text contains a trigger word.
func (d *Detector) Contains(text string) bool {
	return d.pattern.MatchString(text)
}

// ContainsAny reports whether any message content contains a trigger word.
// Senders are not inspected.
func (d *Detector) ContainsAny(msgs []model.Message) bool {
	for _, m := range msgs {
		if d.Contains(m.Content) {
			return true
		}
	}
	return false
}

// Detect accepts the loosely typed shapes a conversation arrives in:
// a string, a model.ConversationInput, a []model.Message, or a decoded
// JSON list of {"content": ...} objects. Anything else is ErrInvalidInput.
func (d *Detector) Detect(input any) (bool, error) {
	switch v := input.(type) {
	case string:
		return d.Contains(v), nil
	case model.ConversationInput:
		if v.IsList {
			return d.ContainsAny(v.Messages), nil
		}
		return d.Contains(v.Text), nil
	case []model.Message:
		return d.ContainsAny(v), nil
	case []map[string]string:
		for _, m := range v {
			if d.Contains(m["content"]) {
				return true, nil
			}
		}
		return false, nil
	case []any:
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return false, ErrInvalidInput
			}
			content, _ := m["content"].(string)
			if d.Contains(content) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, ErrInvalidInput
	}
}
