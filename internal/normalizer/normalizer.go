// Package normalizer turns agent backend output into the response envelope.
// It never fails: anything it cannot read yields the canonical empty
// envelope.
package normalizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"travel-orchestrator/internal/model"
)

// Normalize parses text that may hold a JSON envelope wrapped in markdown
// fences and surrounding prose.
func Normalize(text string) model.Envelope {
	return normalizeText(text, 0)
}

// NormalizeAny accepts whatever the agent backend produced: text, bytes,
// a decoded JSON object, an envelope, or a fmt.Stringer.
func NormalizeAny(v any) model.Envelope {
	switch t := v.(type) {
	case nil:
		return model.NewEnvelope()
	case string:
		return Normalize(t)
	case []byte:
		return Normalize(string(t))
	case model.Envelope:
		return t
	case *model.Envelope:
		if t == nil {
			return model.NewEnvelope()
		}
		return *t
	case map[string]any:
		return normalizeObject(t, 0)
	case fmt.Stringer:
		return Normalize(t.String())
	default:
		return model.NewEnvelope()
	}
}

// StripFences removes a leading ```lang marker and a trailing ``` marker.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = mdOpenRe.ReplaceAllString(s, "")
	s = mdCloseRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ExtractObject returns the JSON object held in text: the whole cleaned
// text when it parses, otherwise the first {...} span.
func ExtractObject(text string) (map[string]any, bool) {
	cleaned := StripFences(text)
	if cleaned == "" {
		return nil, false
	}

	if obj, ok := decodeObject(cleaned); ok {
		return obj, true
	}

	span := firstObjectRe.FindString(cleaned)
	if span == "" {
		return nil, false
	}
	return decodeObject(span)
}

func decodeObject(s string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func normalizeText(text string, depth int) model.Envelope {
	obj, ok := ExtractObject(text)
	if !ok {
		return model.NewEnvelope()
	}
	return normalizeObject(obj, depth)
}

func normalizeObject(obj map[string]any, depth int) model.Envelope {
	if raw, ok := obj[rawKey].(string); ok && depth < maxUnwrapDepth {
		return normalizeText(raw, depth+1)
	}
	return Coerce(obj)
}
