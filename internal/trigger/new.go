package trigger

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultWords are the activation phrases used when none are configured.
var DefaultWords = []string{"ai_agent", "walid_travel", "GoAround"}

var (
	ErrInvalidInput = errors.New("invalid input type: must be text or a list of messages")
	ErrNoWords      = errors.New("at least one trigger word is required")
)

// Word boundaries treat any Unicode letter, digit or underscore as a word
// character. RE2's \b only knows ASCII word characters.
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:[^\p{L}\p{N}_]|$)`
)

// Detector matches configured trigger words as whole words, ignoring case.
// It is immutable after New and safe for concurrent use.
type Detector struct {
	words   []string
	pattern *regexp.Regexp
}

// New compiles a Detector for words. Words are matched literally.
func New(words []string) (*Detector, error) {
	cleaned := make([]string, 0, len(words))
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		cleaned = append(cleaned, w)
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) == 0 {
		return nil, ErrNoWords
	}

	pattern, err := regexp.Compile(`(?i)` + wordStart + `(` + strings.Join(quoted, "|") + `)` + wordEnd)
	if err != nil {
		return nil, err
	}

	return &Detector{words: cleaned, pattern: pattern}, nil
}

// Words returns the configured trigger words.
func (d *Detector) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}
