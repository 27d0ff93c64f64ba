package trigger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-orchestrator/internal/model"
	"travel-orchestrator/internal/trigger"
)

func newDetector(t *testing.T) *trigger.Detector {
	t.Helper()
	d, err := trigger.New(trigger.DefaultWords)
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	_, err := trigger.New(nil)
	assert.ErrorIs(t, err, trigger.ErrNoWords)

	_, err = trigger.New([]string{" ", ""})
	assert.ErrorIs(t, err, trigger.ErrNoWords)

	d, err := trigger.New([]string{" go.around ", "c++"})
	require.NoError(t, err)
	assert.Equal(t, []string{"go.around", "c++"}, d.Words())
	assert.True(t, d.Contains("let's go.around now"))
	assert.False(t, d.Contains("goXaround"), "dots are matched literally")
	assert.True(t, d.Contains("I code c++ daily"), "words ending in symbols still match")
}

func TestContains(t *testing.T) {
	d := newDetector(t)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "exact", text: "ai_agent", want: true},
		{name: "upper case", text: "hey AI_AGENT plan a trip", want: true},
		{name: "mixed case", text: "goaround to Sousse?", want: true},
		{name: "with punctuation", text: "@walid_travel, help!", want: true},
		{name: "multi line", text: "Alice: hi\nBob: GoAround please", want: true},
		{name: "embedded in word", text: "myai_agents are here", want: false},
		{name: "prefix only", text: "GoAroundTown", want: false},
		{name: "accented prefix", text: "éai_agent", want: false},
		{name: "accented suffix", text: "GoAroundé please", want: false},
		{name: "non latin neighbours", text: "日本ai_agent", want: false},
		{name: "unicode digit suffix", text: "walid_travel٣", want: false},
		{name: "non latin separated", text: "日本 ai_agent 東京", want: true},
		{name: "emoji neighbour", text: "🚀GoAround🚀", want: true},
		{name: "end of text", text: "ping walid_travel", want: true},
		{name: "none", text: "let's plan a trip to Tunis", want: false},
		{name: "empty", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Contains(tt.text))
		})
	}
}

func TestDetect(t *testing.T) {
	d := newDetector(t)

	msgs := []model.Message{
		{Sender: "ai_agent", Content: "hello"},
		{Sender: "Bob", Content: "where to?"},
	}

	tests := []struct {
		name    string
		input   any
		want    bool
		wantErr bool
	}{
		{name: "string", input: "ai_agent trip", want: true},
		{name: "messages without trigger in content", input: msgs, want: false},
		{name: "messages with trigger", input: append(msgs, model.Message{Sender: "C", Content: "GoAround!"}), want: true},
		{name: "conversation text", input: model.NewTextInput("walid_travel"), want: true},
		{name: "conversation list", input: model.NewMessagesInput(msgs), want: false},
		{name: "string maps", input: []map[string]string{{"sender": "A", "content": "ai_agent"}}, want: true},
		{name: "decoded json", input: []any{map[string]any{"sender": "A", "content": "goaround"}}, want: true},
		{name: "decoded json without content", input: []any{map[string]any{"sender": "A"}}, want: false},
		{name: "decoded json bad item", input: []any{"ai_agent"}, wantErr: true},
		{name: "number", input: 42, wantErr: true},
		{name: "nil", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Detect(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, trigger.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
