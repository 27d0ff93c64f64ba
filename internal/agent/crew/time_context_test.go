package crew

import (
	"strings"
	"testing"
	"time"

	"travel-orchestrator/pkg/datemath"
)

func TestBuildTimeContext(t *testing.T) {
	parser, err := datemath.NewParser("Africa/Tunis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sunday 23:30 UTC is already Monday in Tunis.
	now := time.Date(2024, 5, 5, 23, 30, 0, 0, time.UTC)
	ctx := buildTimeContext(parser, now)

	for _, want := range []string{
		"Reference dates (Africa/Tunis)",
		"Today: 2024-05-06 (Monday)",
		"Tomorrow: 2024-05-07",
		"This week: 2024-05-06 to 2024-05-12",
		"Next weekend: 2024-05-11 to 2024-05-12",
	} {
		if !strings.Contains(ctx, want) {
			t.Errorf("time context missing %q:\n%s", want, ctx)
		}
	}
}
