package normalizer

import "regexp"

var (
	// Opening fence with an optional language tag, at the start of a line.
	mdOpenRe = regexp.MustCompile("(?m)^\\s*```[a-zA-Z0-9_-]*")
	// Closing fence at the end of a line.
	mdCloseRe = regexp.MustCompile("(?m)```\\s*$")
	// First '{' to last '}', across lines.
	firstObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// rawKey wraps agent output that was itself returned as {"raw": "..."}.
const rawKey = "raw"

// maxUnwrapDepth bounds nested {"raw": ...} unwrapping.
const maxUnwrapDepth = 2

// listSeparator joins list values coerced into a single text field.
const listSeparator = "; "
