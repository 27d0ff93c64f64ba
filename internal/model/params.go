package model

// Params is the loosely typed key/value mapping passed to handlers.
type Params map[string]any
