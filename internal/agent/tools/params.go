package tools

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingArgument = errors.New("missing required argument")

func requiredString(params map[string]any, key string) (string, error) {
	s := optionalString(params, key)
	if s == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, key)
	}
	return s, nil
}

func optionalString(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return strings.TrimSpace(s)
}
