package router

import (
	"fmt"
	"strings"

	"travel-orchestrator/internal/model"
)

// stringParam reads an optional string param. Absent, null and blank
// values report ok=false; any other non-string is ErrInvalidParam.
func stringParam(p model.Params, key string) (string, bool, error) {
	raw, exists := p[key]
	if !exists || raw == nil {
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", false, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidParam, key, raw)
	}
	s = strings.TrimSpace(s)
	return s, s != "", nil
}

// objectParam reads an optional object param.
func objectParam(p model.Params, key string) (model.Params, bool, error) {
	raw, exists := p[key]
	if !exists || raw == nil {
		return nil, false, nil
	}
	switch v := raw.(type) {
	case map[string]any:
		return model.Params(v), true, nil
	case model.Params:
		return v, true, nil
	case map[string]string:
		out := make(model.Params, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, true, nil
	default:
		return nil, false, fmt.Errorf("%w: %s must be an object, got %T", ErrInvalidParam, key, raw)
	}
}

// cityParam returns the city param or the default, with the assumed flag.
func cityParam(p model.Params, defaults Config) (string, bool, error) {
	city, ok, err := stringParam(p, "city")
	if err != nil {
		return "", false, err
	}
	if !ok {
		return defaults.DefaultCity, true, nil
	}
	return city, false, nil
}
