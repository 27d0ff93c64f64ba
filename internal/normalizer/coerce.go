package normalizer

import (
	"encoding/json"
	"strconv"
	"strings"

	"travel-orchestrator/internal/model"
)

// Coerce maps a decoded JSON object onto the envelope field by field.
// Values of an unusable type are dropped instead of failing the object.
func Coerce(obj map[string]any) model.Envelope {
	env := model.NewEnvelope()

	env.Intent = text(obj["intent"])
	env.Destination = destination(obj["destination"])
	env.Dates = dates(obj["dates"])
	env.Hotel = hotel(obj["hotel"])
	env.City = city(obj["city"])
	env.Nearby = places(obj["nearby"])
	env.Plan = plan(obj["plan"])

	// Some models put the per-day forecast straight into "weather".
	if list, ok := obj["weather"].([]any); ok {
		env.WeatherRange = weatherRange(list)
	} else {
		env.Weather = text(obj["weather"])
	}
	if wr := weatherRange(obj["weather_range"]); len(wr) > 0 {
		env.WeatherRange = wr
	}

	env.Transport = text(obj["transport"])
	env.Stay = text(obj["stay"])
	env.Experiences = stringList(obj["experiences"])
	env.Notes = text(obj["notes"])

	env.Error = text(obj["error"])
	env.Details = text(obj["details"])
	env.Info = text(obj["info"])

	return env
}

// scalar renders strings, numbers and booleans as text.
func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// text coerces a scalar or a list of scalars into a single string.
func text(v any) *string {
	if s, ok := scalar(v); ok {
		return &s
	}
	if list, ok := v.([]any); ok {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := scalar(item); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			joined := strings.Join(parts, listSeparator)
			return &joined
		}
	}
	return nil
}

// nestedList keeps null as nil but always returns a list otherwise.
func nestedList(v any) []string {
	if v == nil {
		return nil
	}
	return stringList(v)
}

// stringList accepts a list (of scalars or {name: ...} objects) or a
// single scalar. It never returns nil.
func stringList(v any) []string {
	out := []string{}
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s, ok := scalar(item); ok {
				out = append(out, s)
				continue
			}
			if m, ok := item.(map[string]any); ok {
				if name := text(m["name"]); name != nil {
					out = append(out, *name)
				}
			}
		}
	default:
		if s, ok := scalar(v); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func float(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return &f
		}
	}
	return nil
}

func integer(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func boolean(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	}
	return false
}

func destination(v any) *model.Destination {
	switch t := v.(type) {
	case map[string]any:
		return &model.Destination{
			City:    text(t["city"]),
			Country: text(t["country"]),
			Assumed: boolean(t["assumed"]),
		}
	case string:
		if t == "" {
			return nil
		}
		return &model.Destination{City: &t}
	}
	return nil
}

func dates(v any) *model.Dates {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return &model.Dates{
		Start:   text(m["start"]),
		End:     text(m["end"]),
		Assumed: boolean(m["assumed"]),
	}
}

func hotel(v any) *model.Hotel {
	switch t := v.(type) {
	case map[string]any:
		return &model.Hotel{
			Name:      text(t["name"]),
			City:      text(t["city"]),
			Address:   text(t["address"]),
			Rating:    float(t["rating"]),
			Amenities: nestedList(t["amenities"]),
			Assumed:   boolean(t["assumed"]),
		}
	case string:
		if t == "" {
			return nil
		}
		return &model.Hotel{Name: &t}
	}
	return nil
}

func city(v any) *model.City {
	switch t := v.(type) {
	case map[string]any:
		return &model.City{
			Name:       text(t["name"]),
			Country:    text(t["country"]),
			Summary:    text(t["summary"]),
			Highlights: nestedList(t["highlights"]),
			Assumed:    boolean(t["assumed"]),
		}
	case string:
		if t == "" {
			return nil
		}
		return &model.City{Name: &t}
	}
	return nil
}

func places(v any) []model.Place {
	out := []model.Place{}
	list, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range list {
		switch t := item.(type) {
		case map[string]any:
			p := model.Place{
				DistanceKM: float(t["distance_km"]),
				Assumed:    boolean(t["assumed"]),
			}
			if s := text(t["name"]); s != nil {
				p.Name = *s
			}
			if s := text(t["type"]); s != nil {
				p.Type = *s
			}
			out = append(out, p)
		case string:
			out = append(out, model.Place{Name: t})
		}
	}
	return out
}

func plan(v any) []model.DayPlan {
	out := []model.DayPlan{}
	list, ok := v.([]any)
	if !ok {
		return out
	}
	for i, item := range list {
		switch t := item.(type) {
		case map[string]any:
			day := model.DayPlan{Day: i + 1}
			if n, ok := integer(t["day"]); ok {
				day.Day = n
			}
			if s := text(t["date"]); s != nil {
				day.Date = *s
			}
			for _, key := range []string{"activities", "activity", "items"} {
				if acts := nestedList(t[key]); acts != nil {
					day.Activities = acts
					break
				}
			}
			out = append(out, day)
		case string:
			out = append(out, model.DayPlan{Day: i + 1, Activities: []string{t}})
		}
	}
	return out
}

func weatherRange(v any) []model.DayWeather {
	out := []model.DayWeather{}
	list, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var dw model.DayWeather
		if s := text(m["date"]); s != nil {
			dw.Date = *s
		}
		for _, key := range []string{"forecast", "weather", "summary"} {
			if s := text(m[key]); s != nil {
				dw.Forecast = *s
				break
			}
		}
		out = append(out, dw)
	}
	return out
}
