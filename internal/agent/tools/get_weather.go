package tools

import (
	"context"

	"travel-orchestrator/internal/stub"
	"travel-orchestrator/pkg/datemath"
)

// GetWeatherTool returns the stub forecast for a city, optionally per day.
type GetWeatherTool struct{}

func NewGetWeatherTool() *GetWeatherTool {
	return &GetWeatherTool{}
}

func (t *GetWeatherTool) Name() string {
	return "get_weather"
}

func (t *GetWeatherTool) Description() string {
	return "Return a short forecast string for the given city. Pass start_date and end_date (YYYY-MM-DD) to get one forecast per day."
}

func (t *GetWeatherTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "City name, e.g. Sousse",
			},
			"start_date": map[string]any{
				"type":        "string",
				"description": "First day, YYYY-MM-DD",
			},
			"end_date": map[string]any{
				"type":        "string",
				"description": "Last day, YYYY-MM-DD",
			},
		},
		"required": []string{"city"},
	}
}

// WeatherResult is the tool output.
type WeatherResult struct {
	City     string            `json:"city"`
	Forecast string            `json:"forecast"`
	Daily    map[string]string `json:"daily,omitempty"`
}

func (t *GetWeatherTool) Execute(ctx context.Context, params map[string]any) (any, error) {
	city, err := requiredString(params, "city")
	if err != nil {
		return nil, err
	}

	result := WeatherResult{City: city, Forecast: stub.Weather(city)}

	start := optionalString(params, "start_date")
	end := optionalString(params, "end_date")
	if days := datemath.ExpandRange(start, end); len(days) > 0 {
		result.Daily = make(map[string]string, len(days))
		for _, d := range days {
			result.Daily[d] = stub.DayForecast(city, d)
		}
	}

	return result, nil
}
