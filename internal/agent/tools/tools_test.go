package tools_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-orchestrator/internal/agent/tools"
)

func TestGetWeatherTool(t *testing.T) {
	tool := tools.NewGetWeatherTool()
	assert.Equal(t, "get_weather", tool.Name())
	assert.Equal(t, "object", tool.Parameters()["type"])

	t.Run("city only", func(t *testing.T) {
		out, err := tool.Execute(context.Background(), map[string]any{"city": "Sousse"})
		require.NoError(t, err)
		res := out.(tools.WeatherResult)
		assert.Equal(t, "Stub weather for Sousse: 24–28°C, partly cloudy.", res.Forecast)
		assert.Empty(t, res.Daily)
	})

	t.Run("with range", func(t *testing.T) {
		out, err := tool.Execute(context.Background(), map[string]any{
			"city":       "Sousse",
			"start_date": "2024-05-01",
			"end_date":   "2024-05-02",
		})
		require.NoError(t, err)
		res := out.(tools.WeatherResult)
		assert.Len(t, res.Daily, 2)
		assert.Contains(t, res.Daily["2024-05-02"], "2024-05-02")
	})

	t.Run("missing city", func(t *testing.T) {
		_, err := tool.Execute(context.Background(), map[string]any{"city": 3})
		assert.True(t, errors.Is(err, tools.ErrMissingArgument))
	})
}

func TestFindHotelTool(t *testing.T) {
	tool := tools.NewFindHotelTool()
	assert.Equal(t, "find_hotel", tool.Name())

	out, err := tool.Execute(context.Background(), map[string]any{"city": "Tunis"})
	require.NoError(t, err)
	res := out.(tools.HotelResult)
	assert.Equal(t, "Tunis Central Hotel", res.Name)
	assert.Equal(t, "Tunisia", res.Country)
	assert.NotEmpty(t, res.Amenities)

	_, err = tool.Execute(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, tools.ErrMissingArgument)
}
