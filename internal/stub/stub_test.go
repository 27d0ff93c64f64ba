package stub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travel-orchestrator/internal/stub"
)

func TestWeather(t *testing.T) {
	assert.Equal(t, "Stub weather for Sousse: 24–28°C, partly cloudy.", stub.Weather("Sousse"))
}

func TestCountry(t *testing.T) {
	c, ok := stub.Country(" SOUSSE ")
	assert.True(t, ok)
	assert.Equal(t, "Tunisia", c)

	_, ok = stub.Country("Atlantis")
	assert.False(t, ok)
}

func TestNearbyPlaces(t *testing.T) {
	places := stub.NearbyPlaces("Tunis", "cafe")
	assert.Len(t, places, 3)
	for _, p := range places {
		assert.Equal(t, "cafe", p.Type)
		assert.Contains(t, p.Name, "Tunis")
	}
}

func TestActivities(t *testing.T) {
	day1 := stub.Activities("Tunis", 0)
	day4 := stub.Activities("Tunis", 3)
	assert.Len(t, day1, 2)
	assert.Equal(t, day1, day4, "activities rotate every three days")
	assert.NotEqual(t, day1, stub.Activities("Tunis", 1))
}
