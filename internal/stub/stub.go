// Package stub holds the deterministic travel data served by the static
// handlers and the agent tools. Nothing here calls out to a real provider.
package stub

import (
	"fmt"
	"strings"
)

var countries = map[string]string{
	"tunis":     "Tunisia",
	"sousse":    "Tunisia",
	"hammamet":  "Tunisia",
	"monastir":  "Tunisia",
	"djerba":    "Tunisia",
	"sfax":      "Tunisia",
	"bizerte":   "Tunisia",
	"kairouan":  "Tunisia",
	"tozeur":    "Tunisia",
	"mahdia":    "Tunisia",
	"paris":     "France",
	"rome":      "Italy",
	"barcelona": "Spain",
	"istanbul":  "Turkey",
}

var dayActivities = []string{
	"Morning walk through the old town of %s",
	"Lunch at a local restaurant in %s",
	"Visit the main museum of %s",
	"Afternoon at the %s waterfront",
	"Evening stroll in the %s market",
	"Day trip to the surroundings of %s",
}

// Country returns the country of a known city.
func Country(city string) (string, bool) {
	c, ok := countries[strings.ToLower(strings.TrimSpace(city))]
	return c, ok
}

// Weather is the stub forecast for a city.
func Weather(city string) string {
	return fmt.Sprintf("Stub weather for %s: 24–28°C, partly cloudy.", city)
}

// DayForecast is the stub forecast for a city on a date.
func DayForecast(city, date string) string {
	return fmt.Sprintf("Stub forecast for %s on %s: 24–28°C, partly cloudy.", city, date)
}

// HotelName invents a hotel name for a city.
func HotelName(city string) string {
	return fmt.Sprintf("%s Central Hotel", city)
}

// HotelAddress is the stub address of a hotel.
func HotelAddress(city string) string {
	return fmt.Sprintf("City centre, %s", city)
}

// HotelRating is the stub rating for every hotel.
const HotelRating = 4.2

// HotelAmenities is the stub amenity list.
func HotelAmenities() []string {
	return []string{"wifi", "breakfast", "pool"}
}

// CitySummary is the stub city guide.
func CitySummary(city string) string {
	return fmt.Sprintf("Stub city guide for %s: historic centre, local cuisine and easy day trips.", city)
}

// CityHighlights is the stub list of highlights.
func CityHighlights(city string) []string {
	return []string{
		fmt.Sprintf("%s medina", city),
		fmt.Sprintf("%s central market", city),
		fmt.Sprintf("%s waterfront", city),
	}
}

// Place is a stub point of interest.
type Place struct {
	Name       string
	Type       string
	DistanceKM float64
}

// NearbyPlaces returns three stub places of placeType around anchor.
func NearbyPlaces(anchor, placeType string) []Place {
	distances := []float64{0.3, 0.8, 1.5}
	out := make([]Place, len(distances))
	for i, d := range distances {
		out[i] = Place{
			Name:       fmt.Sprintf("%s %s %d", anchor, placeType, i+1),
			Type:       placeType,
			DistanceKM: d,
		}
	}
	return out
}

// Activities returns the stub activities for the n-th day (0-based) in city.
func Activities(city string, n int) []string {
	first := dayActivities[(2*n)%len(dayActivities)]
	second := dayActivities[(2*n+1)%len(dayActivities)]
	return []string{fmt.Sprintf(first, city), fmt.Sprintf(second, city)}
}
