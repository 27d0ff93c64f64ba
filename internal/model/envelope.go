package model

// Envelope is the single normalized response returned for every
// orchestration request. Every field is independently nullable; at most
// one of the success fields or Error is meaningfully populated.
type Envelope struct {
	Intent       *string      `json:"intent"`
	Destination  *Destination `json:"destination"`
	Dates        *Dates       `json:"dates"`
	Hotel        *Hotel       `json:"hotel"`
	City         *City        `json:"city"`
	Nearby       []Place      `json:"nearby"`
	Plan         []DayPlan    `json:"plan"`
	Weather      *string      `json:"weather"`
	WeatherRange []DayWeather `json:"weather_range"`
	Transport    *string      `json:"transport"`
	Stay         *string      `json:"stay"`
	Experiences  []string     `json:"experiences"`
	Notes        *string      `json:"notes"`

	// Fallback fields for error/info cases
	Error   *string `json:"error"`
	Details *string `json:"details"`
	Info    *string `json:"info"`
}

// Destination is the trip destination.
type Destination struct {
	City    *string `json:"city"`
	Country *string `json:"country"`
	Assumed bool    `json:"assumed"`
}

// Dates holds a YYYY-MM-DD trip range.
type Dates struct {
	Start   *string `json:"start"`
	End     *string `json:"end"`
	Assumed bool    `json:"assumed"`
}

// Hotel describes a stay.
type Hotel struct {
	Name      *string  `json:"name"`
	City      *string  `json:"city"`
	Address   *string  `json:"address"`
	Rating    *float64 `json:"rating"`
	Amenities []string `json:"amenities"`
	Assumed   bool     `json:"assumed"`
}

// City is general information about a city.
type City struct {
	Name       *string  `json:"name"`
	Country    *string  `json:"country"`
	Summary    *string  `json:"summary"`
	Highlights []string `json:"highlights"`
	Assumed    bool     `json:"assumed"`
}

// Place is a point of interest near an anchor (hotel or city).
type Place struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	DistanceKM *float64 `json:"distance_km"`
	Assumed    bool     `json:"assumed"`
}

// DayPlan is one day of an itinerary.
type DayPlan struct {
	Day        int      `json:"day"`
	Date       string   `json:"date"`
	Activities []string `json:"activities"`
}

// DayWeather is the forecast for a single date.
type DayWeather struct {
	Date     string `json:"date"`
	Forecast string `json:"forecast"`
}

// NewEnvelope returns the canonical empty envelope: objects and scalars
// null, lists empty, no error.
func NewEnvelope() Envelope {
	return Envelope{
		Nearby:       []Place{},
		Plan:         []DayPlan{},
		WeatherRange: []DayWeather{},
		Experiences:  []string{},
	}
}

// NewInfoEnvelope returns the empty envelope with Info set.
func NewInfoEnvelope(info string) Envelope {
	env := NewEnvelope()
	env.Info = StringPtr(info)
	return env
}

// NewErrorEnvelope returns the empty envelope with Error and Details set.
func NewErrorEnvelope(code, details string) Envelope {
	env := NewEnvelope()
	env.Error = StringPtr(code)
	if details != "" {
		env.Details = StringPtr(details)
	}
	return env
}

// HasError reports whether the envelope carries an error.
func (e Envelope) HasError() bool {
	return e.Error != nil && *e.Error != ""
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 {
	return &f
}
