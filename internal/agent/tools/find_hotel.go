package tools

import (
	"context"

	"travel-orchestrator/internal/stub"
)

// FindHotelTool suggests a stub hotel in a city.
type FindHotelTool struct{}

func NewFindHotelTool() *FindHotelTool {
	return &FindHotelTool{}
}

func (t *FindHotelTool) Name() string {
	return "find_hotel"
}

func (t *FindHotelTool) Description() string {
	return "Suggest a hotel in a city. Returns name, address, rating and amenities."
}

func (t *FindHotelTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "City name, e.g. Tunis",
			},
		},
		"required": []string{"city"},
	}
}

// HotelResult is the tool output.
type HotelResult struct {
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Country   string   `json:"country,omitempty"`
	Address   string   `json:"address"`
	Rating    float64  `json:"rating"`
	Amenities []string `json:"amenities"`
}

func (t *FindHotelTool) Execute(ctx context.Context, params map[string]any) (any, error) {
	city, err := requiredString(params, "city")
	if err != nil {
		return nil, err
	}

	country, _ := stub.Country(city)
	return HotelResult{
		Name:      stub.HotelName(city),
		City:      city,
		Country:   country,
		Address:   stub.HotelAddress(city),
		Rating:    stub.HotelRating,
		Amenities: stub.HotelAmenities(),
	}, nil
}
