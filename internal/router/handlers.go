package router

import (
	"fmt"

	"travel-orchestrator/internal/model"
	"travel-orchestrator/internal/stub"
	"travel-orchestrator/pkg/datemath"
)

func destinationOf(city string, assumed bool) *model.Destination {
	d := &model.Destination{City: model.StringPtr(city), Assumed: assumed}
	if country, ok := stub.Country(city); ok {
		d.Country = model.StringPtr(country)
	}
	return d
}

// dateRange reads start/end and returns the expanded days with the dates
// block. Dates are echoed only when they form a valid range. A range longer
// than datemath.MaxRangeDays is cut short: end becomes the last expanded day,
// the dates are marked assumed and a note is returned.
func dateRange(p model.Params) ([]string, *model.Dates, *string, error) {
	start, _, err := stringParam(p, "start")
	if err != nil {
		return nil, nil, nil, err
	}
	end, _, err := stringParam(p, "end")
	if err != nil {
		return nil, nil, nil, err
	}

	days := datemath.ExpandRange(start, end)
	if len(days) == 0 {
		return days, &model.Dates{Assumed: true}, nil, nil
	}

	first, last := days[0], days[len(days)-1]
	requestedEnd, _ := datemath.ParseDay(end)
	if last != requestedEnd.Format(datemath.DateFormat) {
		note := fmt.Sprintf(NoteRangeTruncated, datemath.MaxRangeDays, first, last)
		return days, &model.Dates{
			Start:   model.StringPtr(first),
			End:     model.StringPtr(last),
			Assumed: true,
		}, &note, nil
	}
	return days, &model.Dates{
		Start: model.StringPtr(first),
		End:   model.StringPtr(last),
	}, nil, nil
}

func handleHotelInfo(p model.Params, defaults Config) (model.Envelope, error) {
	city, cityAssumed, err := cityParam(p, defaults)
	if err != nil {
		return model.Envelope{}, err
	}
	name, hasName, err := stringParam(p, "hotel_name")
	if err != nil {
		return model.Envelope{}, err
	}
	if !hasName {
		name = stub.HotelName(city)
	}

	env := model.NewEnvelope()
	env.Destination = destinationOf(city, cityAssumed)
	env.Hotel = &model.Hotel{
		Name:      model.StringPtr(name),
		City:      model.StringPtr(city),
		Address:   model.StringPtr(stub.HotelAddress(city)),
		Rating:    model.Float64Ptr(stub.HotelRating),
		Amenities: stub.HotelAmenities(),
		Assumed:   cityAssumed || !hasName,
	}
	env.Stay = model.StringPtr(name)
	return env, nil
}

func handleCityInfo(p model.Params, defaults Config) (model.Envelope, error) {
	city, cityAssumed, err := cityParam(p, defaults)
	if err != nil {
		return model.Envelope{}, err
	}

	env := model.NewEnvelope()
	env.Destination = destinationOf(city, cityAssumed)
	env.City = &model.City{
		Name:       model.StringPtr(city),
		Country:    env.Destination.Country,
		Summary:    model.StringPtr(stub.CitySummary(city)),
		Highlights: stub.CityHighlights(city),
		Assumed:    cityAssumed,
	}
	return env, nil
}

func handleNearby(p model.Params, defaults Config) (model.Envelope, error) {
	placeType, hasType, err := stringParam(p, "place_type")
	if err != nil {
		return model.Envelope{}, err
	}
	if !hasType {
		placeType = DefaultPlaceType
	}

	near, _, err := objectParam(p, "near")
	if err != nil {
		return model.Envelope{}, err
	}
	hotelName, hasHotel, err := stringParam(near, "hotel_name")
	if err != nil {
		return model.Envelope{}, err
	}
	city, hasCity, err := stringParam(near, "city")
	if err != nil {
		return model.Envelope{}, err
	}
	cityAssumed := false
	if !hasCity {
		if city, cityAssumed, err = cityParam(p, defaults); err != nil {
			return model.Envelope{}, err
		}
	}

	anchor := city
	if hasHotel {
		anchor = hotelName
	}

	env := model.NewEnvelope()
	env.Destination = destinationOf(city, cityAssumed)
	for _, place := range stub.NearbyPlaces(anchor, placeType) {
		env.Nearby = append(env.Nearby, model.Place{
			Name:       place.Name,
			Type:       place.Type,
			DistanceKM: model.Float64Ptr(place.DistanceKM),
			Assumed:    !hasType,
		})
	}
	if hasHotel {
		env.Hotel = &model.Hotel{
			Name:    model.StringPtr(hotelName),
			City:    model.StringPtr(city),
			Assumed: cityAssumed,
		}
	}
	env.Notes = model.StringPtr(fmt.Sprintf("Places near %s", anchor))
	return env, nil
}

func handlePlan(p model.Params, defaults Config) (model.Envelope, error) {
	city, cityAssumed, err := cityParam(p, defaults)
	if err != nil {
		return model.Envelope{}, err
	}
	days, dates, note, err := dateRange(p)
	if err != nil {
		return model.Envelope{}, err
	}

	env := model.NewEnvelope()
	env.Destination = destinationOf(city, cityAssumed)
	env.Dates = dates
	env.Notes = note
	for i, day := range days {
		env.Plan = append(env.Plan, model.DayPlan{
			Day:        i + 1,
			Date:       day,
			Activities: stub.Activities(city, i),
		})
	}
	return env, nil
}

func handleWeather(p model.Params, defaults Config) (model.Envelope, error) {
	city, cityAssumed, err := cityParam(p, defaults)
	if err != nil {
		return model.Envelope{}, err
	}
	days, dates, note, err := dateRange(p)
	if err != nil {
		return model.Envelope{}, err
	}

	env := model.NewEnvelope()
	env.Destination = destinationOf(city, cityAssumed)
	env.Dates = dates
	env.Notes = note
	env.Weather = model.StringPtr(stub.Weather(city))
	for _, day := range days {
		env.WeatherRange = append(env.WeatherRange, model.DayWeather{
			Date:     day,
			Forecast: stub.DayForecast(city, day),
		})
	}
	return env, nil
}
