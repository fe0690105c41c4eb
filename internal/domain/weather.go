package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DefaultLocation is the location pre-filled in the search input
const DefaultLocation = "New Delhi"

// Weather represents the current conditions for one location
type Weather struct {
	Location    string   `json:"location"`
	Temperature float64  `json:"temperature"`
	Condition   string   `json:"condition"`
	Humidity    *float64 `json:"humidity,omitempty"`
	WindSpeed   *float64 `json:"windSpeed,omitempty"`
	FeelsLike   *float64 `json:"feelsLike,omitempty"`
}

// Suggestion is one outfit recommendation
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WeatherResponse is the payload returned by GET /api/weather.
// Suggestions are kept in display order.
type WeatherResponse struct {
	Weather     Weather      `json:"weather"`
	Suggestions []Suggestion `json:"suggestions"`
}

// ErrMalformedResponse is wrapped by every ParseWeatherResponse failure
var ErrMalformedResponse = errors.New("malformed weather response")

// wire types keep required fields as pointers so absence can be told apart
// from zero values
type weatherWire struct {
	Location    *string  `json:"location"`
	Temperature *float64 `json:"temperature"`
	Condition   *string  `json:"condition"`
	Humidity    *float64 `json:"humidity"`
	WindSpeed   *float64 `json:"windSpeed"`
	FeelsLike   *float64 `json:"feelsLike"`
}

type suggestionWire struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type responseWire struct {
	Weather     *weatherWire     `json:"weather"`
	Suggestions []suggestionWire `json:"suggestions"`
}

// ParseWeatherResponse decodes and validates a WeatherResponse body.
// A missing or null suggestions array yields an empty list. The body must
// hold exactly one JSON value.
func ParseWeatherResponse(r io.Reader) (WeatherResponse, error) {
	var wire responseWire
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wire); err != nil {
		return WeatherResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return WeatherResponse{}, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedResponse)
	}
	return wire.validate()
}

func (w responseWire) validate() (WeatherResponse, error) {
	if w.Weather == nil {
		return WeatherResponse{}, missingField("weather")
	}
	ww := w.Weather
	switch {
	case ww.Location == nil:
		return WeatherResponse{}, missingField("weather.location")
	case ww.Temperature == nil:
		return WeatherResponse{}, missingField("weather.temperature")
	case ww.Condition == nil:
		return WeatherResponse{}, missingField("weather.condition")
	}

	resp := WeatherResponse{
		Weather: Weather{
			Location:    *ww.Location,
			Temperature: *ww.Temperature,
			Condition:   *ww.Condition,
			Humidity:    ww.Humidity,
			WindSpeed:   ww.WindSpeed,
			FeelsLike:   ww.FeelsLike,
		},
		Suggestions: make([]Suggestion, 0, len(w.Suggestions)),
	}

	for i, s := range w.Suggestions {
		if s.Title == nil {
			return WeatherResponse{}, missingField(fmt.Sprintf("suggestions[%d].title", i))
		}
		if s.Description == nil {
			return WeatherResponse{}, missingField(fmt.Sprintf("suggestions[%d].description", i))
		}
		resp.Suggestions = append(resp.Suggestions, Suggestion{Title: *s.Title, Description: *s.Description})
	}

	return resp, nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformedResponse, name)
}
