// Package render turns a search session snapshot into something to show.
// Build is pure; Text and Page only format what Build produced.
package render

import (
	"fmt"
	"strings"

	"github.com/outfitguide/web/internal/domain"
	"github.com/outfitguide/web/pkg/utils"
)

const (
	// Placeholder stands in for a missing optional reading
	Placeholder = "—"

	LoadingText      = "Loading weather data..."
	SuggestionsTitle = "Outfit Recommendations"
)

// Card is the display form of a successful search
type Card struct {
	// Key identifies the result; a new key means a fresh card
	Key         string
	Location    string
	Condition   string
	Temperature string
	FeelsLike   string
	WindSpeed   string
	// Suggestions is nil when there is nothing to recommend
	Suggestions []domain.Suggestion
}

// View is what the result area shows for one state
type View struct {
	Phase   domain.Phase
	Loading bool
	Error   string
	Card    *Card
}

// Build maps a session state to its view
func Build(s domain.SessionState) View {
	v := View{Phase: s.Phase(), Loading: s.IsLoading()}
	if msg, ok := s.Message(); ok {
		v.Error = msg
	}
	if resp, ok := s.Response(); ok {
		v.Card = buildCard(resp)
	}
	return v
}

func buildCard(resp domain.WeatherResponse) *Card {
	w := resp.Weather
	c := &Card{
		Key:         w.Location,
		Location:    w.Location,
		Condition:   w.Condition,
		Temperature: utils.FormatNumber(w.Temperature) + "°C",
		FeelsLike:   "Feels like " + optional(w.FeelsLike) + "°C",
		WindSpeed:   optional(w.WindSpeed) + " m/s",
	}
	if len(resp.Suggestions) > 0 {
		c.Suggestions = resp.Suggestions
	}
	return c
}

// optional prints a reading that the backend may omit. Both wind speed and
// feels-like show Placeholder when absent.
func optional(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return utils.FormatNumber(*v)
}

// Text renders v for a terminal. highlight marks one suggestion by index;
// pass -1 for none.
func Text(v View, highlight int) string {
	var b strings.Builder

	switch {
	case v.Loading:
		b.WriteString(LoadingText + "\n")
	case v.Error != "":
		fmt.Fprintf(&b, "! %s\n", v.Error)
	case v.Card != nil:
		writeCard(&b, v.Card, highlight)
	}

	return b.String()
}

func writeCard(b *strings.Builder, c *Card, highlight int) {
	b.WriteString(separator(c.Location) + "\n")
	fmt.Fprintf(b, "%s\n", c.Condition)
	fmt.Fprintf(b, "%s\n", c.Temperature)
	fmt.Fprintf(b, "%s\n", c.FeelsLike)
	fmt.Fprintf(b, "Wind Speed: %s\n", c.WindSpeed)

	if c.Suggestions != nil {
		fmt.Fprintf(b, "\n%s\n", SuggestionsTitle)
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for i, s := range c.Suggestions {
			marker := " "
			if i == highlight {
				marker = ">"
			}
			fmt.Fprintf(b, "%s%2d. %s\n", marker, i+1, s.Title)
			fmt.Fprintf(b, "    %s\n", s.Description)
		}
	}

	b.WriteString(strings.Repeat("=", 60) + "\n")
}

func separator(title string) string {
	const width = 60
	padding := (width - len([]rune(title)) - 2) / 2
	if padding < 3 {
		padding = 3
	}
	return fmt.Sprintf("%s %s %s", strings.Repeat("=", padding), title, strings.Repeat("=", padding))
}
