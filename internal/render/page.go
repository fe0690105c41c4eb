package render

import (
	"html/template"
	"io"
)

// PageData feeds the search page template
type PageData struct {
	Input string
	View  View
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Outfit Guide</title>
</head>
<body>
<div class="container">
  <div class="app-header">
    <h1 class="app-title">Outfit Guide</h1>
    <p class="app-subtitle">Get personalized clothing recommendations based on weather</p>
  </div>
  <div class="card">
    <form method="get" action="/" class="search">
      <input name="location" value="{{.Input}}" placeholder="Enter city name (e.g. New Delhi, London, Tokyo)" class="search-input">
      <button type="submit" class="search-button"><span>Get Weather</span></button>
    </form>
{{- with .View}}
{{- if .Loading}}
    <div class="loading">Loading weather data...</div>
{{- else if .Error}}
    <div class="error">{{.Error}}</div>
{{- else if .Card}}
{{- with .Card}}
    <div class="weather" data-key="{{.Key}}">
      <div class="weather-card">
        <div class="weather-header">
          <h2 class="location">{{.Location}}</h2>
          <div class="condition">{{.Condition}}</div>
          <div class="temperature">{{.Temperature}}</div>
          <div class="feels-like">{{.FeelsLike}}</div>
        </div>
        <div class="weather-details">
          <div class="detail-item">
            <div class="detail-label">Wind Speed</div>
            <div class="detail-value">{{.WindSpeed}}</div>
          </div>
        </div>
{{- if .Suggestions}}
        <div class="suggestions">
          <h3 class="suggestions-title">Outfit Recommendations</h3>
          <ul class="suggestions-list">
{{- range .Suggestions}}
            <li class="suggestion-item">
              <div class="suggestion-title">{{.Title}}</div>
              <div class="suggestion-description">{{.Description}}</div>
            </li>
{{- end}}
          </ul>
        </div>
{{- end}}
      </div>
    </div>
{{- end}}
{{- end}}
{{- end}}
  </div>
</div>
</body>
</html>
`))

// Page writes the full search page
func Page(w io.Writer, data PageData) error {
	return pageTmpl.Execute(w, data)
}
