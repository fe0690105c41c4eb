package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/outfitguide/web/internal/domain"
)

// StatusError reports a non-2xx answer from the weather endpoint
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Server error: %d", e.Code)
}

// WeatherClient calls the backend's GET /api/weather endpoint
type WeatherClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	// set by WithTimeout, applied once every option has run
	timeout *time.Duration
}

// ClientOption customizes a WeatherClient
type ClientOption func(*WeatherClient)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *WeatherClient) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request; zero disables the timeout.
// It applies to the final HTTP client whatever the option order.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *WeatherClient) {
		c.timeout = &d
	}
}

// WithRateLimit throttles outbound requests to rps with the given burst.
// rps <= 0 leaves requests unthrottled.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *WeatherClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewWeatherClient creates a client for the endpoint rooted at baseURL.
// An empty baseURL produces relative request paths, which only work with a
// transport that resolves them.
func NewWeatherClient(baseURL string, opts ...ClientOption) *WeatherClient {
	c := &WeatherClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout != nil {
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}
	return c
}

// FetchWeather performs exactly one GET for location
func (c *WeatherClient) FetchWeather(ctx context.Context, location string) (domain.WeatherResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return domain.WeatherResponse{}, fmt.Errorf("weather: rate limit wait canceled: %w", err)
		}
	}

	reqID := uuid.New().String()
	endpoint := c.baseURL + "/api/weather?location=" + escapeQueryComponent(location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.WeatherResponse{}, fmt.Errorf("weather: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[weather %s] GET %q failed: %v", reqID, location, err)
		return domain.WeatherResponse{}, err
	}
	defer resp.Body.Close()

	log.Printf("[weather %s] GET %q -> %d (%s)", reqID, location, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.WeatherResponse{}, &StatusError{Code: resp.StatusCode}
	}

	return domain.ParseWeatherResponse(resp.Body)
}

// escapeQueryComponent escapes like a browser's encodeURIComponent:
// spaces become %20 rather than +
func escapeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
