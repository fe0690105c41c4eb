package http

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"

	"github.com/outfitguide/web/internal/domain"
	"github.com/outfitguide/web/internal/render"
	"github.com/outfitguide/web/internal/service"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Handler contains all HTTP handlers
type Handler struct {
	fetcher         service.WeatherFetcher
	upstreamURL     string
	defaultLocation string
}

// NewHandler creates a new handler. fetcher runs page searches; upstreamURL
// is where /api/weather is relayed (empty disables the relay).
func NewHandler(fetcher service.WeatherFetcher, upstreamURL, defaultLocation string) *Handler {
	if defaultLocation == "" {
		defaultLocation = domain.DefaultLocation
	}
	return &Handler{
		fetcher:         fetcher,
		upstreamURL:     upstreamURL,
		defaultLocation: defaultLocation,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "outfit-guide-web",
		"version": Version,
	})
}

// Index renders the search page. A location query submits a search through
// the input collector; the page shows the state once that search settles.
func (h *Handler) Index(c *fiber.Ctx) error {
	state := domain.Idle()
	collector := service.NewInputCollector(h.defaultLocation, func(loc string) {
		state = service.NewOrchestrator(h.fetcher).Search(c.UserContext(), loc)
	})

	if c.Request().URI().QueryArgs().Has("location") {
		collector.Set(c.Query("location"))
		collector.Submit()
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if err := render.Page(c, render.PageData{Input: collector.Value(), View: render.Build(state)}); err != nil {
		log.Printf("Failed to render page: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render page")
	}
	return nil
}

// ProxyWeather relays GET /api/weather to the weather backend unchanged
func (h *Handler) ProxyWeather(c *fiber.Ctx) error {
	if h.upstreamURL == "" {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Weather backend not configured")
	}

	target := h.upstreamURL + "/api/weather"
	if q := c.Request().URI().QueryString(); len(q) > 0 {
		target += "?" + string(q)
	}

	if err := proxy.Do(c, target); err != nil {
		log.Printf("Weather relay to %s failed: %v", h.upstreamURL, err)
		return fiber.NewError(fiber.StatusBadGateway, "Weather backend unreachable")
	}
	c.Response().Header.Del(fiber.HeaderServer)
	return nil
}
