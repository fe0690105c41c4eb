package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"

	delivery "github.com/outfitguide/web/internal/delivery/http"
	"github.com/outfitguide/web/internal/service"
)

const tokyoBody = `{"weather":{"location":"Tokyo","temperature":21,"condition":"Clear","feelsLike":20},"suggestions":[{"title":"Light jacket","description":"Mild evening chill"}]}`

func newBackend(t *testing.T, hits *int32, status int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newApp(upstream string) *fiber.App {
	handler := delivery.NewHandler(service.NewWeatherClient(upstream), upstream, "")
	return delivery.NewApp(handler, "*")
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, target, nil), -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", target, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestHealthCheck(t *testing.T) {
	status, body := get(t, newApp(""), "/health")
	if status != nethttp.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var payload map[string]string
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["status"] != "ok" || payload["version"] != delivery.Version {
		t.Fatalf("payload = %v", payload)
	}
}

func TestIndexIdleDoesNotSearch(t *testing.T) {
	var hits int32
	backend := newBackend(t, &hits, nethttp.StatusOK, tokyoBody)
	app := newApp(backend.URL)

	for _, target := range []string{"/", "/?location="} {
		status, body := get(t, app, target)
		if status != nethttp.StatusOK {
			t.Fatalf("GET %s status = %d", target, status)
		}
		if strings.Contains(body, `class="weather"`) || strings.Contains(body, `class="error"`) {
			t.Fatalf("GET %s rendered a result area", target)
		}
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("backend called %d times for empty searches", hits)
	}

	_, body := get(t, app, "/")
	if !strings.Contains(body, `value="New Delhi"`) {
		t.Fatalf("default location not pre-filled")
	}
}

func TestIndexRendersSuccess(t *testing.T) {
	backend := newBackend(t, nil, nethttp.StatusOK, tokyoBody)
	status, body := get(t, newApp(backend.URL), "/?location=Tokyo")
	if status != nethttp.StatusOK {
		t.Fatalf("status = %d", status)
	}
	for _, want := range []string{
		`data-key="Tokyo"`,
		`<div class="temperature">21°C</div>`,
		`Feels like 20°C`,
		`— m/s`,
		`Light jacket`,
		`Mild evening chill`,
		`value="Tokyo"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestIndexRendersServerError(t *testing.T) {
	backend := newBackend(t, nil, nethttp.StatusInternalServerError, `{"detail":"boom"}`)
	status, body := get(t, newApp(backend.URL), "/?location=Paris")
	if status != nethttp.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, `<div class="error">Server error: 500</div>`) {
		t.Fatalf("error notice missing:\n%s", body)
	}
	if strings.Contains(body, `class="weather"`) {
		t.Fatalf("result shown alongside error")
	}
}

func TestProxyWeatherRelaysBackend(t *testing.T) {
	var gotQuery atomic.Value
	backend := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotQuery.Store(r.URL.Query().Get("location"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, tokyoBody)
	}))
	defer backend.Close()

	status, body := get(t, newApp(backend.URL), "/api/weather?location=New%20Delhi")
	if status != nethttp.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body != tokyoBody {
		t.Fatalf("body = %s", body)
	}
	if q, _ := gotQuery.Load().(string); q != "New Delhi" {
		t.Fatalf("backend saw location %q", q)
	}
}

func TestProxyWeatherKeepsBackendStatus(t *testing.T) {
	backend := newBackend(t, nil, nethttp.StatusBadGateway, `{"detail":"Could not geocode location: Atlantis"}`)
	status, _ := get(t, newApp(backend.URL), "/api/weather?location=Atlantis")
	if status != nethttp.StatusBadGateway {
		t.Fatalf("status = %d, want 502", status)
	}
}

func TestProxyWeatherWithoutBackend(t *testing.T) {
	status, body := get(t, newApp(""), "/api/weather?location=Tokyo")
	if status != nethttp.StatusServiceUnavailable {
		t.Fatalf("status = %d", status)
	}
	var payload struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Error || payload.Message == "" {
		t.Fatalf("payload = %+v", payload)
	}
}
