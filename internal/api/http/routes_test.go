package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/geo"
	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/weather"
)

// newTestApp builds an app backed by the bundled catalog and demo data only,
// so tests never touch the network.
func newTestApp() *fiber.App {
	app := fiber.New()
	svc := weather.NewService(geo.NewChain(geo.NewCatalogGeocoder()), nil)
	RegisterRoutes(app, svc, Options{SuggestLimit: 8})
	return app
}

func TestSuggestValidation(t *testing.T) {
	app := newTestApp()

	// Missing query should return 400.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/suggest", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// Out-of-range limit should also return 400.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/locations/suggest?q=paris&limit=50", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestSuggestReturnsCatalogMatches(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/suggest?q=lond", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		Query   string         `json:"query"`
		Results []geo.Location `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Results) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	if body.Results[0].Name != "London" {
		t.Fatalf("expected London, got %s", body.Results[0].Name)
	}
}

func TestSuggestNoMatchesIsEmptyList(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/suggest?q=zzzzzz", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		Results []geo.Location `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Results == nil || len(body.Results) != 0 {
		t.Fatalf("expected empty results list, got %v", body.Results)
	}
}

func TestReverseValidation(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/reverse?lat=91&lon=0", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/locations/reverse?lat=48.85", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestReverseResolvesNearestCity(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/reverse?lat=48.85&lon=2.35", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var loc geo.Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if loc.Name != "Paris" {
		t.Fatalf("expected Paris, got %s", loc.Name)
	}
}

func TestForecastDaysValidation(t *testing.T) {
	app := newTestApp()

	// Out-of-range days value should return 400.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast/daily?lat=48.85&lon=2.35&days=8", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// Missing coordinates should return 400.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/forecast/daily?days=5", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestForecastDegradesToDemo(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast/daily?lat=52.52&lon=13.4&name=Berlin&country=DE&days=5", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var fc weather.Forecast
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if fc.Source != weather.SourceDemo {
		t.Fatalf("expected demo source, got %s", fc.Source)
	}
	if len(fc.Days) != 5 {
		t.Fatalf("expected 5 daily entries, got %d", len(fc.Days))
	}
	for i := 1; i < len(fc.Days); i++ {
		if fc.Days[i-1].Date >= fc.Days[i].Date {
			t.Fatalf("daily entries not sorted: %s before %s", fc.Days[i-1].Date, fc.Days[i].Date)
		}
	}
	if fc.Location.Name != "Berlin" || fc.Location.Continent != "Europe" {
		t.Fatalf("location metadata not echoed: %+v", fc.Location)
	}
}
