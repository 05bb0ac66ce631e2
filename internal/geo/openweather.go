package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"
)

// OpenWeatherGeocoder resolves locations through the OpenWeatherMap
// geocoding API. Outbound calls go through a token-bucket limiter so that
// bursts of incremental search requests cannot exhaust the API quota.
type OpenWeatherGeocoder struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewOpenWeatherGeocoder creates a geocoder backed by OpenWeatherMap.
// callsPerSec and burst bound the outbound request rate.
func NewOpenWeatherGeocoder(client *http.Client, apiKey string, callsPerSec float64, burst int) *OpenWeatherGeocoder {
	if callsPerSec <= 0 {
		callsPerSec = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &OpenWeatherGeocoder{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/geo/1.0",
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(callsPerSec), burst),
	}
}

func (g *OpenWeatherGeocoder) Name() string {
	return g.name
}

// owmPlace mirrors one element of the geocoding API response.
type owmPlace struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (g *OpenWeatherGeocoder) Search(ctx context.Context, query string, limit int) ([]Location, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("limit", strconv.Itoa(limit))

	places, err := g.get(ctx, g.baseURL+"/direct", values)
	if err != nil {
		return nil, err
	}

	locations := make([]Location, 0, len(places))
	for _, p := range places {
		locations = append(locations, p.location())
	}
	return locations, nil
}

func (g *OpenWeatherGeocoder) Reverse(ctx context.Context, lat, lon float64) (Location, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("limit", "1")

	places, err := g.get(ctx, g.baseURL+"/reverse", values)
	if err != nil {
		return Location{}, err
	}
	if len(places) == 0 {
		return Location{}, ErrNotFound
	}
	return places[0].location(), nil
}

func (g *OpenWeatherGeocoder) get(ctx context.Context, endpoint string, values url.Values) ([]owmPlace, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	values.Set("appid", g.apiKey)
	u := fmt.Sprintf("%s?%s", endpoint, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	var places []owmPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, err
	}
	return places, nil
}

func (p owmPlace) location() Location {
	return Location{
		Name:      p.Name,
		Country:   p.Country,
		State:     p.State,
		Continent: ContinentOf(p.Country),
		Lat:       p.Lat,
		Lon:       p.Lon,
	}
}
