package geo

import (
	"context"
	"fmt"

	"github.com/kelvins/geocoder"
)

// GoogleGeocoder resolves locations through the Google Geocoding API via the
// kelvins/geocoder bindings. Requires a Google API key.
type GoogleGeocoder struct {
	name string
}

// NewGoogleGeocoder configures the shared geocoder API key and returns the
// provider.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	geocoder.ApiKey = apiKey
	return &GoogleGeocoder{name: "google"}
}

func (g *GoogleGeocoder) Name() string {
	return g.name
}

// Search geocodes the query as a city name. The upstream returns a single
// best match, so the result list has at most one entry.
func (g *GoogleGeocoder) Search(ctx context.Context, query string, limit int) ([]Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}

	point, err := geocoder.Geocoding(geocoder.Address{City: query})
	if err != nil {
		return nil, fmt.Errorf("google geocoding failed: %w", err)
	}

	loc, err := g.Reverse(ctx, point.Latitude, point.Longitude)
	if err != nil {
		return nil, err
	}
	return []Location{loc}, nil
}

func (g *GoogleGeocoder) Reverse(ctx context.Context, lat, lon float64) (Location, error) {
	if err := ctx.Err(); err != nil {
		return Location{}, err
	}

	addresses, err := geocoder.GeocodingReverse(geocoder.Location{Latitude: lat, Longitude: lon})
	if err != nil {
		return Location{}, fmt.Errorf("google reverse geocoding failed: %w", err)
	}
	if len(addresses) == 0 {
		return Location{}, ErrNotFound
	}

	addr := addresses[0]
	name := addr.City
	if name == "" {
		name = addr.County
	}
	code := CountryCode(addr.Country)

	return Location{
		Name:      name,
		Country:   code,
		State:     addr.State,
		Continent: ContinentOf(code),
		Lat:       lat,
		Lon:       lon,
	}, nil
}
