package geo

import (
	"context"
	"log"
)

// CatalogGeocoder serves search and reverse lookups from the bundled city
// catalog. It never fails and needs no credential, so it terminates every
// geocoder chain.
type CatalogGeocoder struct{}

func NewCatalogGeocoder() *CatalogGeocoder {
	return &CatalogGeocoder{}
}

func (c *CatalogGeocoder) Name() string {
	return "catalog"
}

func (c *CatalogGeocoder) Search(_ context.Context, query string, limit int) ([]Location, error) {
	return SearchCatalog(query, limit), nil
}

func (c *CatalogGeocoder) Reverse(_ context.Context, lat, lon float64) (Location, error) {
	return NearestCatalog(lat, lon), nil
}

// Chain tries geocoders in order and returns the first useful answer.
// Failures are logged and the next geocoder is consulted, so a chain ending
// in the catalog degrades instead of erroring.
type Chain struct {
	geocoders []Geocoder
}

func NewChain(geocoders ...Geocoder) *Chain {
	return &Chain{geocoders: geocoders}
}

func (c *Chain) Name() string {
	return "chain"
}

func (c *Chain) Search(ctx context.Context, query string, limit int) ([]Location, error) {
	var lastErr error
	for _, g := range c.geocoders {
		locations, err := g.Search(ctx, query, limit)
		if err != nil {
			log.Printf("geocoder %s search failed for %q: %v", g.Name(), query, err)
			lastErr = err
			continue
		}
		if len(locations) > 0 {
			return locations, nil
		}
		// An empty result from a working geocoder is a real answer only
		// when no later geocoder can do better.
		lastErr = nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}

func (c *Chain) Reverse(ctx context.Context, lat, lon float64) (Location, error) {
	var lastErr error
	for _, g := range c.geocoders {
		loc, err := g.Reverse(ctx, lat, lon)
		if err != nil {
			log.Printf("geocoder %s reverse failed for %.4f,%.4f: %v", g.Name(), lat, lon, err)
			lastErr = err
			continue
		}
		return loc, nil
	}
	if lastErr != nil {
		return Location{}, lastErr
	}
	return Location{}, ErrNotFound
}
