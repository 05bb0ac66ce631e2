package geo

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a query resolves to no location.
var ErrNotFound = errors.New("no location found")

// Geocoder resolves free-text place names and coordinates.
type Geocoder interface {
	Name() string
	// Search returns up to limit locations matching a free-text query.
	Search(ctx context.Context, query string, limit int) ([]Location, error)
	// Reverse resolves a coordinate to the nearest known place.
	Reverse(ctx context.Context, lat, lon float64) (Location, error)
}
