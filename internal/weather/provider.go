package weather

import (
	"context"
	"time"
)

// SampleSeries is a provider's raw forecast output: the 3-hourly samples
// plus the place metadata the upstream reports alongside them.
type SampleSeries struct {
	Samples   []ForecastSample
	UTCOffset time.Duration
	City      string
	Country   string
}

// ForecastProvider abstracts an upstream forecast service.
type ForecastProvider interface {
	Name() string
	// FetchSamples returns the raw 3-hourly series for a coordinate.
	FetchSamples(ctx context.Context, lat, lon float64) (SampleSeries, error)
}
