package weather

import (
	"context"
	"log"
	"time"

	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/geo"
)

// Service orchestrates geocoding, forecast fetching and daily aggregation.
// Providers are tried in order; if every provider fails the service degrades
// to deterministic demo data rather than returning an error.
type Service struct {
	geocoder  geo.Geocoder
	providers []ForecastProvider
	now       func() time.Time
}

// NewService creates a new Service.
func NewService(geocoder geo.Geocoder, providers []ForecastProvider) *Service {
	return &Service{
		geocoder:  geocoder,
		providers: providers,
		now:       time.Now,
	}
}

// Suggest resolves a free-text query to location suggestions.
func (s *Service) Suggest(ctx context.Context, query string, limit int) ([]geo.Location, error) {
	return s.geocoder.Search(ctx, query, limit)
}

// Reverse resolves a coordinate to the nearest known place.
func (s *Service) Reverse(ctx context.Context, lat, lon float64) (geo.Location, error) {
	return s.geocoder.Reverse(ctx, lat, lon)
}

// DailyForecast fetches the raw 3-hourly series for a location and collapses
// it into at most days daily entries.
func (s *Service) DailyForecast(ctx context.Context, loc geo.Location, days int) (Forecast, error) {
	if days <= 0 || days > MaxForecastDays {
		days = MaxForecastDays
	}

	for _, p := range s.providers {
		series, err := p.FetchSamples(ctx, loc.Lat, loc.Lon)
		if err != nil {
			log.Printf("provider %s forecast failed for %s: %v", p.Name(), loc.Key(), err)
			continue
		}
		if len(series.Samples) == 0 {
			log.Printf("provider %s returned no samples for %s", p.Name(), loc.Key())
			continue
		}

		daily := AggregateDaily(series.Samples, series.UTCOffset, days)
		if len(daily) == 0 {
			continue
		}

		// Prefer the upstream's place metadata when our location lacks it.
		if loc.Name == "" {
			loc.Name = series.City
		}
		if loc.Country == "" {
			loc.Country = series.Country
			loc.Continent = geo.ContinentOf(series.Country)
		}

		return Forecast{Location: loc, Source: p.Name(), Days: daily}, nil
	}

	log.Printf("all providers failed for %s; serving demo forecast", loc.Key())
	samples := DemoSamples(loc, s.now())
	daily := AggregateDaily(samples, DemoOffset(loc.Lon), days)
	return Forecast{Location: loc, Source: SourceDemo, Days: daily}, nil
}
