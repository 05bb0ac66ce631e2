package weather

import (
	"math"
	"sort"
	"time"
)

// MaxForecastDays caps the daily series length.
const MaxForecastDays = 7

// keptSample tracks the best sample seen so far for one calendar date.
type keptSample struct {
	sample   ForecastSample
	local    time.Time
	noonDist int
}

// AggregateDaily collapses a 3-hourly sample series into at most maxDays
// daily entries. Samples are grouped by calendar date in the place's local
// time (utcOffset applied); per date the sample whose local hour is closest
// to 12:00 is retained, with ties favoring the first-seen sample. New dates
// stop being accepted once MaxForecastDays distinct dates are held. The
// result is sorted ascending by date with at most one entry per date.
func AggregateDaily(samples []ForecastSample, utcOffset time.Duration, maxDays int) []DailyForecast {
	if maxDays <= 0 || maxDays > MaxForecastDays {
		maxDays = MaxForecastDays
	}

	zone := time.FixedZone("local", int(utcOffset.Seconds()))
	kept := make(map[string]keptSample, maxDays)

	for _, s := range samples {
		local := s.Timestamp.In(zone)
		date := local.Format("2006-01-02")
		dist := local.Hour() - 12
		if dist < 0 {
			dist = -dist
		}

		held, ok := kept[date]
		if !ok {
			if len(kept) >= maxDays {
				continue
			}
			kept[date] = keptSample{sample: s, local: local, noonDist: dist}
			continue
		}
		if dist < held.noonDist {
			kept[date] = keptSample{sample: s, local: local, noonDist: dist}
		}
	}

	dates := make([]string, 0, len(kept))
	for date := range kept {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]DailyForecast, 0, len(dates))
	for _, date := range dates {
		days = append(days, toDaily(date, kept[date]))
	}
	return days
}

func toDaily(date string, k keptSample) DailyForecast {
	s := k.sample
	return DailyForecast{
		Date:         date,
		DayOfWeek:    k.local.Weekday().String(),
		Timestamp:    s.Timestamp.UTC(),
		Temperature:  s.Temperature,
		TempMin:      s.TempMin,
		TempMax:      s.TempMax,
		Humidity:     s.Humidity,
		WindKmh:      WindKmh(s.WindSpeed),
		WindDeg:      s.WindDeg,
		CloudScore:   CloudScore(s.CloudCover),
		PrecipMM:     s.RainMM + s.SnowMM,
		PrecipType:   PrecipTypeOf(s.RainMM, s.SnowMM),
		VisibilityKm: VisibilityKm(s.VisibilityM),
		Condition:    s.Condition,
	}
}

// WindKmh converts a wind speed from m/s to km/h.
func WindKmh(metersPerSec float64) float64 {
	return metersPerSec * 3.6
}

// VisibilityKm converts visibility from meters to kilometers.
func VisibilityKm(meters float64) float64 {
	return meters / 1000
}

// CloudScore maps a cloud-cover percentage onto a rounded 0-10 scale.
func CloudScore(percent float64) int {
	score := int(math.Round(percent / 10))
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// PrecipTypeOf labels precipitation with snow taking precedence over rain.
func PrecipTypeOf(rainMM, snowMM float64) PrecipType {
	switch {
	case snowMM > 0:
		return PrecipSnow
	case rainMM > 0:
		return PrecipRain
	default:
		return PrecipNone
	}
}
