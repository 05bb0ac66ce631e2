package weather

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/geo"
)

// SourceDemo marks forecasts synthesized locally instead of fetched upstream.
const SourceDemo = "demo"

// DemoSamples generates a deterministic synthetic 3-hourly series covering
// eight days, seeded from the location key so repeated requests for the same
// place produce identical demo forecasts.
func DemoSamples(loc geo.Location, now time.Time) []ForecastSample {
	h := fnv.New64a()
	h.Write([]byte(loc.Key()))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	// Colder away from the equator, with a mild random local bias.
	baseTemp := 28 - math.Abs(loc.Lat)*0.45 + rng.Float64()*6 - 3

	start := now.UTC().Truncate(3 * time.Hour)
	const count = 8 * 8 // eight days of 3-hourly samples

	samples := make([]ForecastSample, 0, count)
	for i := 0; i < count; i++ {
		ts := start.Add(time.Duration(i) * 3 * time.Hour)

		// Diurnal swing plus noise.
		hour := float64(ts.Hour())
		swing := 4 * math.Sin((hour-9)*math.Pi/12)
		temp := baseTemp + swing + rng.Float64()*2 - 1

		cloud := rng.Float64() * 100
		var rainMM, snowMM float64
		cond := ConditionClear
		switch {
		case cloud > 85 && temp <= 0:
			snowMM = round1(rng.Float64() * 3)
			cond = ConditionSnow
		case cloud > 85:
			rainMM = round1(rng.Float64() * 4)
			cond = ConditionRain
		case cloud > 40:
			cond = ConditionCloudy
		}

		samples = append(samples, ForecastSample{
			Timestamp:   ts,
			Temperature: round1(temp),
			TempMin:     round1(temp - 1 - rng.Float64()*2),
			TempMax:     round1(temp + 1 + rng.Float64()*2),
			Humidity:    round1(40 + rng.Float64()*50),
			WindSpeed:   round1(rng.Float64() * 12),
			WindDeg:     float64(rng.Intn(360)),
			CloudCover:  round1(cloud),
			RainMM:      rainMM,
			SnowMM:      snowMM,
			VisibilityM: 10000 - cloud*60,
			Condition:   cond,
		})
	}
	return samples
}

// DemoOffset approximates a UTC offset from the longitude, one hour per
// 15 degrees.
func DemoOffset(lon float64) time.Duration {
	return time.Duration(math.Round(lon/15)) * time.Hour
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
