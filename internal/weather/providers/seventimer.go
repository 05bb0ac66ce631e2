package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/weather"
)

// SevenTimerProvider fetches the keyless 7Timer civil forecast product,
// which delivers 3-hourly timepoints on coded scales. It serves as the
// upstream of last resort before demo data when no API key is configured.
type SevenTimerProvider struct {
	name    string
	baseURL string
	client  *http.Client
	retry   retryPolicy
	circuit *gobreaker.CircuitBreaker
}

func NewSevenTimerProvider(client *http.Client) *SevenTimerProvider {
	return &SevenTimerProvider{
		name:    "7timer",
		baseURL: "https://www.7timer.info/bin/civil.php",
		client:  client,
		retry:   defaultRetry,
		circuit: newBreaker("7timer"),
	}
}

func (p *SevenTimerProvider) Name() string {
	return p.name
}

// sevenTimerPayload mirrors the civil product response. The init field is
// the model run time as "2006010215"; timepoints are hour offsets from it.
type sevenTimerPayload struct {
	Init       string `json:"init"`
	DataSeries []struct {
		Timepoint  int     `json:"timepoint"`
		CloudCover int     `json:"cloudcover"` // 1-9 scale
		PrecType   string  `json:"prec_type"`  // none/rain/snow/frzr/icep
		PrecAmount int     `json:"prec_amount"`
		Temp2M     float64 `json:"temp2m"`
		RH2M       string  `json:"rh2m"` // "85%"
		Wind10M    struct {
			Direction string `json:"direction"`
			Speed     int    `json:"speed"` // 1-8 scale
		} `json:"wind10m"`
		Weather string `json:"weather"`
	} `json:"dataseries"`
}

func (p *SevenTimerProvider) FetchSamples(ctx context.Context, lat, lon float64) (weather.SampleSeries, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("ac", "0")
	values.Set("unit", "metric")
	values.Set("output", "json")
	values.Set("tzshift", "0")

	resp, err := fetchJSON(ctx, p.client, p.circuit, p.retry, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()))
	if err != nil {
		return weather.SampleSeries{}, err
	}
	defer resp.Body.Close()

	var payload sevenTimerPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.SampleSeries{}, err
	}

	init, err := time.ParseInLocation("2006010215", payload.Init, time.UTC)
	if err != nil {
		return weather.SampleSeries{}, fmt.Errorf("invalid init timestamp %q: %w", payload.Init, err)
	}

	samples := make([]weather.ForecastSample, 0, len(payload.DataSeries))
	for _, tp := range payload.DataSeries {
		precipMM := sevenTimerPrecipMM(tp.PrecAmount)
		var rainMM, snowMM float64
		switch tp.PrecType {
		case "snow", "frzr", "icep":
			snowMM = precipMM
		case "rain":
			rainMM = precipMM
		}

		samples = append(samples, weather.ForecastSample{
			Timestamp:   init.Add(time.Duration(tp.Timepoint) * time.Hour),
			Temperature: tp.Temp2M,
			TempMin:     tp.Temp2M,
			TempMax:     tp.Temp2M,
			Humidity:    parsePercent(tp.RH2M),
			WindSpeed:   sevenTimerWindMS(tp.Wind10M.Speed),
			WindDeg:     compassDegrees(tp.Wind10M.Direction),
			CloudCover:  sevenTimerCloudPercent(tp.CloudCover),
			RainMM:      rainMM,
			SnowMM:      snowMM,
			Condition:   mapSevenTimerCondition(tp.Weather),
		})
	}

	// The civil product carries no place metadata and reports in UTC.
	return weather.SampleSeries{Samples: samples}, nil
}

// sevenTimerCloudPercent maps the 1-9 cloud-cover code to a band midpoint.
func sevenTimerCloudPercent(code int) float64 {
	bands := []float64{0, 3, 12, 25, 37, 50, 62, 75, 87, 97}
	if code < 1 || code >= len(bands) {
		return 0
	}
	return bands[code]
}

// sevenTimerWindMS maps the 1-8 wind-speed code to a representative m/s value.
func sevenTimerWindMS(code int) float64 {
	speeds := []float64{0, 0.2, 1.8, 5.7, 9.4, 14, 20.8, 28.5, 35}
	if code < 1 || code >= len(speeds) {
		return 0
	}
	return speeds[code]
}

// sevenTimerPrecipMM maps the 0-9 precipitation-amount code to millimeters.
func sevenTimerPrecipMM(code int) float64 {
	amounts := []float64{0, 0.1, 0.6, 2.5, 7, 17.5, 37.5, 75, 175, 300}
	if code < 0 || code >= len(amounts) {
		return 0
	}
	return amounts[code]
}

func parsePercent(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0
	}
	return v
}

// compassDegrees converts a 16-point compass label to degrees.
func compassDegrees(dir string) float64 {
	points := []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	dir = strings.ToUpper(strings.TrimSpace(dir))
	for i, p := range points {
		if p == dir {
			return float64(i) * 22.5
		}
	}
	return 0
}

func mapSevenTimerCondition(label string) weather.Condition {
	label = strings.ToLower(strings.TrimSuffix(strings.TrimSuffix(label, "day"), "night"))
	switch {
	case label == "":
		return weather.ConditionUnknown
	// Snow first: "lightsnow" would otherwise match the "ts" storm code.
	case hasAny(label, "snow"):
		return weather.ConditionSnow
	case hasAny(label, "ts"):
		return weather.ConditionStorm
	case hasAny(label, "rain", "shower"):
		return weather.ConditionRain
	case hasAny(label, "fog", "humid"):
		return weather.ConditionMist
	case hasAny(label, "cloudy"):
		return weather.ConditionCloudy
	case hasAny(label, "clear"):
		return weather.ConditionClear
	default:
		return weather.ConditionUnknown
	}
}

// hasAny reports whether s contains any of the substrings.
func hasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
