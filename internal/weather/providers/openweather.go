package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/weather"
)

// OpenWeatherProvider fetches the OpenWeatherMap 5-day / 3-hour forecast.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	retry   retryPolicy
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/forecast",
		client:  client,
		retry:   defaultRetry,
		circuit: newBreaker("openweathermap"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// owmForecastPayload mirrors the parts of the forecast response we consume.
// Rain/snow amounts arrive in "3h" sub-objects; visibility is in meters.
type owmForecastPayload struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   float64 `json:"deg"`
		} `json:"wind"`
		Clouds struct {
			All float64 `json:"all"`
		} `json:"clouds"`
		Rain struct {
			ThreeH float64 `json:"3h"`
		} `json:"rain"`
		Snow struct {
			ThreeH float64 `json:"3h"`
		} `json:"snow"`
		Visibility float64 `json:"visibility"`
		Weather    []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int64  `json:"timezone"` // shift from UTC in seconds
	} `json:"city"`
}

func (p *OpenWeatherProvider) FetchSamples(ctx context.Context, lat, lon float64) (weather.SampleSeries, error) {
	if p.apiKey == "" {
		return weather.SampleSeries{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("units", "metric")
	values.Set("appid", p.apiKey)

	resp, err := fetchJSON(ctx, p.client, p.circuit, p.retry, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()))
	if err != nil {
		return weather.SampleSeries{}, err
	}
	defer resp.Body.Close()

	var payload owmForecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.SampleSeries{}, err
	}

	samples := make([]weather.ForecastSample, 0, len(payload.List))
	for _, item := range payload.List {
		samples = append(samples, weather.ForecastSample{
			Timestamp:   time.Unix(item.Dt, 0).UTC(),
			Temperature: item.Main.Temp,
			TempMin:     item.Main.TempMin,
			TempMax:     item.Main.TempMax,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
			WindDeg:     item.Wind.Deg,
			CloudCover:  item.Clouds.All,
			RainMM:      item.Rain.ThreeH,
			SnowMM:      item.Snow.ThreeH,
			VisibilityM: item.Visibility,
			Condition:   mapOpenWeatherCondition(item.Weather),
		})
	}

	return weather.SampleSeries{
		Samples:   samples,
		UTCOffset: time.Duration(payload.City.Timezone) * time.Second,
		City:      payload.City.Name,
		Country:   payload.City.Country,
	}, nil
}

func mapOpenWeatherCondition(items []struct {
	Main string `json:"main"`
}) weather.Condition {
	if len(items) == 0 {
		return weather.ConditionUnknown
	}
	switch items[0].Main {
	case "Clear":
		return weather.ConditionClear
	case "Clouds":
		return weather.ConditionCloudy
	case "Rain", "Drizzle":
		return weather.ConditionRain
	case "Snow":
		return weather.ConditionSnow
	case "Thunderstorm":
		return weather.ConditionStorm
	case "Mist", "Fog", "Haze":
		return weather.ConditionMist
	default:
		return weather.ConditionUnknown
	}
}
