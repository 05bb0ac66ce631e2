package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRoundTripper routes every outbound request into an in-process handler.
type mockRoundTripper struct {
	handler http.Handler
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	m.handler.ServeHTTP(rec, req)
	return rec.Result(), nil
}

func mockClient(handler http.Handler) *http.Client {
	return &http.Client{Transport: &mockRoundTripper{handler: handler}}
}

func TestOpenWeatherFetchSamples(t *testing.T) {
	payload := map[string]interface{}{
		"list": []map[string]interface{}{
			{
				"dt":   int64(1772355600), // 2026-03-01 09:00:00 UTC
				"main": map[string]float64{"temp": 7.5, "temp_min": 6.1, "temp_max": 8.2, "humidity": 81},
				"wind": map[string]float64{"speed": 10, "deg": 230},
				"clouds": map[string]float64{"all": 55},
				"rain":   map[string]float64{"3h": 1.2},
				"snow":   map[string]float64{"3h": 0.3},
				"visibility": 8000,
				"weather":    []map[string]string{{"main": "Rain"}},
			},
		},
		"city": map[string]interface{}{
			"name": "Paris", "country": "FR", "timezone": 7200,
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "test-key", q.Get("appid"))
		assert.NotEmpty(t, q.Get("lat"))
		assert.NotEmpty(t, q.Get("lon"))
		json.NewEncoder(w).Encode(payload)
	})

	p := NewOpenWeatherProvider(mockClient(handler), "test-key")
	series, err := p.FetchSamples(context.Background(), 48.85, 2.35)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, series.UTCOffset)
	assert.Equal(t, "Paris", series.City)
	assert.Equal(t, "FR", series.Country)

	require.Len(t, series.Samples, 1)
	s := series.Samples[0]
	assert.Equal(t, time.Unix(1772355600, 0).UTC(), s.Timestamp)
	assert.Equal(t, 7.5, s.Temperature)
	assert.Equal(t, 81.0, s.Humidity)
	assert.Equal(t, 10.0, s.WindSpeed)
	assert.Equal(t, 55.0, s.CloudCover)
	assert.Equal(t, 1.2, s.RainMM)
	assert.Equal(t, 0.3, s.SnowMM)
	assert.Equal(t, 8000.0, s.VisibilityM)
}

func TestOpenWeatherFetchSamplesRequiresKey(t *testing.T) {
	p := NewOpenWeatherProvider(mockClient(http.NotFoundHandler()), "")
	_, err := p.FetchSamples(context.Background(), 0, 0)
	require.Error(t, err)
}

func TestOpenWeatherFetchSamplesBadStatus(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	p := NewOpenWeatherProvider(mockClient(handler), "bad-key")
	_, err := p.FetchSamples(context.Background(), 0, 0)
	require.Error(t, err)
}

func TestMapOpenWeatherCondition(t *testing.T) {
	wrap := func(main string) []struct {
		Main string `json:"main"`
	} {
		return []struct {
			Main string `json:"main"`
		}{{Main: main}}
	}

	assert.Equal(t, "clear", string(mapOpenWeatherCondition(wrap("Clear"))))
	assert.Equal(t, "rain", string(mapOpenWeatherCondition(wrap("Drizzle"))))
	assert.Equal(t, "storm", string(mapOpenWeatherCondition(wrap("Thunderstorm"))))
	assert.Equal(t, "mist", string(mapOpenWeatherCondition(wrap("Fog"))))
	assert.Equal(t, "unknown", string(mapOpenWeatherCondition(nil)))
}
