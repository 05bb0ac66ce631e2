package providers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/weather"
)

func TestSevenTimerFetchSamples(t *testing.T) {
	body := `{
		"product": "civil",
		"init": "2026030100",
		"dataseries": [
			{
				"timepoint": 3,
				"cloudcover": 9,
				"prec_type": "rain",
				"prec_amount": 3,
				"temp2m": 12,
				"rh2m": "85%",
				"wind10m": {"direction": "SW", "speed": 3},
				"weather": "lightrainday"
			},
			{
				"timepoint": 6,
				"cloudcover": 2,
				"prec_type": "snow",
				"prec_amount": 1,
				"temp2m": -2,
				"rh2m": "70%",
				"wind10m": {"direction": "N", "speed": 2},
				"weather": "lightsnownight"
			}
		]
	}`

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "json", q.Get("output"))
		assert.Equal(t, "civil.php", r.URL.Path[len(r.URL.Path)-9:])
		w.Write([]byte(body))
	})

	p := NewSevenTimerProvider(mockClient(handler))
	series, err := p.FetchSamples(context.Background(), 52.52, 13.4)
	require.NoError(t, err)
	require.Len(t, series.Samples, 2)

	init := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	first := series.Samples[0]
	assert.Equal(t, init.Add(3*time.Hour), first.Timestamp)
	assert.Equal(t, 12.0, first.Temperature)
	assert.Equal(t, 85.0, first.Humidity)
	assert.Equal(t, 2.5, first.RainMM)
	assert.Equal(t, 0.0, first.SnowMM)
	assert.Equal(t, 225.0, first.WindDeg)
	assert.Equal(t, weather.ConditionRain, first.Condition)
	assert.InDelta(t, 97, first.CloudCover, 1)

	second := series.Samples[1]
	assert.Equal(t, init.Add(6*time.Hour), second.Timestamp)
	assert.Equal(t, 0.0, second.RainMM)
	assert.Equal(t, 0.1, second.SnowMM)
	assert.Equal(t, weather.ConditionSnow, second.Condition)
}

func TestSevenTimerRejectsBadInit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"init": "not-a-time", "dataseries": []}`))
	})

	p := NewSevenTimerProvider(mockClient(handler))
	_, err := p.FetchSamples(context.Background(), 0, 0)
	require.Error(t, err)
}

func TestMapSevenTimerCondition(t *testing.T) {
	assert.Equal(t, weather.ConditionClear, mapSevenTimerCondition("clearday"))
	assert.Equal(t, weather.ConditionCloudy, mapSevenTimerCondition("mcloudynight"))
	assert.Equal(t, weather.ConditionRain, mapSevenTimerCondition("oshowerday"))
	assert.Equal(t, weather.ConditionSnow, mapSevenTimerCondition("lightsnowday"))
	assert.Equal(t, weather.ConditionStorm, mapSevenTimerCondition("tsrainday"))
	assert.Equal(t, weather.ConditionMist, mapSevenTimerCondition("humidday"))
	assert.Equal(t, weather.ConditionUnknown, mapSevenTimerCondition(""))
}

func TestCompassDegrees(t *testing.T) {
	assert.Equal(t, 0.0, compassDegrees("N"))
	assert.Equal(t, 90.0, compassDegrees("E"))
	assert.Equal(t, 225.0, compassDegrees("sw"))
	assert.Equal(t, 0.0, compassDegrees("??"))
}
