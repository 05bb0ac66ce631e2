package weather

import (
	"time"

	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/geo"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// PrecipType labels the dominant precipitation of a sample.
type PrecipType string

const (
	PrecipNone PrecipType = "none"
	PrecipRain PrecipType = "rain"
	PrecipSnow PrecipType = "snow"
)

// ForecastSample is one raw timestamped reading as delivered by an upstream
// forecast service, at 3-hour resolution. Units are the upstream's native
// metric units: m/s wind, meters visibility, percent cloud cover.
type ForecastSample struct {
	Timestamp   time.Time
	Temperature float64
	TempMin     float64
	TempMax     float64
	Humidity    float64
	WindSpeed   float64 // m/s
	WindDeg     float64
	CloudCover  float64 // percent 0-100
	RainMM      float64
	SnowMM      float64
	VisibilityM float64
	Condition   Condition
}

// DailyForecast is one representative entry per calendar day, derived from
// the sample closest to local noon, with unit-converted values.
type DailyForecast struct {
	Date         string     `json:"date"` // local calendar date, 2006-01-02
	DayOfWeek    string     `json:"dayOfWeek"`
	Timestamp    time.Time  `json:"timestamp"` // the retained sample's time, UTC
	Temperature  float64    `json:"temperatureC"`
	TempMin      float64    `json:"tempMinC"`
	TempMax      float64    `json:"tempMaxC"`
	Humidity     float64    `json:"humidityPercent"`
	WindKmh      float64    `json:"windKmh"`
	WindDeg      float64    `json:"windDeg"`
	CloudScore   int        `json:"cloudScore"` // 0-10 scale
	PrecipMM     float64    `json:"precipMm"`
	PrecipType   PrecipType `json:"precipType"`
	VisibilityKm float64    `json:"visibilityKm"`
	Condition    Condition  `json:"condition"`
}

// Forecast is the daily series for one location, tagged with the source
// that produced it so clients can surface demo-data banners.
type Forecast struct {
	Location geo.Location    `json:"location"`
	Source   string          `json:"source"`
	Days     []DailyForecast `json:"days"`
}
