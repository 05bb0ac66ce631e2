package httpapi

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/geo"
	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/weather"
)

var validate = validator.New()

// Options tune route behavior.
type Options struct {
	// SuggestLimit is the default suggestion count when the client sends
	// no limit parameter.
	SuggestLimit int
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, opts Options) {
	if opts.SuggestLimit <= 0 {
		opts.SuggestLimit = 8
	}

	v1 := app.Group("/api/v1")

	v1.Get("/locations/suggest", func(c *fiber.Ctx) error {
		var req suggestQuery
		if err := req.bind(c, opts.SuggestLimit); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		locations, err := service.Suggest(c.Context(), req.Query, req.Limit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to search locations")
		}
		if locations == nil {
			locations = []geo.Location{}
		}

		return c.JSON(fiber.Map{
			"query":   req.Query,
			"results": locations,
		})
	})

	v1.Get("/locations/reverse", func(c *fiber.Ctx) error {
		coord, err := parseCoordQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc, err := service.Reverse(c.Context(), coord.Lat, coord.Lon)
		if err != nil {
			if errors.Is(err, geo.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no location found for coordinate")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to resolve coordinate")
		}

		return c.JSON(loc)
	})

	v1.Get("/forecast/daily", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := service.DailyForecast(c.Context(), req.toLocation(), req.Days)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build forecast")
		}

		return c.JSON(forecast)
	})
}

// suggestQuery holds parameters for the incremental city search.
type suggestQuery struct {
	Query string `validate:"required,min=1"`
	Limit int    `validate:"gte=1,lte=20"`
}

func (q *suggestQuery) bind(c *fiber.Ctx, defaultLimit int) error {
	q.Query = c.Query("q")
	q.Limit = defaultLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid limit: %q", s)
		}
		q.Limit = n
	}
	return validate.Struct(q)
}

// coordQuery holds a validated latitude/longitude pair.
type coordQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func parseCoordQuery(c *fiber.Ctx) (coordQuery, error) {
	var q coordQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, fmt.Errorf("invalid lat: %q", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, fmt.Errorf("invalid lon: %q", lonStr)
	}

	q.Lat = lat
	q.Lon = lon
	return q, validate.Struct(q)
}

// forecastQuery holds parameters for the daily forecast endpoint.
type forecastQuery struct {
	Coord   coordQuery
	Days    int    `validate:"gte=1,lte=7"`
	Name    string // optional echo-through place metadata
	Country string
}

func (q *forecastQuery) bind(c *fiber.Ctx) error {
	coord, err := parseCoordQuery(c)
	if err != nil {
		return err
	}
	q.Coord = coord

	q.Days = weather.MaxForecastDays
	if s := c.Query("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid days: %q", s)
		}
		q.Days = n
	}

	q.Name = c.Query("name")
	q.Country = c.Query("country")
	return validate.Struct(q)
}

func (q forecastQuery) toLocation() geo.Location {
	return geo.Location{
		Name:      q.Name,
		Country:   q.Country,
		Continent: geo.ContinentOf(q.Country),
		Lat:       q.Coord.Lat,
		Lon:       q.Coord.Lon,
	}
}
