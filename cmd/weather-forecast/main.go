package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	httpapi "github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/api/http"
	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/config"
	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/geo"
	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/weather"
	"github.com/ledidk/EuropeanWeatherForecastAppwith7TimerAPI/internal/weather/providers"
)

func main() {
	// Load configuration (reads .env when present).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound upstream calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Geocoder chain: configured upstreams first, bundled catalog last so
	// search always answers even with no credentials or a dead network.
	var geocoders []geo.Geocoder
	if !cfg.DemoMode {
		if cfg.GoogleAPIKey != "" {
			geocoders = append(geocoders, geo.NewGoogleGeocoder(cfg.GoogleAPIKey))
		}
		if cfg.OpenWeatherAPIKey != "" {
			geocoders = append(geocoders, geo.NewOpenWeatherGeocoder(
				httpClient, cfg.OpenWeatherAPIKey, cfg.GeocodeCallsPerSec, cfg.GeocodeBurst))
		}
	}
	geocoders = append(geocoders, geo.NewCatalogGeocoder())

	// Forecast providers in preference order; the service degrades to demo
	// data when every provider fails.
	var provs []weather.ForecastProvider
	if !cfg.DemoMode {
		if cfg.OpenWeatherAPIKey != "" {
			provs = append(provs, providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey))
		}
		provs = append(provs, providers.NewSevenTimerProvider(httpClient))
	}

	service := weather.NewService(geo.NewChain(geocoders...), provs)

	app := fiber.New(fiber.Config{
		AppName:               "weather-forecast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-forecast",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, httpapi.Options{SuggestLimit: cfg.SuggestLimit})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
