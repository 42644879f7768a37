package weather

import (
	"fmt"
	"log/slog"

	"tourmate/internal/providers/openmeteo"
	"tourmate/internal/types"
)

// ForecastProvider defines the interface for current-weather providers
type ForecastProvider interface {
	GetCurrentForecast(latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error)
}

// Service fetches a weather snapshot for a coordinate
type Service interface {
	Fetch(coords types.Coords) (*types.WeatherSnapshot, error)
}

// weatherService implements the Service interface
type weatherService struct {
	forecastProvider ForecastProvider
	logger           *slog.Logger
}

// NewService creates a weather service backed by the real Open-Meteo client
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(openmeteo.NewClient(logger), logger)
}

// NewServiceWithProvider creates a weather service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(forecastProvider ForecastProvider, logger *slog.Logger) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Fetch(coords types.Coords) (*types.WeatherSnapshot, error) {
	apiResp, err := s.forecastProvider.GetCurrentForecast(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return translateForecast(apiResp), nil
}

// translateForecast maps the API response to a snapshot. Either field can be
// missing upstream, so each is translated independently.
func translateForecast(apiResp *openmeteo.ForecastAPIResponse) *types.WeatherSnapshot {
	snapshot := &types.WeatherSnapshot{}

	if apiResp.CurrentWeather != nil {
		temp := apiResp.CurrentWeather.Temperature
		snapshot.TemperatureC = &temp
	}

	// Rain chance is the peak hourly precipitation probability for the day
	if len(apiResp.Hourly.PrecipitationProbability) > 0 {
		peak := apiResp.Hourly.PrecipitationProbability[0]
		for _, p := range apiResp.Hourly.PrecipitationProbability[1:] {
			if p > peak {
				peak = p
			}
		}
		snapshot.RainChancePercent = &peak
	}

	return snapshot
}
