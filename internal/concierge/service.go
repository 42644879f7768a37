package concierge

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tourmate/internal/config"
	"tourmate/internal/geocoding"
	"tourmate/internal/places"
	"tourmate/internal/query"
	"tourmate/internal/types"
	"tourmate/internal/weather"
)

// Fixed replies for the locally-recoverable outcomes. Anything else that
// goes wrong is an upstream failure and surfaces as an error.
const (
	replyAskForPlace  = "Please tell me which place you want to go."
	replyUnknownPlace = "I don't know this place exist."
)

// Service answers free-text trip questions
type Service interface {
	// HandleRequest composes a natural-language reply for one question.
	// A non-nil error means an upstream provider failed; the caller owns
	// turning that into a user-facing response.
	HandleRequest(text string) (string, error)
}

// conciergeService implements the Service interface
type conciergeService struct {
	geocodingService geocoding.Service
	weatherService   weather.Service
	placesService    places.Service
	placesLimit      int
	logger           *slog.Logger
}

// NewService creates a concierge wired to the real upstream providers
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	return NewServiceWithServices(
		geocoding.NewService(cfg, logger),
		weather.NewService(logger),
		places.NewService(logger),
		cfg.App.PlacesLimit,
		logger,
	)
}

// NewServiceWithServices creates a concierge with custom lookup services.
// This is useful for testing with deterministic fakes.
func NewServiceWithServices(
	geocodingService geocoding.Service,
	weatherService weather.Service,
	placesService places.Service,
	placesLimit int,
	logger *slog.Logger,
) Service {
	return &conciergeService{
		geocodingService: geocodingService,
		weatherService:   weatherService,
		placesService:    placesService,
		placesLimit:      placesLimit,
		logger:           logger.With("component", "concierge-service"),
	}
}

func (s *conciergeService) HandleRequest(text string) (string, error) {
	intent := query.Classify(text)
	place := query.ExtractPlace(text)

	s.logger.Debug("parsed trip question",
		"wants_weather", intent.WantsWeather,
		"wants_places", intent.WantsPlaces,
		"place_candidate", place,
	)

	if place == "" {
		return replyAskForPlace, nil
	}

	location, err := s.geocodingService.Resolve(place)
	if err != nil {
		if errors.Is(err, geocoding.ErrPlaceNotFound) {
			return replyUnknownPlace, nil
		}
		return "", fmt.Errorf("failed to resolve %q: %w", place, err)
	}

	var fragments []string

	if intent.WantsWeather {
		snapshot, err := s.weatherService.Fetch(location.Coordinates)
		if err != nil {
			return "", fmt.Errorf("failed to fetch weather for %q: %w", location.DisplayName, err)
		}
		fragments = append(fragments, weatherSentence(location.DisplayName, snapshot))
	}

	if intent.WantsPlaces {
		names, err := s.placesService.Fetch(location.Coordinates, s.placesLimit)
		if err != nil {
			return "", fmt.Errorf("failed to fetch places for %q: %w", location.DisplayName, err)
		}
		fragments = append(fragments, placesFragment(location.DisplayName, names, intent.WantsWeather))
	}

	return strings.Join(fragments, " "), nil
}

// weatherSentence degrades with the available fields: full sentence, then
// temperature-only, then an apology when the snapshot is empty.
func weatherSentence(displayName string, snapshot *types.WeatherSnapshot) string {
	switch {
	case snapshot.HasTemperature() && snapshot.HasRainChance():
		return fmt.Sprintf("In %s it's currently %v°C with a chance of %v%% to rain.",
			displayName, *snapshot.TemperatureC, *snapshot.RainChancePercent)
	case snapshot.HasTemperature():
		return fmt.Sprintf("In %s it's currently %v°C.", displayName, *snapshot.TemperatureC)
	default:
		return fmt.Sprintf("Sorry, I couldn't get the weather for %s.", displayName)
	}
}

// placesFragment lists the attractions, prefixed so a reply that already
// carries a weather sentence does not name the location twice.
func placesFragment(displayName string, names []string, afterWeather bool) string {
	if len(names) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find tourist places near %s.", displayName)
	}

	prefix := fmt.Sprintf("In %s these are the places you can go,", displayName)
	if afterWeather {
		prefix = "And these are the places you can go:"
	}
	return prefix + "\n" + strings.Join(names, "\n")
}
