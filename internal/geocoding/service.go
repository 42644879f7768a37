package geocoding

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"tourmate/internal/config"
	"tourmate/internal/providers/nominatim"
	"tourmate/internal/types"
)

// ErrPlaceNotFound is returned when the geocoder has no match for the given
// text. Callers are expected to recover from it; every other error is an
// upstream failure.
var ErrPlaceNotFound = errors.New("place not found")

// Service resolves free-text place names into coordinates
type Service interface {
	// Resolve turns a place name into coordinates and a short display name
	Resolve(place string) (*types.ResolvedLocation, error)
}

// SearchProvider defines the interface for forward geocoding providers
type SearchProvider interface {
	Search(place string) (nominatim.SearchAPIResponse, error)
}

// geocodingService implements the Service interface
type geocodingService struct {
	searchProvider SearchProvider
	logger         *slog.Logger
}

// NewService creates a geocoding service backed by the real Nominatim client
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	return NewServiceWithProvider(nominatim.NewClient(cfg.App.GeocoderContact, logger), logger)
}

// NewServiceWithProvider creates a geocoding service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(searchProvider SearchProvider, logger *slog.Logger) Service {
	return &geocodingService{
		searchProvider: searchProvider,
		logger:         logger.With("component", "geocoding-service"),
	}
}

func (s *geocodingService) Resolve(place string) (*types.ResolvedLocation, error) {
	results, err := s.searchProvider.Search(place)
	if err != nil {
		s.logger.Error("failed to search for place", "place", place, "error", err)
		return nil, fmt.Errorf("failed to geocode %q: %w", place, err)
	}

	if len(results) == 0 {
		s.logger.Debug("no geocoding results", "place", place)
		return nil, ErrPlaceNotFound
	}

	return translateResult(place, results[0])
}

// translateResult converts a Nominatim search result to the domain type
func translateResult(place string, result nominatim.SearchResult) (*types.ResolvedLocation, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude %q: %w", result.Lat, err)
	}

	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude %q: %w", result.Lon, err)
	}

	// Use just the first segment of the full address, like "Paris" out of
	// "Paris, Ile-de-France, Metropolitan France, France"
	displayName := result.DisplayName
	if displayName == "" {
		displayName = place
	}
	shortName := strings.TrimSpace(strings.SplitN(displayName, ",", 2)[0])

	return &types.ResolvedLocation{
		Coordinates: types.NewCoords(lat, lon),
		DisplayName: shortName,
	}, nil
}
