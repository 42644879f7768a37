package places

import (
	"fmt"
	"log/slog"

	"tourmate/internal/providers/overpass"
	"tourmate/internal/types"
)

// AttractionsProvider defines the interface for point-of-interest providers
type AttractionsProvider interface {
	GetNearbyAttractions(latitude, longitude float64) (*overpass.InterpreterAPIResponse, error)
}

// Service fetches nearby attraction names for a coordinate
type Service interface {
	// Fetch returns up to limit unique attraction names, in provider order
	Fetch(coords types.Coords, limit int) ([]string, error)
}

// placesService implements the Service interface
type placesService struct {
	attractionsProvider AttractionsProvider
	logger              *slog.Logger
}

// NewService creates a places service backed by the real Overpass client
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(overpass.NewClient(logger), logger)
}

// NewServiceWithProvider creates a places service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(attractionsProvider AttractionsProvider, logger *slog.Logger) Service {
	return &placesService{
		attractionsProvider: attractionsProvider,
		logger:              logger.With("component", "places-service"),
	}
}

func (s *placesService) Fetch(coords types.Coords, limit int) ([]string, error) {
	apiResp, err := s.attractionsProvider.GetNearbyAttractions(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get attractions from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get attractions: %w", err)
	}

	return collectNames(apiResp, limit), nil
}

// collectNames walks the elements in response order, skipping unnamed nodes
// and duplicate names, and stops once limit names are collected.
func collectNames(apiResp *overpass.InterpreterAPIResponse, limit int) []string {
	seen := make(map[string]bool)
	var names []string

	for _, el := range apiResp.Elements {
		name := el.Tags["name"]
		if name == "" || seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)

		if len(names) >= limit {
			break
		}
	}

	return names
}
