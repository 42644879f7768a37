package concierge

import (
	"errors"
	"log/slog"
	"testing"

	"tourmate/internal/geocoding"
	"tourmate/internal/types"
)

// Deterministic fakes for the three upstream services

type fakeGeocoder struct {
	location *types.ResolvedLocation
	err      error
	calls    int
}

func (f *fakeGeocoder) Resolve(place string) (*types.ResolvedLocation, error) {
	f.calls++
	return f.location, f.err
}

type fakeWeather struct {
	snapshot *types.WeatherSnapshot
	err      error
	calls    int
}

func (f *fakeWeather) Fetch(coords types.Coords) (*types.WeatherSnapshot, error) {
	f.calls++
	return f.snapshot, f.err
}

type fakePlaces struct {
	names     []string
	err       error
	calls     int
	gotLimit  int
	gotCoords types.Coords
}

func (f *fakePlaces) Fetch(coords types.Coords, limit int) ([]string, error) {
	f.calls++
	f.gotLimit = limit
	f.gotCoords = coords
	return f.names, f.err
}

func resolvedParis() *types.ResolvedLocation {
	return &types.ResolvedLocation{
		Coordinates: types.NewCoords(48.85, 2.32),
		DisplayName: "Paris",
	}
}

func snapshot(temp *float64, rain *int) *types.WeatherSnapshot {
	return &types.WeatherSnapshot{TemperatureC: temp, RainChancePercent: rain}
}

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func TestConciergeService_HandleRequest(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		geocoder       *fakeGeocoder
		weather        *fakeWeather
		places         *fakePlaces
		want           string
		wantErr        bool
		wantGeoCalls   int
		wantWthrCalls  int
		wantPlaceCalls int
	}{
		{
			name:           "weather question with full snapshot",
			text:           "What's the weather in Paris?",
			geocoder:       &fakeGeocoder{location: resolvedParis()},
			weather:        &fakeWeather{snapshot: snapshot(floatPtr(21.4), intPtr(55))},
			places:         &fakePlaces{},
			want:           "In Paris it's currently 21.4°C with a chance of 55% to rain.",
			wantGeoCalls:   1,
			wantWthrCalls:  1,
			wantPlaceCalls: 0,
		},
		{
			name:           "weather question with temperature only never mentions rain",
			text:           "What's the weather in Paris?",
			geocoder:       &fakeGeocoder{location: resolvedParis()},
			weather:        &fakeWeather{snapshot: snapshot(floatPtr(21.4), nil)},
			places:         &fakePlaces{},
			want:           "In Paris it's currently 21.4°C.",
			wantGeoCalls:   1,
			wantWthrCalls:  1,
			wantPlaceCalls: 0,
		},
		{
			name:           "weather question with empty snapshot apologizes by name",
			text:           "What's the weather in Paris?",
			geocoder:       &fakeGeocoder{location: resolvedParis()},
			weather:        &fakeWeather{snapshot: snapshot(nil, nil)},
			places:         &fakePlaces{},
			want:           "Sorry, I couldn't get the weather for Paris.",
			wantGeoCalls:   1,
			wantWthrCalls:  1,
			wantPlaceCalls: 0,
		},
		{
			name:     "bare trip statement defaults to places",
			text:     "I'm going to Tokyo",
			geocoder: &fakeGeocoder{location: &types.ResolvedLocation{Coordinates: types.NewCoords(35.68, 139.69), DisplayName: "Tokyo"}},
			weather:  &fakeWeather{},
			places:   &fakePlaces{names: []string{"Ueno Park", "Senso-ji"}},
			want: "In Tokyo these are the places you can go,\n" +
				"Ueno Park\n" +
				"Senso-ji",
			wantGeoCalls:   1,
			wantWthrCalls:  0,
			wantPlaceCalls: 1,
		},
		{
			name:           "places question with no results apologizes",
			text:           "places to visit in Tokyo",
			geocoder:       &fakeGeocoder{location: &types.ResolvedLocation{DisplayName: "Tokyo"}},
			weather:        &fakeWeather{},
			places:         &fakePlaces{names: nil},
			want:           "Sorry, I couldn't find tourist places near Tokyo.",
			wantGeoCalls:   1,
			wantWthrCalls:  0,
			wantPlaceCalls: 1,
		},
		{
			name:     "combined question joins fragments with one space",
			text:     "weather and places to visit in Paris",
			geocoder: &fakeGeocoder{location: resolvedParis()},
			weather:  &fakeWeather{snapshot: snapshot(floatPtr(21.4), intPtr(55))},
			places:   &fakePlaces{names: []string{"Louvre", "Jardin du Luxembourg"}},
			want: "In Paris it's currently 21.4°C with a chance of 55% to rain. " +
				"And these are the places you can go:\n" +
				"Louvre\n" +
				"Jardin du Luxembourg",
			wantGeoCalls:   1,
			wantWthrCalls:  1,
			wantPlaceCalls: 1,
		},
		{
			name:     "combined question with degraded snapshot stays degraded",
			text:     "weather and places to visit in Paris",
			geocoder: &fakeGeocoder{location: resolvedParis()},
			weather:  &fakeWeather{snapshot: snapshot(floatPtr(21.4), nil)},
			places:   &fakePlaces{names: []string{"Louvre"}},
			want: "In Paris it's currently 21.4°C. " +
				"And these are the places you can go:\n" +
				"Louvre",
			wantGeoCalls:   1,
			wantWthrCalls:  1,
			wantPlaceCalls: 1,
		},
		{
			name:           "unknown place makes no lookup calls",
			text:           "places to visit in Atlantis",
			geocoder:       &fakeGeocoder{err: geocoding.ErrPlaceNotFound},
			weather:        &fakeWeather{},
			places:         &fakePlaces{},
			want:           "I don't know this place exist.",
			wantGeoCalls:   1,
			wantWthrCalls:  0,
			wantPlaceCalls: 0,
		},
		{
			name:           "empty place candidate makes no upstream calls",
			text:           "   ",
			geocoder:       &fakeGeocoder{},
			weather:        &fakeWeather{},
			places:         &fakePlaces{},
			want:           "Please tell me which place you want to go.",
			wantGeoCalls:   0,
			wantWthrCalls:  0,
			wantPlaceCalls: 0,
		},
		{
			name:     "geocoder failure propagates",
			text:     "places to visit in Paris",
			geocoder: &fakeGeocoder{err: errors.New("connection refused")},
			weather:  &fakeWeather{},
			places:   &fakePlaces{},
			wantErr:  true,
		},
		{
			name:     "weather failure propagates",
			text:     "weather in Paris",
			geocoder: &fakeGeocoder{location: resolvedParis()},
			weather:  &fakeWeather{err: errors.New("timeout")},
			places:   &fakePlaces{},
			wantErr:  true,
		},
		{
			name:     "places failure propagates",
			text:     "places to visit in Paris",
			geocoder: &fakeGeocoder{location: resolvedParis()},
			weather:  &fakeWeather{},
			places:   &fakePlaces{err: errors.New("timeout")},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewServiceWithServices(tt.geocoder, tt.weather, tt.places, 5, slog.Default())

			got, err := service.HandleRequest(tt.text)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("HandleRequest(%q) = %q, want %q", tt.text, got, tt.want)
			}

			if tt.geocoder.calls != tt.wantGeoCalls {
				t.Errorf("geocoder calls = %d, want %d", tt.geocoder.calls, tt.wantGeoCalls)
			}
			if tt.weather.calls != tt.wantWthrCalls {
				t.Errorf("weather calls = %d, want %d", tt.weather.calls, tt.wantWthrCalls)
			}
			if tt.places.calls != tt.wantPlaceCalls {
				t.Errorf("places calls = %d, want %d", tt.places.calls, tt.wantPlaceCalls)
			}
		})
	}
}

func TestConciergeService_PassesConfiguredPlacesLimit(t *testing.T) {
	placesFake := &fakePlaces{names: []string{"Louvre"}}
	service := NewServiceWithServices(
		&fakeGeocoder{location: resolvedParis()},
		&fakeWeather{},
		placesFake,
		3,
		slog.Default(),
	)

	if _, err := service.HandleRequest("places to visit in Paris"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if placesFake.gotLimit != 3 {
		t.Errorf("places limit = %d, want 3", placesFake.gotLimit)
	}
}
