package places

import (
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"tourmate/internal/providers/overpass"
	"tourmate/internal/types"
)

// Mock provider for testing

type mockAttractionsProvider struct {
	response *overpass.InterpreterAPIResponse
	err      error
}

func (m *mockAttractionsProvider) GetNearbyAttractions(latitude, longitude float64) (*overpass.InterpreterAPIResponse, error) {
	return m.response, m.err
}

func namedElements(names ...string) []overpass.Element {
	elements := make([]overpass.Element, 0, len(names))
	for _, name := range names {
		tags := map[string]string{}
		if name != "" {
			tags["name"] = name
		}
		elements = append(elements, overpass.Element{Type: "node", Tags: tags})
	}
	return elements
}

func TestPlacesService_Fetch(t *testing.T) {
	coords := types.NewCoords(12.98, 77.59)

	tests := []struct {
		name        string
		elements    []overpass.Element
		limit       int
		providerErr error
		wantErr     bool
		want        []string
	}{
		{
			name:     "names in provider order",
			elements: namedElements("Cubbon Park", "Lalbagh", "Bangalore Palace"),
			limit:    5,
			want:     []string{"Cubbon Park", "Lalbagh", "Bangalore Palace"},
		},
		{
			name:     "duplicates removed keeping first occurrence",
			elements: namedElements("Cubbon Park", "Lalbagh", "Cubbon Park", "Lalbagh"),
			limit:    5,
			want:     []string{"Cubbon Park", "Lalbagh"},
		},
		{
			name:     "unnamed nodes skipped",
			elements: namedElements("", "Lalbagh", "", "Cubbon Park"),
			limit:    5,
			want:     []string{"Lalbagh", "Cubbon Park"},
		},
		{
			name:     "limit caps the result",
			elements: namedElements("A", "B", "C", "D", "E", "F", "G"),
			limit:    5,
			want:     []string{"A", "B", "C", "D", "E"},
		},
		{
			name:     "duplicates do not consume the limit",
			elements: namedElements("A", "A", "B", "B", "C"),
			limit:    3,
			want:     []string{"A", "B", "C"},
		},
		{
			name:     "no elements",
			elements: nil,
			limit:    5,
			want:     nil,
		},
		{
			name:        "provider error propagates",
			limit:       5,
			providerErr: errors.New("gateway timeout"),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockAttractionsProvider{
				response: &overpass.InterpreterAPIResponse{Elements: tt.elements},
				err:      tt.providerErr,
			}
			service := NewServiceWithProvider(provider, slog.Default())

			got, err := service.Fetch(coords, tt.limit)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fetch() = %v, want %v", got, tt.want)
			}
			if len(got) > tt.limit {
				t.Errorf("Fetch() returned %d names, limit is %d", len(got), tt.limit)
			}
		})
	}
}
