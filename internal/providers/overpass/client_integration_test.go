//go:build integration

package overpass

import (
	"log/slog"
	"testing"
)

func TestClient_GetNearbyAttractions_Integration(t *testing.T) {
	// Test coordinates: central Bengaluru, which has plenty of parks
	lat := 12.9767936
	lon := 77.590082

	client := NewClient(slog.Default())

	t.Logf("Making API call to Overpass interpreter...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetNearbyAttractions(lat, lon)
	if err != nil {
		t.Fatalf("Failed to get attractions: %v", err)
	}

	t.Logf("Element count: %d", len(resp.Elements))

	if len(resp.Elements) == 0 {
		t.Fatal("Expected at least one element near central Bengaluru")
	}

	named := 0
	for _, el := range resp.Elements {
		if name := el.Tags["name"]; name != "" {
			named++
			if named <= 5 {
				t.Logf("  %s", name)
			}
		}
	}

	if named == 0 {
		t.Error("Expected at least one named element")
	}
}
