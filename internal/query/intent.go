package query

import "strings"

// Intent captures what a trip question is asking for. The flags are
// independent; a question can want both weather and places.
type Intent struct {
	WantsWeather bool
	WantsPlaces  bool
}

var weatherKeywords = []string{"weather", "temperature"}

var placesKeywords = []string{"place", "places", "visit", "attraction", "sightseeing"}

// Classify derives the intent flags from the raw query text by
// case-insensitive substring matching. A bare place name with no keyword at
// all defaults to a sightseeing question, so the flags are never both false.
func Classify(text string) Intent {
	lower := strings.ToLower(text)

	var intent Intent
	for _, kw := range weatherKeywords {
		if strings.Contains(lower, kw) {
			intent.WantsWeather = true
			break
		}
	}
	for _, kw := range placesKeywords {
		if strings.Contains(lower, kw) {
			intent.WantsPlaces = true
			break
		}
	}

	if !intent.WantsWeather && !intent.WantsPlaces {
		intent.WantsPlaces = true
	}

	return intent
}
