package query

import "strings"

// clauseMarkers end the place-name portion of a candidate. Checked in this
// order; only the first match truncates.
var clauseMarkers = []string{",", "?", ".", " and ", " what "}

// stopWords are tokens that never belong to a place name in the phrasings
// this extractor anticipates.
var stopWords = map[string]bool{
	"i": true, "im": true, "i'm": true, "going": true, "go": true,
	"to": true, "what": true, "whats": true, "what's": true, "is": true,
	"the": true, "there": true,
	"and": true, "visit": true, "places": true, "place": true,
	"temperature": true, "weather": true, "trip": true, "in": true,
	"city": true, "are": true, "can": true, "you": true, "my": true,
	"let's": true, "lets": true,
}

// ExtractPlace isolates the substring of a trip question that most likely
// names a location. It is a fixed pipeline of heuristic passes, not a named
// entity recognizer: place names containing stop-words ("The Hague") or
// phrasings outside the anticipated patterns will come out wrong, and that
// is accepted. Returns "" when the input holds no usable tokens.
func ExtractPlace(text string) string {
	candidate := anchorAfterTo(strings.TrimSpace(text))
	candidate = truncateAtMarker(candidate)
	candidate = stripStopWords(candidate)
	return capLength(candidate)
}

// anchorAfterTo keeps only the text after the rightmost " to ", so that
// "I want to go to Paris" anchors on "Paris" rather than "go to Paris".
func anchorAfterTo(text string) string {
	lower := strings.ToLower(text)
	idx := strings.LastIndex(lower, " to ")
	if idx < 0 {
		return text
	}
	return strings.TrimSpace(text[idx+len(" to "):])
}

// truncateAtMarker cuts the candidate at the first clause marker found,
// in marker priority order. Later markers are not applied.
func truncateAtMarker(candidate string) string {
	lower := strings.ToLower(candidate)
	for _, marker := range clauseMarkers {
		if idx := strings.Index(lower, marker); idx >= 0 {
			return strings.TrimSpace(candidate[:idx])
		}
	}
	return candidate
}

// stripStopWords removes stop-word tokens. When that would remove
// everything, it falls back to the last two original tokens, which keeps a
// short proper noun alive when the whole phrase happens to be stop-words.
func stripStopWords(candidate string) string {
	words := strings.Fields(candidate)

	filtered := words[:0:0]
	for _, w := range words {
		if !stopWords[strings.ToLower(w)] {
			filtered = append(filtered, w)
		}
	}

	if len(filtered) == 0 {
		filtered = lastN(words, 2)
	}
	return strings.Join(filtered, " ")
}

// capLength keeps only the last two tokens of candidates longer than three
// tokens; real place names rarely run longer.
func capLength(candidate string) string {
	words := strings.Fields(candidate)
	if len(words) > 3 {
		return strings.Join(lastN(words, 2), " ")
	}
	return candidate
}

func lastN(words []string, n int) []string {
	if len(words) <= n {
		return words
	}
	return words[len(words)-n:]
}
