package types

// ResolvedLocation is the outcome of geocoding a free-text place name:
// coordinates plus a short human-readable name for composing replies.
type ResolvedLocation struct {
	Coordinates Coords
	DisplayName string
}
