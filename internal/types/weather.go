package types

// WeatherSnapshot holds the current temperature and the peak precipitation
// probability for the rest of the day. Either field may be missing from the
// upstream response independently; nil means absent, which is distinct from
// a zero value.
type WeatherSnapshot struct {
	TemperatureC      *float64
	RainChancePercent *int // 0-100
}

// HasTemperature reports whether the snapshot carries a temperature reading.
func (s WeatherSnapshot) HasTemperature() bool {
	return s.TemperatureC != nil
}

// HasRainChance reports whether the snapshot carries a rain probability.
func (s WeatherSnapshot) HasRainChance() bool {
	return s.RainChancePercent != nil
}
