package openmeteo

// ForecastAPIResponse models the subset of the Open-Meteo forecast response
// this service requests. CurrentWeather is a pointer because the block is
// only present when current_weather=true is honored by the API.
type ForecastAPIResponse struct {
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	GenerationtimeMs float64         `json:"generationtime_ms"`
	UtcOffsetSeconds int             `json:"utc_offset_seconds"`
	Timezone         string          `json:"timezone"`
	Elevation        float64         `json:"elevation"`
	CurrentWeather   *CurrentWeather `json:"current_weather"`
	Hourly           Hourly          `json:"hourly"`
}

type CurrentWeather struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	Windspeed     float64 `json:"windspeed"`
	Winddirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	IsDay         int     `json:"is_day"`
}

type Hourly struct {
	Time                     []string `json:"time"`
	PrecipitationProbability []int    `json:"precipitation_probability"`
}
