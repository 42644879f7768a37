package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=48.85&longitude=2.35&current_weather=true&hourly=precipitation_probability&forecast_days=1&timezone=auto
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseForecastURL,
		logger:     logger.With("component", "openmeteo-client"),
	}
}

// GetCurrentForecast fetches the current weather plus the hourly
// precipitation probability series for the rest of today.
func (c *Client) GetCurrentForecast(latitude, longitude float64) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current_weather", "true")
	q.Set("hourly", "precipitation_probability")
	q.Set("forecast_days", "1")
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching Open-Meteo forecast",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch Open-Meteo forecast",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Open-Meteo API returned error",
			"status_code", resp.StatusCode,
			"latitude", latitude,
			"longitude", longitude,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode Open-Meteo response",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
