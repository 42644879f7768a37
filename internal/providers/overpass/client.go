package overpass

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
// The interpreter endpoint accepts an Overpass QL query as a form field.
const (
	baseInterpreterURL = "https://overpass-api.de/api/interpreter"

	// searchRadiusMeters bounds the attraction search around a coordinate.
	searchRadiusMeters = 5000
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseInterpreterURL,
		logger:     logger.With("component", "overpass-client"),
	}
}

// GetNearbyAttractions queries tourist attractions and parks around the given
// coordinate. Elements come back unordered beyond Overpass's own ordering and
// may include unnamed nodes.
func (c *Client) GetNearbyAttractions(latitude, longitude float64) (*InterpreterAPIResponse, error) {
	query := fmt.Sprintf(`
	[out:json][timeout:25];
	(
	  node["tourism"="attraction"](around:%d,%f,%f);
	  node["amenity"="park"](around:%d,%f,%f);
	  node["leisure"="park"](around:%d,%f,%f);
	);
	out center;
	`,
		searchRadiusMeters, latitude, longitude,
		searchRadiusMeters, latitude, longitude,
		searchRadiusMeters, latitude, longitude,
	)

	c.logger.Debug("fetching Overpass attractions",
		"latitude", latitude,
		"longitude", longitude,
	)

	form := url.Values{}
	form.Set("data", query)

	resp, err := c.httpClient.Post(c.baseURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error("failed to fetch Overpass attractions",
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
		c.logger.Error("Overpass API returned error",
			"status_code", resp.StatusCode,
			"latitude", latitude,
			"longitude", longitude,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp InterpreterAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode Overpass response",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched Overpass attractions",
		"latitude", latitude,
		"longitude", longitude,
		"element_count", len(apiResp.Elements),
	)

	return &apiResp, nil
}
