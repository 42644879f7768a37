package nominatim

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Paris&format=json&limit=1
const (
	baseSearchURL = "https://nominatim.openstreetmap.org/search"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a Nominatim search client. The contact address goes into
// the User-Agent header, which the Nominatim usage policy requires.
func NewClient(contact string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseSearchURL,
		userAgent:  fmt.Sprintf("tourmate/1.0 (%s)", contact),
		logger:     logger.With("component", "nominatim-client"),
	}
}

// Search performs a forward geocoding lookup for the given free-text place
// name. At most one result is requested; an empty slice means no match.
func (c *Client) Search(place string) (SearchAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching Nominatim search results",
		"place", place,
		"url", u.String(),
	)

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	// Make the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch Nominatim search results",
			"place", place,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			"status_code", resp.StatusCode,
			"place", place,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp SearchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode Nominatim response",
			"place", place,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched Nominatim search results",
		"place", place,
		"result_count", len(apiResp),
	)

	return apiResp, nil
}
