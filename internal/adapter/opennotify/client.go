package opennotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/astronaut-etl/internal/domain"
)

// DefaultBaseURL is the public Open Notify endpoint.
const DefaultBaseURL = "http://api.open-notify.org"

// Client fetches the people currently in space from Open Notify.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an Open Notify client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// FetchAstronauts returns the astronauts listed by the astros feed, in feed order.
func (c *Client) FetchAstronauts(ctx context.Context) ([]domain.AstronautRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/astros.json", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("astros request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("open notify API error: status %d: %s", resp.StatusCode, body)
	}

	var astros response
	if err := json.NewDecoder(resp.Body).Decode(&astros); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if astros.Number != len(astros.People) {
		c.logger.Warn("astros count mismatch", "number", astros.Number, "people", len(astros.People))
	}
	c.logger.Debug("astronauts fetched", "count", len(astros.People))

	records := make([]domain.AstronautRecord, len(astros.People))
	for i, p := range astros.People {
		records[i] = domain.AstronautRecord{Name: p.Name, Craft: p.Craft}
	}
	return records, nil
}

// Open Notify API response types.

type response struct {
	Message string   `json:"message"`
	Number  int      `json:"number"`
	People  []person `json:"people"`
}

type person struct {
	Name  string `json:"name"`
	Craft string `json:"craft"`
}
