package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/astronaut-etl/internal/domain"
)

// DefaultBaseURL is the public Open-Meteo endpoint.
const DefaultBaseURL = "https://api.open-meteo.com"

const currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,cloud_cover,weather_code"

// ErrNoCurrentConditions is returned when the response omits the current block.
var ErrNoCurrentConditions = errors.New("open-meteo response has no current conditions")

// Client fetches current conditions for one fixed location.
type Client struct {
	httpClient *http.Client
	baseURL    string
	lat        float64
	lon        float64
	logger     *slog.Logger
}

// NewClient creates an Open-Meteo client for the given coordinates.
func NewClient(baseURL string, lat, lon float64, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		lat:     lat,
		lon:     lon,
		logger:  logger,
	}
}

// Coordinates returns the location this client observes.
func (c *Client) Coordinates() (lat, lon float64) {
	return c.lat, c.lon
}

// FetchWeather returns the current observation at the client's location.
func (c *Client) FetchWeather(ctx context.Context) (domain.WeatherObservation, error) {
	params := url.Values{
		"latitude":  {strconv.FormatFloat(c.lat, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(c.lon, 'f', -1, 64)},
		"current":   {currentFields},
		"timezone":  {"UTC"},
	}
	fullURL := c.baseURL + "/v1/forecast?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.WeatherObservation{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WeatherObservation{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.WeatherObservation{}, fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)
	}

	var forecast response
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return domain.WeatherObservation{}, fmt.Errorf("decode response: %w", err)
	}
	if forecast.Current == nil {
		return domain.WeatherObservation{}, ErrNoCurrentConditions
	}

	obs := forecast.Current.observation()
	c.logger.Debug("weather fetched",
		"lat", c.lat,
		"lon", c.lon,
		"temperature", obs.Temperature,
		"timestamp", obs.Timestamp,
	)
	return obs, nil
}

// Open-Meteo API response types.

type response struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Current   *current `json:"current"`
}

type current struct {
	Time               string   `json:"time"`
	Temperature2m      float64  `json:"temperature_2m"`
	RelativeHumidity2m *float64 `json:"relative_humidity_2m"`
	WindSpeed10m       float64  `json:"wind_speed_10m"`
	CloudCover         float64  `json:"cloud_cover"`
	WeatherCode        *int     `json:"weather_code"`
}

func (c current) observation() domain.WeatherObservation {
	obs := domain.WeatherObservation{
		Temperature: c.Temperature2m,
		WindSpeed:   c.WindSpeed10m,
		CloudCover:  c.CloudCover,
		Humidity:    c.RelativeHumidity2m,
		WeatherCode: c.WeatherCode,
		Timestamp:   c.Time,
	}
	if c.WeatherCode != nil {
		obs.WeatherDescription = domain.DecodeWeatherCode(*c.WeatherCode)
	}
	return obs
}
