// Package openweathermap provides a weather.Provider backed by the
// OpenWeatherMap current weather and UV index APIs.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Princebca/heatshield-backend/internal/provider/resilience"
	"github.com/Princebca/heatshield-backend/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// defaultUVIndex is used when the UV endpoint is unavailable.
	defaultUVIndex = 5.0
)

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to OpenWeatherMap API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap weather API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeatherMap weather client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// GetCurrent fetches the current weather reading for a location.
// The heat index is derived locally from temperature and humidity; the UV
// index comes from a second request and falls back to a default on failure.
func (c *Client) GetCurrent(ctx context.Context, lat, lon float64) (*weather.Reading, error) {
	url := fmt.Sprintf("%s/weather?lat=%.6f&lon=%.6f&appid=%s&units=metric",
		c.baseURL, lat, lon, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var owmResp currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	uv := c.fetchUVIndex(ctx, lat, lon)

	return c.toReading(&owmResp, uv), nil
}

// fetchUVIndex fetches the UV index for a location.
// UV data is best-effort: failures fall back to a default value.
func (c *Client) fetchUVIndex(ctx context.Context, lat, lon float64) float64 {
	url := fmt.Sprintf("%s/uvi?lat=%.6f&lon=%.6f&appid=%s",
		c.baseURL, lat, lon, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return defaultUVIndex
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("uv index fetch failed, using default")
		return defaultUVIndex
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return defaultUVIndex
	}

	var uvResp uvIndexResponse
	if err := json.NewDecoder(resp.Body).Decode(&uvResp); err != nil {
		return defaultUVIndex
	}

	return uvResp.Value
}

// toReading converts an OpenWeatherMap response to the domain model.
func (c *Client) toReading(resp *currentWeatherResponse, uvIndex float64) *weather.Reading {
	reading := &weather.Reading{
		Temperature: resp.Main.Temp,
		HeatIndex:   weather.HeatIndex(resp.Main.Temp, resp.Main.Humidity),
		Humidity:    resp.Main.Humidity,
		UVIndex:     uvIndex,
		Location:    resp.Name,
		Timestamp:   time.Now().UTC(),
	}

	if len(resp.Weather) > 0 {
		reading.Description = resp.Weather[0].Description
	}

	return reading
}

// OpenWeatherMap API response structures.

type currentWeatherResponse struct {
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Pressure float64 `json:"pressure"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Dt   int64  `json:"dt"`
	Name string `json:"name"`
}

type uvIndexResponse struct {
	Value float64 `json:"value"`
}
