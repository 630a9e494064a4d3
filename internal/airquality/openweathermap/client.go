// Package openweathermap provides an airquality.Provider backed by the
// OpenWeatherMap air pollution API.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	"github.com/Princebca/heatshield-backend/internal/provider/resilience"
)

const (
	// ProviderName identifies this air quality provider.
	ProviderName = "openweathermap-air"

	// DefaultBaseURL is the OpenWeatherMap air pollution API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
)

// ClientConfig holds configuration for the air pollution client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap air pollution API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new air pollution client.
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

// GetCurrent fetches the current air quality reading for a location.
// The upstream 1-5 index is mapped onto the Indian 0-500 AQI scale.
func (c *Client) GetCurrent(ctx context.Context, lat, lon float64) (*airquality.Reading, error) {
	url := fmt.Sprintf("%s/air_pollution?lat=%.6f&lon=%.6f&appid=%s",
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

	var owmResp airPollutionResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(owmResp.List) == 0 {
		return nil, fmt.Errorf("empty air pollution response")
	}

	return toReading(&owmResp.List[0]), nil
}

// toReading converts an OpenWeatherMap air pollution entry to the domain model.
func toReading(entry *airPollutionEntry) *airquality.Reading {
	aqi := airquality.IndianAQI(entry.Main.AQI)

	return &airquality.Reading{
		AQI:       aqi,
		Category:  airquality.CategoryFor(aqi),
		PM25:      entry.Components.PM25,
		PM10:      entry.Components.PM10,
		NO2:       entry.Components.NO2,
		SO2:       entry.Components.SO2,
		CO:        entry.Components.CO,
		O3:        entry.Components.O3,
		Timestamp: time.Now().UTC(),
	}
}

// OpenWeatherMap air pollution API response structures.

type airPollutionResponse struct {
	List []airPollutionEntry `json:"list"`
}

type airPollutionEntry struct {
	Main struct {
		AQI int `json:"aqi"`
	} `json:"main"`
	Components struct {
		CO   float64 `json:"co"`
		NO2  float64 `json:"no2"`
		O3   float64 `json:"o3"`
		SO2  float64 `json:"so2"`
		PM25 float64 `json:"pm2_5"`
		PM10 float64 `json:"pm10"`
	} `json:"components"`
	Dt int64 `json:"dt"`
}
