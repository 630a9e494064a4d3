package weather

import (
	"context"
	"time"
)

// MockProviderName identifies the mock weather provider.
const MockProviderName = "mock"

// MockProvider returns fixed readings for development and testing.
// It is selected when mock data is enabled or no API key is configured.
type MockProvider struct {
	// Location overrides the reported place name (default: "Rourkela").
	Location string
}

// NewMockProvider creates a mock weather provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{Location: "Rourkela"}
}

// Name returns the provider name.
func (p *MockProvider) Name() string {
	return MockProviderName
}

// GetCurrent returns a fixed hot-and-humid reading.
func (p *MockProvider) GetCurrent(_ context.Context, _, _ float64) (*Reading, error) {
	return &Reading{
		Temperature: 38.5,
		HeatIndex:   45.2,
		Humidity:    65.0,
		UVIndex:     8.5,
		Description: "hot and humid",
		Location:    p.Location,
		Timestamp:   time.Now().UTC(),
	}, nil
}
