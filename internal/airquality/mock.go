package airquality

import (
	"context"
	"time"
)

// MockProviderName identifies the mock air quality provider.
const MockProviderName = "mock"

// MockProvider returns fixed readings for development and testing.
type MockProvider struct{}

// NewMockProvider creates a mock air quality provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name returns the provider name.
func (p *MockProvider) Name() string {
	return MockProviderName
}

// GetCurrent returns a fixed moderate-pollution reading.
func (p *MockProvider) GetCurrent(_ context.Context, _, _ float64) (*Reading, error) {
	return &Reading{
		AQI:       180,
		Category:  CategoryFor(180),
		PM25:      85.5,
		PM10:      120.3,
		NO2:       45.2,
		SO2:       25.1,
		CO:        1200.5,
		O3:        60.8,
		Timestamp: time.Now().UTC(),
	}, nil
}
