package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"charterhub/skybroker/internal/models/dtos"
)

// PositionProvider supplies live position samples for the tracked fleet.
type PositionProvider interface {
	GetProviderType() string
	FetchPositions(ctx context.Context) ([]dtos.JetPosition, error)
}

// TrackerAPIProvider implements PositionProvider against the external
// flight-tracking feed.
type TrackerAPIProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewTrackerAPIProvider creates a provider configured from the
// environment.
func NewTrackerAPIProvider() *TrackerAPIProvider {
	baseURL := os.Getenv("TRACKER_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://tracker.example.com/v1" // Default
	}
	apiKey := os.Getenv("TRACKER_API_KEY")

	return &TrackerAPIProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetProviderType returns the provider type identifier
func (p *TrackerAPIProvider) GetProviderType() string {
	return "tracker_api"
}

// FetchPositions fetches the latest position sample for every tracked
// jet in one call.
func (p *TrackerAPIProvider) FetchPositions(ctx context.Context) ([]dtos.JetPosition, error) {
	if p.APIKey == "" {
		return nil, fmt.Errorf("TRACKER_API_KEY environment variable is not set")
	}

	url := p.BaseURL + "/positions"
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("position feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, string(bodyBytes))
	}

	var result struct {
		Positions []dtos.JetPosition `json:"positions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode position feed response: %w", err)
	}

	return result.Positions, nil
}
