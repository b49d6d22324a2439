package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StaticSource always reports the same coordinates.
type StaticSource struct {
	Location Location
}

func (s StaticSource) Locate(ctx context.Context) (Location, error) {
	if err := ctx.Err(); err != nil {
		return Location{}, err
	}
	return s.Location, nil
}

const DefaultIPEndpoint = "http://ip-api.com/json/?fields=status,message,lat,lon"

// IPSource resolves an approximate position from the public IP address using
// an ip-api.com compatible JSON endpoint.
type IPSource struct {
	endpoint   string
	httpClient *http.Client
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func NewIPSource(endpoint string) *IPSource {
	if endpoint == "" {
		endpoint = DefaultIPEndpoint
	}
	return &IPSource{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *IPSource) Locate(ctx context.Context) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return Location{}, fmt.Errorf("failed to create location request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("location lookup failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Location{}, fmt.Errorf("failed to read location response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("location lookup returned status %d", resp.StatusCode)
	}

	var result ipLookupResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return Location{}, fmt.Errorf("failed to parse location response: %w", err)
	}

	if result.Status != "" && result.Status != "success" {
		if result.Message == "" {
			result.Message = result.Status
		}
		return Location{}, fmt.Errorf("location unavailable: %s", result.Message)
	}

	return Location{Lat: result.Lat, Lng: result.Lon}, nil
}
