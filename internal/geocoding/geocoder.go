package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

// Geocoder resolves free text to coordinates. The engine treats it as
// a black box; failures propagate to the caller as query errors.
type Geocoder interface {
	Resolve(ctx context.Context, query string) (models.LatLng, error)
}

// NominatimClient resolves place names through a Nominatim-compatible
// search endpoint.
type NominatimClient struct {
	baseURL string
	client  *http.Client
}

// NewNominatimClient creates a geocoding client against baseURL
func NewNominatimClient(baseURL string) *NominatimClient {
	return &NominatimClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns the best-ranked coordinate match for the query
func (c *NominatimClient) Resolve(ctx context.Context, query string) (models.LatLng, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.LatLng{}, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", "bikepaths-backend/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return models.LatLng{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.LatLng{}, fmt.Errorf("geocoding request failed: status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.LatLng{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return models.LatLng{}, fmt.Errorf("no match for %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.LatLng{}, fmt.Errorf("failed to parse geocoding latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.LatLng{}, fmt.Errorf("failed to parse geocoding longitude: %w", err)
	}

	return models.LatLng{Lat: lat, Lng: lng}, nil
}
