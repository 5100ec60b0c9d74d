package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.stlouisfed.org/fred/series/observations"
	fetchTimeout   = 5 * time.Second
)

// FredClient reads rate series from the FRED economic data API. Each call
// requests only the single most recent observation, newest first. There
// are no retries and no caching; every invocation re-fetches.
type FredClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewFredClient(apiKey string) *FredClient {
	return &FredClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

type observationsResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// LatestObservation returns the newest observation for the series. FRED
// serializes values as strings and publishes "." for dates with no data,
// so the value has to be parsed after decoding.
func (c *FredClient) LatestObservation(ctx context.Context, seriesID string) (Observation, error) {
	url := fmt.Sprintf("%s?series_id=%s&api_key=%s&file_type=json&sort_order=desc&limit=1",
		c.baseURL, seriesID, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Observation{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Observation{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Observation{}, fmt.Errorf("rate source returned status %d", resp.StatusCode)
	}

	var payload observationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Observation{}, fmt.Errorf("decoding rate source response: %w", err)
	}
	if len(payload.Observations) == 0 {
		return Observation{}, fmt.Errorf("no observations for series %s", seriesID)
	}

	latest := payload.Observations[0]
	value, err := strconv.ParseFloat(latest.Value, 64)
	if err != nil {
		return Observation{}, fmt.Errorf("series %s has no numeric value: %q", seriesID, latest.Value)
	}

	return Observation{Value: value, Date: latest.Date}, nil
}
