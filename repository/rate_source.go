package repository

import "context"

// Observation is the most recent value published for a rate series.
type Observation struct {
	Value float64
	Date  string
}

// RateSource fetches the latest observation for a published rate series.
type RateSource interface {
	LatestObservation(ctx context.Context, seriesID string) (Observation, error)
}
