package repository

import (
	"context"
	"fmt"
)

// StaticRateSource serves fixed observations from memory. It is intended
// for development and tests where the live rate API is unavailable.
type StaticRateSource struct {
	Observations map[string]Observation
	Err          error
}

func NewStaticRateSource() *StaticRateSource {
	return &StaticRateSource{Observations: make(map[string]Observation)}
}

func (s *StaticRateSource) LatestObservation(_ context.Context, seriesID string) (Observation, error) {
	if s.Err != nil {
		return Observation{}, s.Err
	}
	obs, ok := s.Observations[seriesID]
	if !ok {
		return Observation{}, fmt.Errorf("no static observation for series %s", seriesID)
	}
	return obs, nil
}
