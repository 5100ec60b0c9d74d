package service

import (
	"context"

	"go.uber.org/zap"

	"mortgage-calc/domain"
	"mortgage-calc/repository"
)

// RateService resolves the suggested annual rate for a mortgage series.
// Lookups are best effort: any fetch or parse failure falls back to the
// documented default for the series, so callers always receive a usable
// quote and never an error.
type RateService struct {
	source repository.RateSource
	logger *zap.Logger
}

func NewRateService(source repository.RateSource, logger *zap.Logger) *RateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateService{source: source, logger: logger}
}

// Resolve fetches the most recent observation for the series. Each call
// performs exactly one outbound fetch; there is no caching and no retry.
func (s *RateService) Resolve(ctx context.Context, seriesID string) domain.RateQuote {
	obs, err := s.source.LatestObservation(ctx, seriesID)
	if err != nil {
		s.logger.Warn("rate lookup failed, using fallback",
			zap.String("series", seriesID),
			zap.Error(err),
		)
		return domain.RateQuote{
			SeriesID:    seriesID,
			Label:       labelFor(seriesID),
			RatePercent: fallbackFor(seriesID),
			IsFallback:  true,
		}
	}

	return domain.RateQuote{
		SeriesID:    seriesID,
		Label:       labelFor(seriesID),
		RatePercent: obs.Value,
		AsOfDate:    obs.Date,
	}
}

// CurrentRates resolves the 30-year and 15-year fixed series.
func (s *RateService) CurrentRates(ctx context.Context) (domain.RateQuote, domain.RateQuote) {
	return s.Resolve(ctx, Series30YearFixed), s.Resolve(ctx, Series15YearFixed)
}

func fallbackFor(seriesID string) float64 {
	if seriesID == Series15YearFixed {
		return Fallback15YearRate
	}
	return Fallback30YearRate
}

func labelFor(seriesID string) string {
	if seriesID == Series15YearFixed {
		return "15-year fixed"
	}
	return "30-year fixed"
}
