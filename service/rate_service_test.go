package service

import (
	"context"
	"errors"
	"testing"

	"mortgage-calc/repository"
)

func TestResolve_SuccessfulLookup(t *testing.T) {

	source := repository.NewStaticRateSource()
	source.Observations[Series30YearFixed] = repository.Observation{Value: 7.12, Date: "2026-08-21"}

	svc := NewRateService(source, nil)

	quote := svc.Resolve(context.Background(), Series30YearFixed)

	if quote.IsFallback {
		t.Errorf("expected live quote, got fallback")
	}
	if quote.RatePercent != 7.12 {
		t.Errorf("expected rate 7.12, got %v", quote.RatePercent)
	}
	if quote.AsOfDate != "2026-08-21" {
		t.Errorf("expected as-of date, got %q", quote.AsOfDate)
	}
}

func TestResolve_FallbackOnFailure(t *testing.T) {

	source := repository.NewStaticRateSource()
	source.Err = errors.New("connection refused")

	svc := NewRateService(source, nil)

	quote := svc.Resolve(context.Background(), Series30YearFixed)

	if !quote.IsFallback {
		t.Fatalf("expected fallback quote")
	}
	if quote.RatePercent != Fallback30YearRate {
		t.Errorf("expected fallback rate %v, got %v", Fallback30YearRate, quote.RatePercent)
	}
	if quote.AsOfDate != "" {
		t.Errorf("fallback quote should carry no as-of date, got %q", quote.AsOfDate)
	}
}

func TestResolve_FallbackPerSeries(t *testing.T) {

	source := repository.NewStaticRateSource()
	source.Err = errors.New("timeout")

	svc := NewRateService(source, nil)

	fifteen := svc.Resolve(context.Background(), Series15YearFixed)
	if fifteen.RatePercent != Fallback15YearRate {
		t.Errorf("expected 15-year fallback %v, got %v", Fallback15YearRate, fifteen.RatePercent)
	}
}

func TestCurrentRates(t *testing.T) {

	source := repository.NewStaticRateSource()
	source.Observations[Series30YearFixed] = repository.Observation{Value: 6.90, Date: "2026-08-21"}
	// 15-year series missing: that lookup alone should fall back.

	svc := NewRateService(source, nil)

	thirty, fifteen := svc.CurrentRates(context.Background())

	if thirty.IsFallback || thirty.RatePercent != 6.90 {
		t.Errorf("expected live 30-year quote, got %+v", thirty)
	}
	if !fifteen.IsFallback || fifteen.RatePercent != Fallback15YearRate {
		t.Errorf("expected 15-year fallback, got %+v", fifteen)
	}
}
