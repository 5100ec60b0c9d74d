package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mortgage-calc/repository"
	"mortgage-calc/service"
)

func TestRatesHandler_LiveAndFallback(t *testing.T) {

	source := repository.NewStaticRateSource()
	source.Observations[service.Series30YearFixed] = repository.Observation{Value: 7.01, Date: "2026-08-21"}

	handler := NewRatesHandler(service.NewRateService(source, nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/mortgage/rates", nil)
	w := httptest.NewRecorder()

	handler.Rates(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp RatesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.ThirtyYearFixed.IsFallback || resp.ThirtyYearFixed.RatePercent != 7.01 {
		t.Errorf("expected live 30-year quote, got %+v", resp.ThirtyYearFixed)
	}
	if !resp.FifteenYearFixed.IsFallback || resp.FifteenYearFixed.RatePercent != service.Fallback15YearRate {
		t.Errorf("expected 15-year fallback quote, got %+v", resp.FifteenYearFixed)
	}
}

func TestRatesHandler_MethodNotAllowed(t *testing.T) {

	handler := NewRatesHandler(service.NewRateService(repository.NewStaticRateSource(), nil), nil)

	req := httptest.NewRequest(http.MethodPost, "/mortgage/rates", nil)
	w := httptest.NewRecorder()

	handler.Rates(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
