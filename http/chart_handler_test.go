package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mortgage-calc/repository"
	"mortgage-calc/service"
)

func newTestChartHandler() *ChartHandler {
	source := repository.NewStaticRateSource()
	source.Observations[service.Series30YearFixed] = repository.Observation{Value: 6.96, Date: "2026-08-21"}
	source.Observations[service.Series15YearFixed] = repository.Observation{Value: 6.28, Date: "2026-08-21"}

	return NewChartHandler(
		service.NewAmortizationService(nil),
		service.NewPurchaseService(nil),
		service.NewRateService(source, nil),
		nil,
	)
}

func TestChartHandler_Defaults(t *testing.T) {

	handler := newTestChartHandler()

	req := httptest.NewRequest(http.MethodGet, "/mortgage/chart", nil)
	w := httptest.NewRecorder()

	handler.Chart(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{"Principal", "Interest", "Cumulative Payment", "Loan Amount"} {
		if !strings.Contains(body, want) {
			t.Errorf("chart page missing %q", want)
		}
	}
}

func TestChartHandler_ScheduleTable(t *testing.T) {

	handler := newTestChartHandler()

	req := httptest.NewRequest(http.MethodGet, "/mortgage/schedule?home_price=400,000&down_payment_percent=20&term_years=30", nil)
	w := httptest.NewRecorder()

	handler.Schedule(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Amortization Schedule") {
		t.Error("schedule page missing title")
	}
	if !strings.Contains(body, "$320,000.00") {
		t.Error("schedule page missing formatted loan amount")
	}
	if !strings.Contains(body, "as of 2026-08-21") {
		t.Error("schedule page missing rate provenance")
	}
}

func TestChartHandler_InvalidInputFallsBackToDefaults(t *testing.T) {

	handler := newTestChartHandler()

	req := httptest.NewRequest(http.MethodGet, "/mortgage/schedule?home_price=abc&term_years=999", nil)
	w := httptest.NewRecorder()

	handler.Schedule(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("invalid input should still render with defaults, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "invalid home_price") {
		t.Error("expected an inline notice for the bad home price")
	}
	if !strings.Contains(body, "term must be between") {
		t.Error("expected an inline notice for the out-of-range term")
	}
	if !strings.Contains(body, "$320,000.00") {
		t.Error("expected the default loan amount to be used")
	}
}

func TestChartHandler_CustomRate(t *testing.T) {

	handler := newTestChartHandler()

	req := httptest.NewRequest(http.MethodGet, "/mortgage/schedule?annual_rate=5.25", nil)
	w := httptest.NewRecorder()

	handler.Schedule(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "5.25% (custom)") {
		t.Error("expected the custom rate in the rate line")
	}
}
