package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"mortgage-calc/service"
)

type RatesHandler struct {
	rates  *service.RateService
	logger *zap.Logger
}

func NewRatesHandler(rates *service.RateService, logger *zap.Logger) *RatesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RatesHandler{rates: rates, logger: logger}
}

// Rates returns the current 30-year and 15-year fixed quotes. Lookup
// failures surface as fallback quotes, never as errors.
func (h *RatesHandler) Rates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	thirty, fifteen := h.rates.CurrentRates(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RatesResponse{
		ThirtyYearFixed:  thirty,
		FifteenYearFixed: fifteen,
	}); err != nil {
		h.logger.Warn("writing response", zap.Error(err))
	}
}
