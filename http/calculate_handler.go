package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mortgage-calc/domain"
	"mortgage-calc/service"
)

type CalculateHandler struct {
	amortization *service.AmortizationService
	purchases    *service.PurchaseService
	rates        *service.RateService
	logger       *zap.Logger
}

func NewCalculateHandler(
	amortization *service.AmortizationService,
	purchases *service.PurchaseService,
	rates *service.RateService,
	logger *zap.Logger,
) *CalculateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculateHandler{
		amortization: amortization,
		purchases:    purchases,
		rates:        rates,
		logger:       logger,
	}
}

func (h *CalculateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var breakdown *domain.PurchaseBreakdown
	principal := req.LoanAmount
	if principal == 0 {
		b, err := h.purchases.Derive(domain.PurchaseInput{
			HomePrice:          req.HomePrice,
			DownPaymentPercent: req.DownPaymentPercent,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		breakdown = &b
		principal = b.LoanAmount
	}

	var quote domain.RateQuote
	if req.AnnualRatePercent != nil {
		quote = domain.RateQuote{Label: "custom", RatePercent: *req.AnnualRatePercent}
	} else {
		quote = h.rates.Resolve(r.Context(), seriesFromRequest(req.RateSeries))
	}

	result, err := h.amortization.Compute(domain.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: quote.RatePercent,
		TermYears:         req.TermYears,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Encode into a buffer first so a failed encode never writes a
	// partial 200 response.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(CalculateResponse{
		Breakdown: breakdown,
		Rate:      quote,
		Result:    result,
	}); err != nil {
		h.logger.Error("encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("writing response", zap.Error(err))
	}
}

func seriesFromRequest(s string) string {
	switch s {
	case "15-year-fixed", service.Series15YearFixed:
		return service.Series15YearFixed
	default:
		return service.Series30YearFixed
	}
}
