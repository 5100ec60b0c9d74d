package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"mortgage-calc/domain"
	"mortgage-calc/render"
	"mortgage-calc/service"
)

// Defaults mirror the calculator's initial form values. Invalid query
// input is reported inline on the page and replaced with these so the
// rest of the computation can still render.
const (
	defaultHomePrice          = 400_000.0
	defaultDownPaymentPercent = 20.0
	defaultTermYears          = 30
)

type ChartHandler struct {
	amortization *service.AmortizationService
	purchases    *service.PurchaseService
	rates        *service.RateService
	logger       *zap.Logger
}

func NewChartHandler(
	amortization *service.AmortizationService,
	purchases *service.PurchaseService,
	rates *service.RateService,
	logger *zap.Logger,
) *ChartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartHandler{
		amortization: amortization,
		purchases:    purchases,
		rates:        rates,
		logger:       logger,
	}
}

// Chart renders the summary charts for the requested loan.
func (h *ChartHandler) Chart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, _, quote, _, err := h.computeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.ChartsPage(w, result, quote); err != nil {
		h.logger.Warn("rendering charts", zap.Error(err))
	}
}

// Schedule renders the full amortization table with currency formatting.
func (h *ChartHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, breakdown, quote, notices, err := h.computeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.ScheduleTable(w, result, breakdown, quote, notices); err != nil {
		h.logger.Warn("rendering schedule", zap.Error(err))
	}
}

// computeFromQuery resolves the loan from query parameters, substituting
// defaults (and collecting a notice) for any value that fails to parse or
// validate.
func (h *ChartHandler) computeFromQuery(r *http.Request) (domain.AmortizationResult, domain.PurchaseBreakdown, domain.RateQuote, []string, error) {
	q := r.URL.Query()
	var notices []string

	homePrice := floatParam(q, "home_price", defaultHomePrice, &notices)
	downPct := floatParam(q, "down_payment_percent", defaultDownPaymentPercent, &notices)
	termYears := intParam(q, "term_years", defaultTermYears, &notices)

	breakdown, err := h.purchases.Derive(domain.PurchaseInput{
		HomePrice:          homePrice,
		DownPaymentPercent: downPct,
	})
	if err != nil {
		notices = append(notices, fmt.Sprintf("%v, using defaults", err))
		breakdown, _ = h.purchases.Derive(domain.PurchaseInput{
			HomePrice:          defaultHomePrice,
			DownPaymentPercent: defaultDownPaymentPercent,
		})
	}

	var quote domain.RateQuote
	if raw := q.Get("annual_rate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 || rate > service.MaxAnnualRatePercent {
			notices = append(notices, fmt.Sprintf("invalid annual_rate %q, using the current %s rate", raw, labelForSeries(q.Get("rate_series"))))
			quote = h.rates.Resolve(r.Context(), seriesFromRequest(q.Get("rate_series")))
		} else {
			quote = domain.RateQuote{Label: "custom", RatePercent: rate}
		}
	} else {
		quote = h.rates.Resolve(r.Context(), seriesFromRequest(q.Get("rate_series")))
	}

	if termYears < 1 || termYears > service.MaxTermYears {
		notices = append(notices, fmt.Sprintf("term must be between 1 and %d years, using %d", service.MaxTermYears, defaultTermYears))
		termYears = defaultTermYears
	}

	result, err := h.amortization.Compute(domain.LoanTerms{
		Principal:         breakdown.LoanAmount,
		AnnualRatePercent: quote.RatePercent,
		TermYears:         termYears,
	})
	if err != nil {
		return domain.AmortizationResult{}, domain.PurchaseBreakdown{}, domain.RateQuote{}, nil, err
	}

	return result, breakdown, quote, notices, nil
}

func labelForSeries(s string) string {
	if seriesFromRequest(s) == service.Series15YearFixed {
		return "15-year fixed"
	}
	return "30-year fixed"
}

// floatParam reads a numeric query parameter, tolerating comma grouping.
func floatParam(q url.Values, name string, def float64, notices *[]string) float64 {
	raw := q.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		*notices = append(*notices, fmt.Sprintf("invalid %s %q, using %v", name, raw, def))
		return def
	}
	return v
}

func intParam(q url.Values, name string, def int, notices *[]string) int {
	raw := q.Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*notices = append(*notices, fmt.Sprintf("invalid %s %q, using %v", name, raw, def))
		return def
	}
	return v
}
