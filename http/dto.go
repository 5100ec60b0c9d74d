package http

import "mortgage-calc/domain"

// CalculateRequest accepts either a purchase price with a down payment
// percentage or a loan amount directly. The rate is taken from
// annual_rate_percent when present (including an explicit 0 for a
// zero-rate loan); otherwise it is resolved from rate_series.
type CalculateRequest struct {
	HomePrice          float64  `json:"home_price,omitempty"`
	DownPaymentPercent float64  `json:"down_payment_percent,omitempty"`
	LoanAmount         float64  `json:"loan_amount,omitempty"`
	AnnualRatePercent  *float64 `json:"annual_rate_percent,omitempty"`
	RateSeries         string   `json:"rate_series,omitempty"`
	TermYears          int      `json:"term_years"`
}

type CalculateResponse struct {
	Breakdown *domain.PurchaseBreakdown `json:"breakdown,omitempty"`
	Rate      domain.RateQuote          `json:"rate"`
	Result    domain.AmortizationResult `json:"result"`
}

type RatesResponse struct {
	ThirtyYearFixed  domain.RateQuote `json:"thirty_year_fixed"`
	FifteenYearFixed domain.RateQuote `json:"fifteen_year_fixed"`
}
