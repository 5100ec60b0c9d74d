package domain

// LoanTerms is the immutable input to a single schedule computation.
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         int     `json:"term_years"`
}

// PaymentPeriod is one row of an amortization schedule.
type PaymentPeriod struct {
	Period            int     `json:"period"`
	Payment           float64 `json:"payment"`
	Principal         float64 `json:"principal"`
	Interest          float64 `json:"interest"`
	Balance           float64 `json:"balance"`
	CumulativePayment float64 `json:"cumulative_payment"`
}

// AmortizationResult holds the full ordered schedule plus the scalars
// derived from it. All amounts are raw float64 values; formatting is a
// presentation concern.
type AmortizationResult struct {
	Terms          LoanTerms       `json:"terms"`
	MonthlyPayment float64         `json:"monthly_payment"`
	TotalPayment   float64         `json:"total_payment"`
	TotalInterest  float64         `json:"total_interest"`
	TotalPrincipal float64         `json:"total_principal"`
	Schedule       []PaymentPeriod `json:"schedule"`
}
