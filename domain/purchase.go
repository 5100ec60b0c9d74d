package domain

// PurchaseInput is a home purchase price with a down payment percentage.
type PurchaseInput struct {
	HomePrice          float64
	DownPaymentPercent float64
}

// PurchaseBreakdown is the derived financing split for a purchase.
// LoanAmount is the principal passed to the amortization engine.
type PurchaseBreakdown struct {
	HomePrice          float64 `json:"home_price"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	DownPaymentAmount  float64 `json:"down_payment_amount"`
	LoanAmount         float64 `json:"loan_amount"`
}
