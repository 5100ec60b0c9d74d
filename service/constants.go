package service

// Series identifiers published by the FRED economic data API.
const (
	Series30YearFixed = "MORTGAGE30US"
	Series15YearFixed = "MORTGAGE15US"
)

// Fallback rates used when the rate source cannot be reached. These are
// advisory defaults only; callers may always override the resolved rate.
const (
	Fallback30YearRate = 6.96
	Fallback15YearRate = 6.28
)

const (
	MinHomePrice = 10_000.0
	MaxHomePrice = 10_000_000.0

	MaxAnnualRatePercent = 100.0
	MaxTermYears         = 50 // 600 months

	// BalanceTolerance bounds the residual balance after the final
	// payment, relative to the principal.
	BalanceTolerance = 1e-6
)
