package service

import (
	"math"

	"go.uber.org/zap"

	"mortgage-calc/domain"
)

// AmortizationService computes fixed-rate, fully amortizing monthly
// payment schedules.
type AmortizationService struct {
	logger *zap.Logger
}

// NewAmortizationService creates a new AmortizationService. A nil logger
// is replaced with a no-op logger.
func NewAmortizationService(logger *zap.Logger) *AmortizationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationService{logger: logger}
}

// Compute produces the full monthly schedule for the given terms along
// with the totals derived from it. It is a pure function of its input:
// identical terms yield identical output and no state is carried between
// calls. Amounts stay unrounded float64 throughout; rounding happens at
// display time.
func (s *AmortizationService) Compute(terms domain.LoanTerms) (domain.AmortizationResult, error) {
	if terms.Principal <= 0 {
		return domain.AmortizationResult{}, ErrInvalidPrincipal
	}
	if terms.TermYears < 1 {
		return domain.AmortizationResult{}, ErrInvalidTerm
	}
	if terms.TermYears > MaxTermYears {
		return domain.AmortizationResult{}, ErrTermTooLong
	}
	if terms.AnnualRatePercent < 0 {
		return domain.AmortizationResult{}, ErrNegativeRate
	}
	if terms.AnnualRatePercent > MaxAnnualRatePercent {
		return domain.AmortizationResult{}, ErrRateTooHigh
	}

	monthlyRate := terms.AnnualRatePercent / 12 / 100
	numPayments := terms.TermYears * 12

	var monthlyPayment float64
	if monthlyRate == 0 {
		// The annuity formula divides by zero at 0%; a zero-rate loan is
		// an even principal-only split.
		monthlyPayment = terms.Principal / float64(numPayments)
	} else {
		// P * r * (1+r)^n / ((1+r)^n - 1)
		factor := math.Pow(1+monthlyRate, float64(numPayments))
		monthlyPayment = terms.Principal * (monthlyRate * factor) / (factor - 1)
	}

	schedule := make([]domain.PaymentPeriod, 0, numPayments)
	balance := terms.Principal
	cumulative := 0.0
	totalInterest := 0.0
	totalPrincipal := 0.0

	for period := 1; period <= numPayments; period++ {
		interest := balance * monthlyRate
		principal := monthlyPayment - interest
		balance -= principal
		cumulative += monthlyPayment

		totalInterest += interest
		totalPrincipal += principal

		schedule = append(schedule, domain.PaymentPeriod{
			Period:            period,
			Payment:           monthlyPayment,
			Principal:         principal,
			Interest:          interest,
			Balance:           balance,
			CumulativePayment: cumulative,
		})
	}

	if math.Abs(balance) > BalanceTolerance*terms.Principal {
		s.logger.Warn("schedule did not amortize to zero",
			zap.Float64("residual_balance", balance),
			zap.Float64("principal", terms.Principal),
		)
	}

	return domain.AmortizationResult{
		Terms:          terms,
		MonthlyPayment: monthlyPayment,
		TotalPayment:   cumulative,
		TotalInterest:  totalInterest,
		TotalPrincipal: totalPrincipal,
		Schedule:       schedule,
	}, nil
}
