package service

import (
	"go.uber.org/zap"

	"mortgage-calc/domain"
)

// PurchaseService derives the financed loan amount from a home purchase
// price and a down payment percentage.
type PurchaseService struct {
	logger *zap.Logger
}

func NewPurchaseService(logger *zap.Logger) *PurchaseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseService{logger: logger}
}

// Derive validates the purchase input and splits it into a down payment
// amount and the loan amount to finance.
func (s *PurchaseService) Derive(input domain.PurchaseInput) (domain.PurchaseBreakdown, error) {
	if input.HomePrice < MinHomePrice || input.HomePrice > MaxHomePrice {
		return domain.PurchaseBreakdown{}, ErrInvalidHomePrice
	}
	if input.DownPaymentPercent < 0 || input.DownPaymentPercent > 100 {
		return domain.PurchaseBreakdown{}, ErrInvalidDownPayment
	}

	down := input.HomePrice * input.DownPaymentPercent / 100

	return domain.PurchaseBreakdown{
		HomePrice:          input.HomePrice,
		DownPaymentPercent: input.DownPaymentPercent,
		DownPaymentAmount:  down,
		LoanAmount:         input.HomePrice - down,
	}, nil
}
