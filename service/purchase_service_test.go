package service

import (
	"errors"
	"testing"

	"mortgage-calc/domain"
)

func TestDerive_StandardDownPayment(t *testing.T) {

	svc := NewPurchaseService(nil)

	breakdown, err := svc.Derive(domain.PurchaseInput{
		HomePrice:          400000,
		DownPaymentPercent: 20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if breakdown.DownPaymentAmount != 80000 {
		t.Errorf("expected down payment 80000, got %v", breakdown.DownPaymentAmount)
	}
	if breakdown.LoanAmount != 320000 {
		t.Errorf("expected loan amount 320000, got %v", breakdown.LoanAmount)
	}
}

func TestDerive_ZeroDownPayment(t *testing.T) {

	svc := NewPurchaseService(nil)

	breakdown, err := svc.Derive(domain.PurchaseInput{
		HomePrice:          250000,
		DownPaymentPercent: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if breakdown.LoanAmount != 250000 {
		t.Errorf("expected loan amount 250000, got %v", breakdown.LoanAmount)
	}
}

func TestDerive_InvalidInput(t *testing.T) {

	svc := NewPurchaseService(nil)

	cases := []struct {
		name  string
		input domain.PurchaseInput
		want  error
	}{
		{"price too low", domain.PurchaseInput{HomePrice: 5000, DownPaymentPercent: 20}, ErrInvalidHomePrice},
		{"price too high", domain.PurchaseInput{HomePrice: 20_000_000, DownPaymentPercent: 20}, ErrInvalidHomePrice},
		{"negative percent", domain.PurchaseInput{HomePrice: 400000, DownPaymentPercent: -1}, ErrInvalidDownPayment},
		{"percent above 100", domain.PurchaseInput{HomePrice: 400000, DownPaymentPercent: 101}, ErrInvalidDownPayment},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Derive(tc.input)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
