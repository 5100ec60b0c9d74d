package service

import (
	"errors"
)

var (
	ErrInvalidPrincipal   = errors.New("principal must be greater than zero")
	ErrInvalidTerm        = errors.New("term must be at least one year")
	ErrTermTooLong        = errors.New("term exceeds the maximum supported length")
	ErrNegativeRate       = errors.New("interest rate cannot be negative")
	ErrRateTooHigh        = errors.New("interest rate exceeds 100 percent")
	ErrInvalidHomePrice   = errors.New("home price must be between $10,000 and $10,000,000")
	ErrInvalidDownPayment = errors.New("down payment percent must be between 0 and 100")
)
