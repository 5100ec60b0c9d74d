package render

import (
	"strings"

	"github.com/shopspring/decimal"
)

// USD formats an amount as a dollar string with comma grouping, rounding
// to cents with banker's rounding. Formatting lives here so the schedule
// itself can stay in raw float64 values.
func USD(amount float64) string {
	s := decimal.NewFromFloat(amount).RoundBank(2).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := "$" + b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
