package render

import "testing"

func TestUSD(t *testing.T) {

	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{833.3333333, "$833.33"},
		{2119.5, "$2,119.50"},
		{320000, "$320,000.00"},
		{1234567.891, "$1,234,567.89"},
		{-80000, "-$80,000.00"},
	}

	for _, tc := range cases {
		if got := USD(tc.in); got != tc.want {
			t.Errorf("USD(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
