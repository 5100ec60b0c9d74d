package render

import (
	"fmt"
	"html/template"
	"io"

	"mortgage-calc/domain"
)

var scheduleTmpl = template.Must(template.New("schedule").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Amortization Schedule</title>
<style>
  body { font-family: sans-serif; margin: 2em; }
  table { border-collapse: collapse; }
  th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
  th { background: #f4f4f4; }
  .notice { color: #b00; }
  .metrics span { margin-right: 2em; font-weight: bold; }
</style>
</head>
<body>
<h1>Amortization Schedule</h1>
{{range .Notices}}<p class="notice">{{.}}</p>
{{end}}<p>Home price {{.HomePrice}}, down payment {{.DownPayment}} ({{printf "%.1f" .DownPaymentPercent}}%), loan amount {{.LoanAmount}}</p>
<p>Rate: {{.RateLine}}</p>
<p class="metrics">
<span>Monthly Payment: {{.MonthlyPayment}}</span>
<span>Total Payment: {{.TotalPayment}}</span>
<span>Total Interest: {{.TotalInterest}}</span>
</p>
<table>
<tr><th>#</th><th>Payment</th><th>Principal</th><th>Interest</th><th>Balance</th><th>Cumulative</th></tr>
{{range .Rows}}<tr><td>{{.Period}}</td><td>{{.Payment}}</td><td>{{.Principal}}</td><td>{{.Interest}}</td><td>{{.Balance}}</td><td>{{.Cumulative}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type scheduleRow struct {
	Period     int
	Payment    string
	Principal  string
	Interest   string
	Balance    string
	Cumulative string
}

type schedulePageData struct {
	Notices            []string
	HomePrice          string
	DownPayment        string
	DownPaymentPercent float64
	LoanAmount         string
	RateLine           string
	MonthlyPayment     string
	TotalPayment       string
	TotalInterest      string
	Rows               []scheduleRow
}

// ScheduleTable writes the full schedule as a currency-formatted HTML
// table with the headline metrics above it.
func ScheduleTable(w io.Writer, result domain.AmortizationResult, breakdown domain.PurchaseBreakdown, quote domain.RateQuote, notices []string) error {
	rows := make([]scheduleRow, 0, len(result.Schedule))
	for _, p := range result.Schedule {
		rows = append(rows, scheduleRow{
			Period:     p.Period,
			Payment:    USD(p.Payment),
			Principal:  USD(p.Principal),
			Interest:   USD(p.Interest),
			Balance:    USD(p.Balance),
			Cumulative: USD(p.CumulativePayment),
		})
	}

	rateLine := fmt.Sprintf("%.2f%% (%s)", quote.RatePercent, quote.Label)
	if quote.IsFallback {
		rateLine = fmt.Sprintf("%.2f%% (%s, fallback)", quote.RatePercent, quote.Label)
	} else if quote.AsOfDate != "" {
		rateLine = fmt.Sprintf("%.2f%% (%s, as of %s)", quote.RatePercent, quote.Label, quote.AsOfDate)
	}

	return scheduleTmpl.Execute(w, schedulePageData{
		Notices:            notices,
		HomePrice:          USD(breakdown.HomePrice),
		DownPayment:        USD(breakdown.DownPaymentAmount),
		DownPaymentPercent: breakdown.DownPaymentPercent,
		LoanAmount:         USD(breakdown.LoanAmount),
		RateLine:           rateLine,
		MonthlyPayment:     USD(result.MonthlyPayment),
		TotalPayment:       USD(result.TotalPayment),
		TotalInterest:      USD(result.TotalInterest),
		Rows:               rows,
	})
}
