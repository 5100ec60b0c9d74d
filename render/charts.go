package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"mortgage-calc/domain"
)

// ChartsPage writes the summary charts for a computed schedule: a donut
// of total principal vs total interest, and the per-period payment split
// stacked with the cumulative payment line overlaid.
func ChartsPage(w io.Writer, result domain.AmortizationResult, quote domain.RateQuote) error {
	page := components.NewPage()
	page.PageTitle = "Mortgage Calculator"
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		breakdownPie(result),
		paymentsChart(result, quote),
	)
	return page.Render(w)
}

func breakdownPie(result domain.AmortizationResult) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Total Principal vs Total Interest Paid",
			Subtitle: fmt.Sprintf("Monthly payment %s, total payment %s",
				USD(result.MonthlyPayment), USD(result.TotalPayment)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	pie.AddSeries("Totals", []opts.PieData{
		{Name: "Principal", Value: result.TotalPrincipal},
		{Name: "Interest", Value: result.TotalInterest},
	}).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)

	return pie
}

func paymentsChart(result domain.AmortizationResult, quote domain.RateQuote) *charts.Bar {
	subtitle := fmt.Sprintf("%.2f%% %s", quote.RatePercent, quote.Label)
	if quote.IsFallback {
		subtitle += " (fallback)"
	} else if quote.AsOfDate != "" {
		subtitle += ", as of " + quote.AsOfDate
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Principal & Interest Payments and Cumulative Payments",
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Payment Number"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Payment Amount ($)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	labels := make([]string, 0, len(result.Schedule))
	principal := make([]opts.BarData, 0, len(result.Schedule))
	interest := make([]opts.BarData, 0, len(result.Schedule))
	cumulative := make([]opts.LineData, 0, len(result.Schedule))
	for _, p := range result.Schedule {
		labels = append(labels, strconv.Itoa(p.Period))
		principal = append(principal, opts.BarData{Value: p.Principal})
		interest = append(interest, opts.BarData{Value: p.Interest})
		cumulative = append(cumulative, opts.LineData{Value: p.CumulativePayment})
	}

	bar.SetXAxis(labels).
		AddSeries("Principal", principal).
		AddSeries("Interest", interest).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "payment"}))

	line := charts.NewLine()
	line.SetXAxis(labels).
		AddSeries("Cumulative Payment", cumulative).
		SetSeriesOptions(
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  "Loan Amount",
				YAxis: result.Terms.Principal,
			}),
		)

	bar.Overlap(line)
	return bar
}
