package domain

// RateQuote is the resolved annual rate for a mortgage series together
// with its provenance. When the external lookup fails the quote carries
// the documented default for the series, IsFallback is set, and AsOfDate
// is empty.
type RateQuote struct {
	SeriesID    string  `json:"series_id,omitempty"`
	Label       string  `json:"label"`
	RatePercent float64 `json:"rate_percent"`
	AsOfDate    string  `json:"as_of_date,omitempty"`
	IsFallback  bool    `json:"is_fallback"`
}
