package domain

import (
	"github.com/shopspring/decimal"
)

// Bar is one daily OHLCV record. Date is formatted YYYY-MM-DD in
// New York time, since all market data is aligned to exchange days.
type Bar struct {
	Date       string      `json:"date"`
	Close      float64     `json:"close"`
	High       float64     `json:"high"`
	Low        float64     `json:"low"`
	Volume     uint64      `json:"volume"`
	VWAP       float64     `json:"vwap"`
	Indicators *Indicators `json:"indicators,omitempty"`
}

// Indicators are formatted to 2 decimals for the model prompt. Empty
// until the look-back window has enough bars.
type Indicators struct {
	SMA string `json:"SMA,omitempty"`
	RSI string `json:"RSI,omitempty"`
}

type NewsItem struct {
	Datetime string `json:"datetime"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
}

// SymbolSnapshot bundles everything known about one symbol as of one
// evaluation timestamp. LatestBars is ordered newest-first and excludes
// the evaluation day itself, so the snapshot never leaks the outcome
// it is used to predict.
type SymbolSnapshot struct {
	Symbol      string     `json:"symbol"`
	CurrentDate string     `json:"currentDate"`
	LatestBars  []Bar      `json:"latestBars"`
	News        []NewsItem `json:"news"`
}

// PriorClose returns the most recent close known at evaluation time,
// i.e. the previous trading day's close.
func (s SymbolSnapshot) PriorClose() (decimal.Decimal, bool) {
	if len(s.LatestBars) == 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(s.LatestBars[0].Close), true
}
