package domain

import (
	"github.com/shopspring/decimal"
)

// BacktestRecord is one scored decision: what the model called for a
// symbol on a date, and how the call worked out against the realized
// close. Records are immutable once scored and discarded after export.
type BacktestRecord struct {
	Symbol        string          `csv:"symbol" json:"symbol"`
	Date          string          `csv:"date" json:"date"`
	Side          Side            `csv:"side" json:"side"`
	Certainty     float64         `csv:"certainty" json:"certainty"`
	PriorClose    decimal.Decimal `csv:"priorClose" json:"priorClose"`
	RealizedClose decimal.Decimal `csv:"realizedClose" json:"realizedClose"`
	ProfitLoss    decimal.Decimal `csv:"profitLoss" json:"profitLoss"`
	Reasoning     string          `csv:"reasoning" json:"reasoning"`
}
