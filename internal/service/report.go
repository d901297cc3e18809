package service

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"aifolio/internal/domain"

	"github.com/gocarina/gocsv"
)

// PrintEstimationSummary writes the per-pass estimation table to
// stdout, one row per symbol in collection order.
func PrintEstimationSummary(estimations []SymbolEstimation) {
	WriteEstimationSummary(os.Stdout, estimations)
}

func WriteEstimationSummary(w io.Writer, estimations []SymbolEstimation) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "symbol\tside\tdate\tcertainty\treasoning")
	for _, se := range estimations {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%s\n",
			se.Symbol,
			se.Estimation.Side,
			se.Snapshot.CurrentDate,
			se.Estimation.Certainty,
			truncate(se.Estimation.Reasoning, 80),
		)
	}
	tw.Flush()
}

// WriteBacktestReport writes the scored records plus summary lines.
func WriteBacktestReport(w io.Writer, response *BacktestResponse) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "symbol\tdate\tside\tcertainty\tpriorClose\trealizedClose\tprofitLoss")
	for _, record := range response.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%s\t%s\t%s\n",
			record.Symbol,
			record.Date,
			record.Side,
			record.Certainty,
			record.PriorClose.StringFixed(2),
			record.RealizedClose.StringFixed(2),
			record.ProfitLoss.StringFixed(2),
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nrecords: %d\n", len(response.Records))
	fmt.Fprintf(w, "total P&L: %s\n", response.TotalProfitLoss.StringFixed(2))
	fmt.Fprintf(w, "mean P&L per decision: %.2f\n", response.MeanProfitLoss)
	fmt.Fprintf(w, "stdev P&L per decision: %.2f\n", response.StdevProfitLoss)
	if len(response.Failures) > 0 {
		fmt.Fprintf(w, "skipped symbol-days: %d\n", len(response.Failures))
	}
}

// ExportBacktestCSV writes the report table in the export contract:
// symbol, date, side, certainty, priorClose, realizedClose,
// profitLoss, reasoning.
func ExportBacktestCSV(w io.Writer, records []domain.BacktestRecord) error {
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("failed to write backtest csv: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
