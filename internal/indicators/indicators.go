package indicators

import (
	"strconv"

	"aifolio/internal/domain"

	"github.com/montanaflynn/stats"
)

// Period is the look-back window for both the moving average and the
// relative strength index.
const Period = 14

// AttachIndicators computes SMA and RSI for each bar and attaches them
// formatted to 2 decimals. Indicators must be computed strictly in
// time order, but callers hold bars newest-first for display, so the
// slice is reversed for the computation and reversed back before
// returning. Bars inside the look-back warm-up get empty values.
func AttachIndicators(bars []domain.Bar) []domain.Bar {
	reverse(bars)

	closes := make([]float64, 0, len(bars))
	rsi := newWilderRSI(Period)
	for i := range bars {
		closes = append(closes, bars[i].Close)

		ind := &domain.Indicators{}
		if len(closes) >= Period {
			mean, err := stats.Mean(closes[len(closes)-Period:])
			if err == nil {
				ind.SMA = formatValue(mean)
			}
		}
		if v, ok := rsi.next(bars[i].Close); ok {
			ind.RSI = formatValue(v)
		}
		bars[i].Indicators = ind
	}

	reverse(bars)
	return bars
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func reverse(bars []domain.Bar) {
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
}

// wilderRSI is the standard smoothed RSI: the first value is a simple
// average over the first `period` price changes, later values use
// Wilder's smoothing.
type wilderRSI struct {
	period    int
	prevClose float64
	changes   int
	avgGain   float64
	avgLoss   float64
}

func newWilderRSI(period int) *wilderRSI {
	return &wilderRSI{period: period}
}

func (r *wilderRSI) next(close float64) (float64, bool) {
	if r.changes == 0 {
		r.prevClose = close
		r.changes = 1
		return 0, false
	}

	change := close - r.prevClose
	r.prevClose = close
	gain, loss := 0.0, 0.0
	if change > 0 {
		gain = change
	} else {
		loss = -change
	}

	if r.changes <= r.period {
		r.avgGain += gain / float64(r.period)
		r.avgLoss += loss / float64(r.period)
	} else {
		r.avgGain = (r.avgGain*float64(r.period-1) + gain) / float64(r.period)
		r.avgLoss = (r.avgLoss*float64(r.period-1) + loss) / float64(r.period)
	}
	r.changes++

	if r.changes <= r.period {
		return 0, false
	}
	if r.avgLoss == 0 {
		return 100, true
	}
	rs := r.avgGain / r.avgLoss
	return 100 - 100/(1+rs), true
}
