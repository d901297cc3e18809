package service

import (
	"fmt"

	"aifolio/internal/domain"

	"github.com/shopspring/decimal"
)

type ComputeOrderIntentsInput struct {
	Estimations []domain.Estimation
	Positions   []domain.Position
	// PortfolioTotal is the denominator for all target sizing. It must
	// be computed once per pass and held fixed, or the per-symbol
	// allocations would not sum to the portfolio.
	PortfolioTotal decimal.Decimal
	// LastPriceOf resolves a price for symbols without an open
	// position.
	LastPriceOf func(symbol string) (decimal.Decimal, bool)
}

type ComputeOrderIntentsResponse struct {
	Intents []domain.OrderIntent
	// Skipped holds symbols dropped from the pass, currently only for
	// missing prices. Surfaced, never silently defaulted to zero.
	Skipped []SymbolError
}

// ComputeOrderIntents converts estimations plus current holdings into
// the minimal set of orders that moves the portfolio to its
// certainty-weighted target. It is a pure function of its input:
// no broker calls, no retained state.
//
// Each estimation's weight is certainty / totalCertainty, its target
// notional is portfolioTotal * weight signed by side, and the target
// quantity is the whole-share rounding of notional / price. Fractional
// short orders are not supported by the brokerage, hence whole shares
// throughout. If a target lands on zero shares an existing position is
// closed outright. If target and current holdings are on opposite
// sides, the intent is marked CloseFirst: the executor must confirm
// the position flat before submitting, because the delta below assumes
// a zero base.
//
// Intents are emitted in estimation order so identical inputs produce
// identical output.
func ComputeOrderIntents(in ComputeOrderIntentsInput) (*ComputeOrderIntentsResponse, error) {
	if in.PortfolioTotal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("cannot compute order intents with portfolio total %s", in.PortfolioTotal.String())
	}

	totalCertainty := 0.0
	for _, estimation := range in.Estimations {
		totalCertainty += estimation.Certainty
	}

	positionsBySymbol := map[string]domain.Position{}
	for _, position := range in.Positions {
		positionsBySymbol[position.Symbol] = position
	}

	response := &ComputeOrderIntentsResponse{}
	for _, estimation := range in.Estimations {
		position, hasPosition := positionsBySymbol[estimation.Symbol]

		// weight is zero when nothing has conviction; dividing by a
		// zero total would poison every allocation.
		weight := 0.0
		if totalCertainty > 0 {
			weight = estimation.Certainty / totalCertainty
		}

		targetNotional := in.PortfolioTotal.
			Mul(decimal.NewFromFloat(weight)).
			Mul(decimal.NewFromInt(int64(estimation.Side.Direction()))).
			Round(2)

		price := decimal.Zero
		if hasPosition && position.CurrentPrice.IsPositive() {
			price = position.CurrentPrice
		} else if in.LastPriceOf != nil {
			if p, ok := in.LastPriceOf(estimation.Symbol); ok {
				price = p
			}
		}
		if !price.IsPositive() {
			response.Skipped = append(response.Skipped, SymbolError{
				Symbol: estimation.Symbol,
				Err:    fmt.Errorf("%s: %w", estimation.Symbol, domain.ErrMissingPrice),
			})
			continue
		}

		targetQty := targetNotional.Div(price).Round(0)

		currentQty := decimal.Zero
		if hasPosition {
			currentQty = position.Qty
		}

		if targetQty.IsZero() {
			if !currentQty.IsZero() {
				response.Intents = append(response.Intents, domain.OrderIntent{
					Symbol:     estimation.Symbol,
					CloseFirst: true,
				})
			}
			continue
		}

		// Opposite sides cannot be netted in one order; the existing
		// position is liquidated first and the delta computed from a
		// flat base.
		closeFirst := false
		if targetQty.Sign() != currentQty.Sign() && !currentQty.IsZero() {
			closeFirst = true
			currentQty = decimal.Zero
		}

		deltaQty := targetQty.Sub(currentQty)
		if deltaQty.IsZero() {
			continue
		}

		side := domain.Buy
		if deltaQty.IsNegative() {
			side = domain.Sell
		}
		response.Intents = append(response.Intents, domain.OrderIntent{
			Symbol:     estimation.Symbol,
			Side:       side,
			Quantity:   deltaQty.Abs(),
			CloseFirst: closeFirst,
		})
	}

	return response, nil
}

// PortfolioTotal is the sum of absolute market value across open
// positions, or the configured default notional when the account holds
// nothing.
func PortfolioTotal(positions []domain.Position, defaultTotal decimal.Decimal) decimal.Decimal {
	if len(positions) == 0 {
		return defaultTotal
	}
	total := decimal.Zero
	for _, position := range positions {
		total = total.Add(position.MarketValue.Abs())
	}
	return total
}
