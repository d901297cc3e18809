package service

import (
	"testing"

	"aifolio/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func priceTable(prices map[string]float64) func(string) (decimal.Decimal, bool) {
	return func(symbol string) (decimal.Decimal, bool) {
		price, ok := prices[symbol]
		if !ok {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(price), true
	}
}

func requireIntent(t *testing.T, intent domain.OrderIntent, symbol string, side domain.OrderSide, qty int64, closeFirst bool) {
	t.Helper()
	require.Equal(t, symbol, intent.Symbol)
	require.Equal(t, side, intent.Side)
	require.True(t, intent.Quantity.Equal(decimal.NewFromInt(qty)), "quantity %s != %d", intent.Quantity.String(), qty)
	require.Equal(t, closeFirst, intent.CloseFirst)
}

func Test_ComputeOrderIntents(t *testing.T) {
	t.Run("splits portfolio by certainty with no current positions", func(t *testing.T) {
		response, err := ComputeOrderIntents(ComputeOrderIntentsInput{
			Estimations: []domain.Estimation{
				{Symbol: "AAPL", Side: domain.SideLong, Certainty: 80},
				{Symbol: "MSFT", Side: domain.SideShort, Certainty: 20},
			},
			PortfolioTotal: decimal.NewFromInt(10000),
			LastPriceOf:    priceTable(map[string]float64{"AAPL": 100, "MSFT": 50}),
		})
		require.NoError(t, err)
		require.Empty(t, response.Skipped)
		require.Len(t, response.Intents, 2)

		// 8000 / 100 = 80 shares long, -2000 / 50 = 40 shares short
		requireIntent(t, response.Intents[0], "AAPL", domain.Buy, 80, false)
		requireIntent(t, response.Intents[1], "MSFT", domain.Sell, 40, false)
	})

	t.Run("position already at target emits nothing for it", func(t *testing.T) {
		response, err := ComputeOrderIntents(ComputeOrderIntentsInput{
			Estimations: []domain.Estimation{
				{Symbol: "AAPL", Side: domain.SideLong, Certainty: 80},
				{Symbol: "MSFT", Side: domain.SideShort, Certainty: 20},
			},
			Positions: []domain.Position{
				{Symbol: "AAPL", Qty: decimal.NewFromInt(80), CurrentPrice: decimal.NewFromInt(100), MarketValue: decimal.NewFromInt(8000)},
			},
			PortfolioTotal: decimal.NewFromInt(10000),
			LastPriceOf:    priceTable(map[string]float64{"MSFT": 50}),
		})
		require.NoError(t, err)
		require.Len(t, response.Intents, 1)
		requireIntent(t, response.Intents[0], "MSFT", domain.Sell, 40, false)
	})

	t.Run("side switch closes before opening the opposite side", func(t *testing.T) {
		response, err := ComputeOrderIntents(ComputeOrderIntentsInput{
			Estimations: []domain.Estimation{
				{Symbol: "AAPL", Side: domain.SideShort, Certainty: 100},
			},
			Positions: []domain.Position{
				{Symbol: "AAPL", Qty: decimal.NewFromInt(50), CurrentPrice: decimal.NewFromInt(100), MarketValue: decimal.NewFromInt(5000)},
			},
			PortfolioTotal: decimal.NewFromInt(3000),
		})
		require.NoError(t, err)
		require.Len(t, response.Intents, 1)

		// target is -30 shares; the delta must be computed from a flat
		// base, never netted against the existing 50 long
		requireIntent(t, response.Intents[0], "AAPL", domain.Sell, 30, true)
	})

	t.Run("zero total certainty closes held positions and buys nothing", func(t *testing.T) {
		response, err := ComputeOrderIntents(ComputeOrderIntentsInput{
			Estimations: []domain.Estimation{
				{Symbol: "AAPL", Side: domain.SideLong, Certainty: 0},
				{Symbol: "MSFT", Side: domain.SideShort, Certainty: 0},
				{Symbol: "GOOG", Side: domain.SideLong, Certainty: 0},
			},
			Positions: []domain.Position{
				{Symbol: "MSFT", Qty: decimal.NewFromInt(10), CurrentPrice: decimal.NewFromInt(50), MarketValue: decimal.NewFromInt(500)},
			},
			PortfolioTotal: decimal.NewFromInt(10000),
			LastPriceOf:    priceTable(map[string]float64{"AAPL": 100, "MSFT": 50, "GOOG": 150}),
		})
		require.NoError(t, err)
		require.Len(t, response.Intents, 1)
		require.Equal(t, "MSFT", response.Intents[0].Symbol)
		require.True(t, response.Intents[0].IsClose())
	})

	t.Run("zero certainty with no position emits nothing", func(t *testing.T) {
		response, err := ComputeOrderIntents(ComputeOrderIntentsInput{
			Estimations: []domain.Estimation{
				{Symbol: "AAPL", Side: domain.SideLong, Certainty: 0},
				{Symbol: "MSFT", Side: domain.SideLong, Certainty: 100},
			},
			PortfolioTotal: decimal.NewFromInt(10000),
			LastPriceOf:    priceTable(map[string]float64{"AAPL": 100, "MSFT": 50}),
		})
		require.NoError(t, err)
		require.Len(t, response.Intents, 1)
		requireIntent(t, response.Intents[0], "MSFT", domain.Buy, 200, false)
	})

	t.Run("missing price skips the symbol but not the pass", func(t *testing.T) {
		response, err := ComputeOrderIntents(ComputeOrderIntentsInput{
			Estimations: []domain.Estimation{
				{Symbol: "NOPX", Side: domain.SideLong, Certainty: 50},
				{Symbol: "MSFT", Side: domain.SideLong, Certainty: 50},
			},
			PortfolioTotal: decimal.NewFromInt(10000),
			LastPriceOf:    priceTable(map[string]float64{"MSFT": 50}),
		})
		require.NoError(t, err)
		require.Len(t, response.Skipped, 1)
		require.Equal(t, "NOPX", response.Skipped[0].Symbol)
		require.ErrorIs(t, response.Skipped[0].Err, domain.ErrMissingPrice)

		require.Len(t, response.Intents, 1)
		requireIntent(t, response.Intents[0], "MSFT", domain.Buy, 100, false)
	})

	t.Run("is idempotent once positions match the target", func(t *testing.T) {
		estimations := []domain.Estimation{
			{Symbol: "AAPL", Side: domain.SideLong, Certainty: 80},
			{Symbol: "MSFT", Side: domain.SideShort, Certainty: 20},
		}
		first, err := ComputeOrderIntents(ComputeOrderIntentsInput{
			Estimations:    estimations,
			PortfolioTotal: decimal.NewFromInt(10000),
			LastPriceOf:    priceTable(map[string]float64{"AAPL": 100, "MSFT": 50}),
		})
		require.NoError(t, err)
		require.Len(t, first.Intents, 2)

		second, err := ComputeOrderIntents(ComputeOrderIntentsInput{
			Estimations: estimations,
			Positions: []domain.Position{
				{Symbol: "AAPL", Qty: decimal.NewFromInt(80), CurrentPrice: decimal.NewFromInt(100), MarketValue: decimal.NewFromInt(8000)},
				{Symbol: "MSFT", Qty: decimal.NewFromInt(-40), CurrentPrice: decimal.NewFromInt(50), MarketValue: decimal.NewFromInt(-2000)},
			},
			PortfolioTotal: decimal.NewFromInt(10000),
			LastPriceOf:    priceTable(map[string]float64{"AAPL": 100, "MSFT": 50}),
		})
		require.NoError(t, err)
		require.Empty(t, second.Intents)
	})

	t.Run("allocated notional sums to the portfolio within rounding", func(t *testing.T) {
		// price of one cent makes share quantities exactly equal cents
		// of notional, so rounding error is the only slack
		prices := priceTable(map[string]float64{"A": 0.01, "B": 0.01, "C": 0.01})
		response, err := ComputeOrderIntents(ComputeOrderIntentsInput{
			Estimations: []domain.Estimation{
				{Symbol: "A", Side: domain.SideLong, Certainty: 1},
				{Symbol: "B", Side: domain.SideLong, Certainty: 1},
				{Symbol: "C", Side: domain.SideShort, Certainty: 1},
			},
			PortfolioTotal: decimal.NewFromInt(10000),
			LastPriceOf:    prices,
		})
		require.NoError(t, err)
		require.Len(t, response.Intents, 3)

		allocated := decimal.Zero
		for _, intent := range response.Intents {
			allocated = allocated.Add(intent.Quantity.Mul(decimal.NewFromFloat(0.01)))
		}
		slack := decimal.NewFromInt(10000).Sub(allocated).Abs()
		require.True(t, slack.LessThanOrEqual(decimal.NewFromFloat(0.03)), "slack %s exceeds 3 cents", slack.String())
	})

	t.Run("rejects a non-positive portfolio total", func(t *testing.T) {
		_, err := ComputeOrderIntents(ComputeOrderIntentsInput{
			Estimations:    []domain.Estimation{{Symbol: "AAPL", Side: domain.SideLong, Certainty: 100}},
			PortfolioTotal: decimal.Zero,
		})
		require.Error(t, err)
	})
}

func Test_PortfolioTotal(t *testing.T) {
	t.Run("uses default notional when flat", func(t *testing.T) {
		total := PortfolioTotal(nil, decimal.NewFromInt(10000))
		require.True(t, total.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("sums absolute market values, shorts included", func(t *testing.T) {
		total := PortfolioTotal([]domain.Position{
			{Symbol: "AAPL", MarketValue: decimal.NewFromInt(8000)},
			{Symbol: "MSFT", MarketValue: decimal.NewFromInt(-2000)},
		}, decimal.NewFromInt(10000))
		require.True(t, total.Equal(decimal.NewFromInt(10000)))
	})
}
