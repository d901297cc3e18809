package service

import (
	"context"
	"testing"
	"time"

	"aifolio/internal/domain"
	mock_repository "aifolio/internal/repository/mocks"
	"aifolio/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeEstimationService returns canned estimations keyed by decision
// date and records which dates were evaluated.
type fakeEstimationService struct {
	byDate map[string][]SymbolEstimation
	calls  []string
}

func (f *fakeEstimationService) CollectEstimations(ctx context.Context, symbols []string, asOf time.Time) (*CollectEstimationsResult, error) {
	date := util.FormatDate(asOf)
	f.calls = append(f.calls, date)
	return &CollectEstimationsResult{Estimations: f.byDate[date]}, nil
}

func symbolEstimation(symbol string, side domain.Side, certainty float64, priorDate string, priorClose float64) SymbolEstimation {
	return SymbolEstimation{
		Symbol: symbol,
		Snapshot: &domain.SymbolSnapshot{
			Symbol:     symbol,
			LatestBars: []domain.Bar{{Date: priorDate, Close: priorClose}},
		},
		Estimation: &domain.Estimation{Symbol: symbol, Side: side, Certainty: certainty},
	}
}

func Test_BacktestRun(t *testing.T) {
	t.Run("walks trading days, skips weekends, scores against realized closes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockAlpacaRepository(ctrl)

		// 2024-01-05 is a Friday, 2024-01-08 the following Monday
		estimations := &fakeEstimationService{byDate: map[string][]SymbolEstimation{
			"2024-01-05": {symbolEstimation("AAPL", domain.SideLong, 80, "2024-01-04", 100)},
			"2024-01-08": {symbolEstimation("AAPL", domain.SideShort, 60, "2024-01-05", 105)},
		}}

		repo.EXPECT().GetMultiBars(gomock.Any(), []string{"AAPL"}, gomock.Any(), gomock.Any()).Return(map[string][]domain.Bar{
			"AAPL": {
				{Date: "2024-01-05", Close: 105},
				{Date: "2024-01-08", Close: 103},
			},
		}, nil)

		handler := backtestServiceHandler{EstimationService: estimations, AlpacaRepository: repo}
		response, err := handler.Run(context.Background(), BacktestInput{
			Start:   util.NewDate(2024, 1, 5),
			End:     util.NewDate(2024, 1, 8),
			Symbols: []string{"AAPL"},
		})
		require.NoError(t, err)

		// Saturday and Sunday produce no evaluation at all
		require.Equal(t, []string{"2024-01-05", "2024-01-08"}, estimations.calls)

		require.Len(t, response.Records, 2)
		first, second := response.Records[0], response.Records[1]

		// long: realized 105 vs prior 100
		require.Equal(t, "2024-01-05", first.Date)
		require.True(t, first.ProfitLoss.Equal(decimal.NewFromInt(5)), "got %s", first.ProfitLoss.String())
		// short: realized 103 vs prior 105, gain inverted
		require.Equal(t, "2024-01-08", second.Date)
		require.True(t, second.ProfitLoss.Equal(decimal.NewFromInt(2)), "got %s", second.ProfitLoss.String())

		require.True(t, response.TotalProfitLoss.Equal(decimal.NewFromInt(7)), "got %s", response.TotalProfitLoss.String())
	})

	t.Run("prior close predates the decision it is scored against", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockAlpacaRepository(ctrl)

		estimations := &fakeEstimationService{byDate: map[string][]SymbolEstimation{
			"2024-01-05": {symbolEstimation("AAPL", domain.SideLong, 80, "2024-01-04", 100)},
		}}
		repo.EXPECT().GetMultiBars(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(map[string][]domain.Bar{
			"AAPL": {{Date: "2024-01-05", Close: 105}},
		}, nil)

		handler := backtestServiceHandler{EstimationService: estimations, AlpacaRepository: repo}
		response, err := handler.Run(context.Background(), BacktestInput{
			Start:   util.NewDate(2024, 1, 5),
			End:     util.NewDate(2024, 1, 5),
			Symbols: []string{"AAPL"},
		})
		require.NoError(t, err)
		require.Len(t, response.Records, 1)

		record := response.Records[0]
		snapshotBar := estimations.byDate["2024-01-05"][0].Snapshot.LatestBars[0]
		require.Less(t, snapshotBar.Date, record.Date)
		require.True(t, record.PriorClose.Equal(decimal.NewFromInt(100)))
	})

	t.Run("drops decisions with no realized bar instead of scoring zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockAlpacaRepository(ctrl)

		// 2024-01-01 is a Monday, but a market holiday: the harness
		// evaluates it, then finds no realized bar
		estimations := &fakeEstimationService{byDate: map[string][]SymbolEstimation{
			"2024-01-01": {symbolEstimation("AAPL", domain.SideLong, 80, "2023-12-29", 100)},
			"2024-01-02": {symbolEstimation("AAPL", domain.SideLong, 80, "2024-01-01", 100)},
		}}
		repo.EXPECT().GetMultiBars(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(map[string][]domain.Bar{
			"AAPL": {{Date: "2024-01-02", Close: 101}},
		}, nil)

		handler := backtestServiceHandler{EstimationService: estimations, AlpacaRepository: repo}
		response, err := handler.Run(context.Background(), BacktestInput{
			Start:   util.NewDate(2024, 1, 1),
			End:     util.NewDate(2024, 1, 2),
			Symbols: []string{"AAPL"},
		})
		require.NoError(t, err)
		require.Len(t, response.Records, 1)
		require.Equal(t, "2024-01-02", response.Records[0].Date)
	})

	t.Run("rejects an empty symbol list", func(t *testing.T) {
		handler := backtestServiceHandler{}
		_, err := handler.Run(context.Background(), BacktestInput{
			Start: util.NewDate(2024, 1, 1),
			End:   util.NewDate(2024, 1, 2),
		})
		require.Error(t, err)
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		handler := backtestServiceHandler{}
		_, err := handler.Run(context.Background(), BacktestInput{
			Start:   util.NewDate(2024, 1, 2),
			End:     util.NewDate(2024, 1, 1),
			Symbols: []string{"AAPL"},
		})
		require.Error(t, err)
	})
}
