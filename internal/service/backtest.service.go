package service

import (
	"context"
	"fmt"
	"time"

	"aifolio/internal/domain"
	"aifolio/internal/logger"
	"aifolio/internal/repository"
	"aifolio/internal/util"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type BacktestInput struct {
	Start   time.Time
	End     time.Time
	Symbols []string
}

type BacktestResponse struct {
	Records         []domain.BacktestRecord
	TotalProfitLoss decimal.Decimal
	MeanProfitLoss  float64
	StdevProfitLoss float64
	// Failures from estimation collection across all simulated days.
	Failures []SymbolError
}

// BacktestService replays the estimation process over a historical
// date range, without order execution, and scores each decision
// against the realized close.
type BacktestService interface {
	Run(ctx context.Context, in BacktestInput) (*BacktestResponse, error)
}

type backtestServiceHandler struct {
	EstimationService EstimationService
	AlpacaRepository  repository.AlpacaRepository
}

func NewBacktestService(estimationService EstimationService, alpacaRepository repository.AlpacaRepository) BacktestService {
	return backtestServiceHandler{
		EstimationService: estimationService,
		AlpacaRepository:  alpacaRepository,
	}
}

// pendingRecord is a decision awaiting its realized outcome. The prior
// close is the newest bar in the decision-time snapshot, which is
// strictly before the decision date; the estimation never sees the
// close it is scored against.
type pendingRecord struct {
	symbol     string
	date       string
	estimation domain.Estimation
	priorClose decimal.Decimal
}

func (h backtestServiceHandler) Run(ctx context.Context, in BacktestInput) (*BacktestResponse, error) {
	log := logger.FromContext(ctx)

	if len(in.Symbols) == 0 {
		return nil, fmt.Errorf("backtest requires at least one symbol")
	}
	if in.End.Before(in.Start) {
		return nil, fmt.Errorf("backtest end %s is before start %s", util.FormatDate(in.End), util.FormatDate(in.Start))
	}

	response := &BacktestResponse{}
	pending := []pendingRecord{}

	// Walk calendar days at the simulated decision time, shortly after
	// market open. Weekends produce no snapshot, estimation or record.
	end := util.AtDecisionTime(in.End)
	for current := util.AtDecisionTime(in.Start); util.DateLte(current, end); current = current.AddDate(0, 0, 1) {
		if util.IsWeekend(current) {
			continue
		}

		collected, err := h.EstimationService.CollectEstimations(ctx, in.Symbols, current)
		if err != nil {
			return nil, err
		}
		response.Failures = append(response.Failures, collected.Failures...)
		PrintEstimationSummary(collected.Estimations)

		for _, se := range collected.Estimations {
			priorClose, ok := se.Snapshot.PriorClose()
			if !ok {
				log.Warnf("no prior close for %s on %s, dropping", se.Symbol, util.FormatDate(current))
				continue
			}
			pending = append(pending, pendingRecord{
				symbol:     se.Symbol,
				date:       util.FormatDate(current),
				estimation: *se.Estimation,
				priorClose: priorClose,
			})
		}
	}

	// One batched bars request for the whole range, instead of one per
	// simulated day.
	realized, err := h.AlpacaRepository.GetMultiBars(ctx, in.Symbols, in.Start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get realized bars: %w", err)
	}
	closeBySymbolDate := map[string]map[string]decimal.Decimal{}
	for symbol, bars := range realized {
		closeBySymbolDate[symbol] = map[string]decimal.Decimal{}
		for _, bar := range bars {
			closeBySymbolDate[symbol][bar.Date] = decimal.NewFromFloat(bar.Close)
		}
	}

	profitLosses := []float64{}
	for _, p := range pending {
		realizedClose, ok := closeBySymbolDate[p.symbol][p.date]
		if !ok {
			// No realized bar means the market was closed that day;
			// the decision is dropped, not scored as zero.
			continue
		}

		profitLoss := realizedClose.
			Sub(p.priorClose).
			Mul(decimal.NewFromInt(int64(p.estimation.Side.Direction()))).
			Round(2)

		response.Records = append(response.Records, domain.BacktestRecord{
			Symbol:        p.symbol,
			Date:          p.date,
			Side:          p.estimation.Side,
			Certainty:     p.estimation.Certainty,
			PriorClose:    p.priorClose,
			RealizedClose: realizedClose,
			ProfitLoss:    profitLoss,
			Reasoning:     p.estimation.Reasoning,
		})
		response.TotalProfitLoss = response.TotalProfitLoss.Add(profitLoss)
		profitLosses = append(profitLosses, profitLoss.InexactFloat64())
	}

	if len(profitLosses) > 0 {
		if mean, err := stats.Mean(profitLosses); err == nil {
			response.MeanProfitLoss = mean
		}
	}
	if len(profitLosses) > 1 {
		if stdev, err := stats.StandardDeviationSample(profitLosses); err == nil {
			response.StdevProfitLoss = stdev
		}
	}

	return response, nil
}
