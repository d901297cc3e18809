package app

import (
	"context"
	"time"

	"aifolio/internal/domain"
	"aifolio/internal/logger"
	"aifolio/internal/repository"
	"aifolio/internal/service"

	"github.com/shopspring/decimal"
)

// RebalancerHandler runs one full live rebalancing pass: collect
// estimations, size the target allocation, and execute the resulting
// orders. All collaborators are injected so tests can substitute
// fakes.
type RebalancerHandler struct {
	EstimationService     service.EstimationService
	TradingService        service.TradingService
	AlpacaRepository      repository.AlpacaRepository
	Symbols               []string
	DefaultPortfolioTotal decimal.Decimal
}

// Rebalance runs a single pass as of the given time. Per-symbol
// failures are collected into the closing summary; only being unable
// to read the account at all fails the pass.
func (h RebalancerHandler) Rebalance(ctx context.Context, asOf time.Time) error {
	log := logger.FromContext(ctx)
	log.Infof("rebalancing portfolio as of %s", asOf)

	collected, err := h.EstimationService.CollectEstimations(ctx, h.Symbols, asOf)
	if err != nil {
		return err
	}
	service.PrintEstimationSummary(collected.Estimations)

	positions, err := h.AlpacaRepository.GetPositions()
	if err != nil {
		return err
	}
	portfolioTotal := service.PortfolioTotal(positions, h.DefaultPortfolioTotal)
	log.Infof("portfolio total for this pass: %s", portfolioTotal.StringFixed(2))

	estimations := make([]domain.Estimation, 0, len(collected.Estimations))
	priorCloses := map[string]decimal.Decimal{}
	for _, se := range collected.Estimations {
		estimations = append(estimations, *se.Estimation)
		if priorClose, ok := se.Snapshot.PriorClose(); ok {
			priorCloses[se.Symbol] = priorClose
		}
	}

	// Live quotes where available, falling back to the snapshot's most
	// recent close. Symbols with open positions are priced off the
	// position itself inside the allocation.
	quotes, err := h.AlpacaRepository.GetLatestPrices(ctx, h.Symbols)
	if err != nil {
		log.Warnf("could not fetch latest quotes, falling back to snapshot closes: %v", err)
		quotes = map[string]decimal.Decimal{}
	}

	computed, err := service.ComputeOrderIntents(service.ComputeOrderIntentsInput{
		Estimations:    estimations,
		Positions:      positions,
		PortfolioTotal: portfolioTotal,
		LastPriceOf: func(symbol string) (decimal.Decimal, bool) {
			if price, ok := quotes[symbol]; ok && price.IsPositive() {
				return price, true
			}
			price, ok := priorCloses[symbol]
			return price, ok
		},
	})
	if err != nil {
		return err
	}

	executionFailures := h.TradingService.ExecuteIntents(ctx, computed.Intents)

	for _, failure := range collected.Failures {
		log.Warnf("no estimation for %s: %v", failure.Symbol, failure.Err)
	}
	for _, skipped := range computed.Skipped {
		log.Warnf("no allocation for %s: %v", skipped.Symbol, skipped.Err)
	}
	for _, failure := range executionFailures {
		log.Warnf("execution failed for %s: %v", failure.Symbol, failure.Err)
	}
	log.Infof("rebalancing pass complete: %d intent(s), %d symbol(s) skipped, %d execution failure(s)",
		len(computed.Intents), len(collected.Failures)+len(computed.Skipped), len(executionFailures))

	return nil
}
