package service

import (
	"context"
	"time"

	"aifolio/internal/domain"
	"aifolio/internal/logger"
	"aifolio/internal/repository"

	"golang.org/x/time/rate"
)

// SymbolEstimation pairs one symbol's snapshot with the estimation the
// provider produced from it.
type SymbolEstimation struct {
	Symbol     string
	Snapshot   *domain.SymbolSnapshot
	Estimation *domain.Estimation
}

// SymbolError records a per-symbol failure that did not abort the
// pass.
type SymbolError struct {
	Symbol string
	Err    error
}

// CollectEstimationsResult preserves the input symbol order in
// Estimations; failed symbols appear only in Failures.
type CollectEstimationsResult struct {
	Estimations []SymbolEstimation
	Failures    []SymbolError
}

// EstimationService walks the configured symbols in a fixed order and
// obtains an estimation for each. Requests are strictly sequential:
// the provider is a shared-capacity model with a token budget, so
// parallel calls would be throttled rather than faster.
type EstimationService interface {
	CollectEstimations(ctx context.Context, symbols []string, asOf time.Time) (*CollectEstimationsResult, error)
}

type estimationServiceHandler struct {
	SnapshotService      SnapshotService
	EstimationRepository repository.EstimationRepository
	Limiter              *rate.Limiter
}

func NewEstimationService(
	snapshotService SnapshotService,
	estimationRepository repository.EstimationRepository,
	requestInterval time.Duration,
) EstimationService {
	return estimationServiceHandler{
		SnapshotService:      snapshotService,
		EstimationRepository: estimationRepository,
		Limiter:              rate.NewLimiter(rate.Every(requestInterval), 1),
	}
}

func (h estimationServiceHandler) CollectEstimations(ctx context.Context, symbols []string, asOf time.Time) (*CollectEstimationsResult, error) {
	log := logger.FromContext(ctx)
	result := &CollectEstimationsResult{}

	for _, symbol := range symbols {
		snapshot, err := h.SnapshotService.BuildSnapshot(ctx, symbol, asOf)
		if err != nil {
			log.Warnf("skipping %s: %v", symbol, err)
			result.Failures = append(result.Failures, SymbolError{Symbol: symbol, Err: err})
			continue
		}

		if err := h.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
		estimation, err := h.EstimationRepository.GetEstimation(ctx, *snapshot)
		if err != nil {
			log.Warnf("skipping %s: %v", symbol, err)
			result.Failures = append(result.Failures, SymbolError{Symbol: symbol, Err: err})
			continue
		}

		result.Estimations = append(result.Estimations, SymbolEstimation{
			Symbol:     symbol,
			Snapshot:   snapshot,
			Estimation: estimation,
		})
	}

	return result, nil
}
