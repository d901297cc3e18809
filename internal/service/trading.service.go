package service

import (
	"context"
	"fmt"
	"time"

	"aifolio/internal/domain"
	"aifolio/internal/logger"
	"aifolio/internal/repository"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
)

const (
	defaultPollInterval    = 5 * time.Second
	defaultMaxPollAttempts = 24
)

// TradingService applies order intents against the brokerage account.
// Failures are per symbol: one rejected order never rolls back or
// blocks the others.
type TradingService interface {
	ExecuteIntents(ctx context.Context, intents []domain.OrderIntent) []SymbolError
}

type tradingServiceHandler struct {
	AlpacaRepository repository.AlpacaRepository
	PollInterval     time.Duration
	MaxPollAttempts  int
}

func NewTradingService(alpacaRepository repository.AlpacaRepository) TradingService {
	return tradingServiceHandler{
		AlpacaRepository: alpacaRepository,
		PollInterval:     defaultPollInterval,
		MaxPollAttempts:  defaultMaxPollAttempts,
	}
}

func (h tradingServiceHandler) ExecuteIntents(ctx context.Context, intents []domain.OrderIntent) []SymbolError {
	log := logger.FromContext(ctx)

	failures := []SymbolError{}
	for _, intent := range intents {
		if err := h.executeIntent(ctx, intent); err != nil {
			log.Warnf("order execution failed for %s: %v", intent.Symbol, err)
			failures = append(failures, SymbolError{Symbol: intent.Symbol, Err: err})
		}
	}
	return failures
}

func (h tradingServiceHandler) executeIntent(ctx context.Context, intent domain.OrderIntent) error {
	log := logger.FromContext(ctx)

	if intent.IsClose() {
		return h.AlpacaRepository.ClosePosition(ctx, intent.Symbol)
	}

	if intent.CloseFirst {
		log.Infof("%s switching sides, liquidating before re-entry", intent.Symbol)
		result, err := h.closePositionAndAwaitFlat(ctx, intent.Symbol)
		if err != nil {
			return err
		}
		if result == closeTimedOut {
			// The account state for this symbol is unknown; placing
			// the new order could double up.
			return fmt.Errorf("%s: %w", intent.Symbol, domain.ErrCloseTimeout)
		}
	}

	order, err := h.AlpacaRepository.PlaceOrder(repository.AlpacaPlaceOrderRequest{
		OrderID:  uuid.New(),
		Quantity: intent.Quantity,
		Symbol:   intent.Symbol,
		Side:     alpaca.Side(intent.Side),
	})
	if err != nil {
		return err
	}

	log.Infof("order created for %s (%s), qty %s, alpaca id %s", intent.Symbol, intent.Side, intent.Quantity.String(), order.ID)
	return nil
}

type closeResult int

const (
	closeFlat closeResult = iota
	closeTimedOut
)

// closePositionAndAwaitFlat liquidates the symbol and polls until the
// position and all of its open orders are gone. Flat means zero
// quantity and zero open orders; the poll is bounded so a stuck close
// surfaces as a timeout instead of hanging the pass.
func (h tradingServiceHandler) closePositionAndAwaitFlat(ctx context.Context, symbol string) (closeResult, error) {
	if err := h.AlpacaRepository.ClosePosition(ctx, symbol); err != nil {
		return closeTimedOut, err
	}

	for attempt := 0; attempt < h.MaxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return closeTimedOut, ctx.Err()
		case <-time.After(h.PollInterval):
		}

		flat, err := h.isFlat(ctx, symbol)
		if err != nil {
			return closeTimedOut, err
		}
		if flat {
			return closeFlat, nil
		}
	}

	return closeTimedOut, nil
}

func (h tradingServiceHandler) isFlat(ctx context.Context, symbol string) (bool, error) {
	positions, err := h.AlpacaRepository.GetPositions()
	if err != nil {
		return false, fmt.Errorf("failed to poll positions for %s: %w", symbol, err)
	}
	for _, position := range positions {
		if position.Symbol == symbol {
			return false, nil
		}
	}

	openOrders, err := h.AlpacaRepository.CountOpenOrders(ctx, symbol)
	if err != nil {
		return false, err
	}
	return openOrders == 0, nil
}
