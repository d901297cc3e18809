package service

import (
	"context"
	"fmt"
	"time"

	"aifolio/internal/domain"
	"aifolio/internal/indicators"
	"aifolio/internal/repository"
	"aifolio/internal/util"
)

// SnapshotService assembles everything the estimation provider gets to
// see about one symbol as of one evaluation timestamp.
type SnapshotService interface {
	BuildSnapshot(ctx context.Context, symbol string, asOf time.Time) (*domain.SymbolSnapshot, error)
}

type snapshotServiceHandler struct {
	AlpacaRepository repository.AlpacaRepository
	BarsLimit        int
	NewsLimit        int
}

func NewSnapshotService(alpacaRepository repository.AlpacaRepository, barsLimit, newsLimit int) SnapshotService {
	return snapshotServiceHandler{
		AlpacaRepository: alpacaRepository,
		BarsLimit:        barsLimit,
		NewsLimit:        newsLimit,
	}
}

// BuildSnapshot fetches bars up to the day before asOf, so the
// evaluation day's own bar never leaks into the snapshot. News is
// fetched up to asOf itself.
func (h snapshotServiceHandler) BuildSnapshot(ctx context.Context, symbol string, asOf time.Time) (*domain.SymbolSnapshot, error) {
	bars, err := h.AlpacaRepository.GetBars(ctx, symbol, util.PriorMidnight(asOf), h.BarsLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: bars for %s: %v", domain.ErrDataUnavailable, symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: no bars for %s as of %s", domain.ErrDataUnavailable, symbol, util.FormatDate(asOf))
	}
	bars = indicators.AttachIndicators(bars)

	news, err := h.AlpacaRepository.GetNews(ctx, symbol, asOf, h.NewsLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: news for %s: %v", domain.ErrDataUnavailable, symbol, err)
	}

	return &domain.SymbolSnapshot{
		Symbol:      symbol,
		CurrentDate: util.FormatDate(asOf),
		LatestBars:  bars,
		News:        news,
	}, nil
}
