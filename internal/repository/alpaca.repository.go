package repository

import (
	"context"
	"fmt"
	"time"

	"aifolio/internal/domain"
	"aifolio/internal/util"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AlpacaRepository interface {
	GetBars(ctx context.Context, symbol string, end time.Time, limit int) ([]domain.Bar, error)
	GetMultiBars(ctx context.Context, symbols []string, start, end time.Time) (map[string][]domain.Bar, error)
	GetNews(ctx context.Context, symbol string, end time.Time, limit int) ([]domain.NewsItem, error)
	GetPositions() ([]domain.Position, error)
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
	CountOpenOrders(ctx context.Context, symbol string) (int, error)
	PlaceOrder(req AlpacaPlaceOrderRequest) (*alpaca.Order, error)
	ClosePosition(ctx context.Context, symbol string) error
	GetClock() (*alpaca.Clock, error)
}

func NewAlpacaRepository(apiKey, apiSecret, endpoint string) AlpacaRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		Client:   client,
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	Client   *alpaca.Client
	MdClient *marketdata.Client
}

// GetBars returns up to limit daily bars ending at end, newest first.
func (h alpacaRepositoryHandler) GetBars(ctx context.Context, symbol string, end time.Time, limit int) ([]domain.Bar, error) {
	bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Start:      time.Unix(0, 0),
		End:        end,
		TotalLimit: limit,
		Sort:       marketdata.SortDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bars for %s: %w", symbol, err)
	}

	out := make([]domain.Bar, 0, len(bars))
	for _, bar := range bars {
		out = append(out, barFromAlpaca(bar))
	}
	return out, nil
}

// GetMultiBars fetches daily bars for all symbols over [start, end] in
// a single batched request, oldest first. The backtest harness calls
// this once per run rather than once per day.
func (h alpacaRepositoryHandler) GetMultiBars(ctx context.Context, symbols []string, start, end time.Time) (map[string][]domain.Bar, error) {
	multiBars, err := h.MdClient.GetMultiBars(symbols, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     start,
		End:       end,
		Sort:      marketdata.SortAsc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get multi bars: %w", err)
	}

	out := map[string][]domain.Bar{}
	for symbol, bars := range multiBars {
		converted := make([]domain.Bar, 0, len(bars))
		for _, bar := range bars {
			converted = append(converted, barFromAlpaca(bar))
		}
		out[symbol] = converted
	}
	return out, nil
}

func barFromAlpaca(bar marketdata.Bar) domain.Bar {
	return domain.Bar{
		Date:   util.FormatDate(bar.Timestamp),
		Close:  bar.Close,
		High:   bar.High,
		Low:    bar.Low,
		Volume: bar.Volume,
		VWAP:   bar.VWAP,
	}
}

func (h alpacaRepositoryHandler) GetNews(ctx context.Context, symbol string, end time.Time, limit int) ([]domain.NewsItem, error) {
	news, err := h.MdClient.GetNews(marketdata.GetNewsRequest{
		Symbols:        []string{symbol},
		Start:          time.Unix(0, 0),
		End:            end,
		TotalLimit:     limit,
		IncludeContent: false,
		Sort:           marketdata.SortDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get news for %s: %w", symbol, err)
	}

	out := make([]domain.NewsItem, 0, len(news))
	for _, article := range news {
		out = append(out, domain.NewsItem{
			Datetime: util.FormatDateTime(article.UpdatedAt),
			Headline: article.Headline,
			Summary:  article.Summary,
		})
	}
	return out, nil
}

func (h alpacaRepositoryHandler) GetPositions() ([]domain.Position, error) {
	positions, err := h.Client.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}

	out := make([]domain.Position, 0, len(positions))
	for _, position := range positions {
		p := domain.Position{
			Symbol: position.Symbol,
			Qty:    position.Qty,
		}
		if position.CurrentPrice != nil {
			p.CurrentPrice = *position.CurrentPrice
		}
		if position.MarketValue != nil {
			p.MarketValue = *position.MarketValue
		}
		out = append(out, p)
	}
	return out, nil
}

func (h alpacaRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	if len(symbols) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	results, err := h.MdClient.GetLatestQuotes(symbols, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return nil, err
	}
	out := map[string]decimal.Decimal{}
	for symbol, result := range results {
		out[symbol] = decimal.NewFromFloat(result.BidPrice)
		if out[symbol].IsZero() {
			return nil, fmt.Errorf("failed to get price for %s: got 0 price", symbol)
		}
	}

	return out, nil
}

func (h alpacaRepositoryHandler) CountOpenOrders(ctx context.Context, symbol string) (int, error) {
	orders, err := h.Client.GetOrders(alpaca.GetOrdersRequest{
		Status:  "open",
		Until:   time.Now(),
		Limit:   100,
		Symbols: []string{symbol},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list open orders for %s: %w", symbol, err)
	}
	return len(orders), nil
}

type AlpacaPlaceOrderRequest struct {
	OrderID  uuid.UUID
	Quantity decimal.Decimal
	Symbol   string
	Side     alpaca.Side
}

func (a AlpacaPlaceOrderRequest) isValid() error {
	if a.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("quantity is <= 0, order of |%s %s| not sent", a.Quantity.String(), a.Side)
	}
	if !a.Quantity.Equal(a.Quantity.Truncate(0)) {
		return fmt.Errorf("quantity %s is fractional, only whole-share orders are supported", a.Quantity.String())
	}
	return nil
}

func (h alpacaRepositoryHandler) PlaceOrder(req AlpacaPlaceOrderRequest) (*alpaca.Order, error) {
	if err := req.isValid(); err != nil {
		return nil, fmt.Errorf("invalid input to alpaca submit order %s: %w", req.OrderID.String(), err)
	}

	order, err := h.Client.PlaceOrder(alpaca.PlaceOrderRequest{
		Symbol:        req.Symbol,
		Qty:           &req.Quantity,
		Side:          req.Side,
		Type:          alpaca.Market,
		TimeInForce:   alpaca.Day,
		ClientOrderID: req.OrderID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("order for %s %s %s failed: %w", req.Side, req.Symbol, req.Quantity.String(), err)
	}

	return order, nil
}

func (h alpacaRepositoryHandler) ClosePosition(ctx context.Context, symbol string) error {
	_, err := h.Client.ClosePosition(symbol, alpaca.ClosePositionRequest{})
	if err != nil {
		return fmt.Errorf("failed to close position %s: %w", symbol, err)
	}
	return nil
}

func (h alpacaRepositoryHandler) GetClock() (*alpaca.Clock, error) {
	clock, err := h.Client.GetClock()
	if err != nil {
		return nil, fmt.Errorf("failed to get market clock: %w", err)
	}
	return clock, nil
}
