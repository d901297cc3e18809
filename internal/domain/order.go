package domain

import (
	"github.com/shopspring/decimal"
)

// Position is an open brokerage position. Qty is signed, negative
// means short.
type Position struct {
	Symbol       string
	Qty          decimal.Decimal
	CurrentPrice decimal.Decimal
	MarketValue  decimal.Decimal
}

type OrderSide string

const (
	Buy  OrderSide = "buy"
	Sell OrderSide = "sell"
)

// OrderIntent is one instruction needed to move a symbol's holding to
// its target. A zero Quantity with CloseFirst set means full
// liquidation with no re-entry. CloseFirst with a non-zero Quantity is
// the side-switch protocol: the existing position must be confirmed
// flat before the new order is submitted.
type OrderIntent struct {
	Symbol     string
	Side       OrderSide
	Quantity   decimal.Decimal
	CloseFirst bool
}

// IsClose reports whether the intent only liquidates.
func (o OrderIntent) IsClose() bool {
	return o.CloseFirst && o.Quantity.IsZero()
}
