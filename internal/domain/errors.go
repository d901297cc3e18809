package domain

import "errors"

var (
	// ErrMissingPrice means neither an open position nor recent bars
	// gave us a price, so a target quantity cannot be computed.
	ErrMissingPrice = errors.New("no price available")

	// ErrDataUnavailable means bars or news could not be fetched for a
	// symbol. The symbol is skipped for the pass.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrMalformedEstimation means the model reply was unparsable or
	// violated the response schema.
	ErrMalformedEstimation = errors.New("malformed estimation response")

	// ErrCloseTimeout means a position never reached flat while
	// switching sides. No further orders may be placed for the symbol
	// this pass.
	ErrCloseTimeout = errors.New("position close timed out")
)
