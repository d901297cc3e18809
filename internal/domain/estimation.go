package domain

import (
	"fmt"
)

type Side string

const (
	SideLong  Side = "long"
	SideShort Side = "short"
)

// Direction is +1 for long, -1 for short. Allocation and P&L math both
// multiply by this.
func (s Side) Direction() int {
	if s == SideShort {
		return -1
	}
	return 1
}

const maxReasoningLen = 1000

// Estimation is the model's directional call for one symbol. Certainty
// is the allocation weight on a 0-100 scale; 0 means no conviction.
type Estimation struct {
	Symbol    string  `json:"symbol"`
	Side      Side    `json:"side"`
	Certainty float64 `json:"certainty"`
	Reasoning string  `json:"reasoning"`
}

// Validate enforces the response schema. Reasoning over the limit is
// truncated rather than rejected since it never feeds the math.
func (e *Estimation) Validate() error {
	if e.Symbol == "" {
		return fmt.Errorf("%w: missing symbol", ErrMalformedEstimation)
	}
	if e.Side != SideLong && e.Side != SideShort {
		return fmt.Errorf("%w: invalid side %q for %s", ErrMalformedEstimation, e.Side, e.Symbol)
	}
	if e.Certainty < 0 || e.Certainty > 100 {
		return fmt.Errorf("%w: certainty %f out of range for %s", ErrMalformedEstimation, e.Certainty, e.Symbol)
	}
	if len(e.Reasoning) > maxReasoningLen {
		e.Reasoning = e.Reasoning[:maxReasoningLen]
	}
	return nil
}
