package service

import (
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
)

// postOpenDelay keeps the pass out of the opening auction noise.
const postOpenDelay = 2 * time.Minute

// NextRunDelay computes how long to wait before the next rebalancing
// pass: the market's next open plus a small settle-in offset.
func NextRunDelay(clock *alpaca.Clock, now time.Time) time.Duration {
	return clock.NextOpen.Sub(now) + postOpenDelay
}

// ScheduledRun is a cancellable handle on a deferred rebalancing pass.
// Cancel works up to the moment the timer fires; once the pass starts
// it runs to completion.
type ScheduledRun struct {
	timer *time.Timer
	at    time.Time
}

func ScheduleRun(delay time.Duration, fn func()) *ScheduledRun {
	return &ScheduledRun{
		timer: time.AfterFunc(delay, fn),
		at:    time.Now().Add(delay),
	}
}

// At is when the run will fire.
func (s *ScheduledRun) At() time.Time {
	return s.at
}

// Cancel stops the pending run. It reports false if the run already
// started, in which case it cannot be interrupted.
func (s *ScheduledRun) Cancel() bool {
	return s.timer.Stop()
}
