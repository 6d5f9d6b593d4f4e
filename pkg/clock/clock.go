package clock

import (
	"time"
)

// Clock provides the current time and tickers. Estimators use it to
// measure the duration of the parallel phase and to schedule progress
// reports, while unit tests substitute it to make both deterministic.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) (Ticker, <-chan time.Time)
}

// Ticker that is returned by Clock.NewTicker(). Ticks are published
// on the channel that is returned alongside it, until Stop() is called.
type Ticker interface {
	Stop()
}
