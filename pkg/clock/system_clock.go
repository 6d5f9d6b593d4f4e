package clock

import (
	"time"
)

type systemClock struct{}

// SystemClock is a Clock backed by the operating system's time of day
// and the Go runtime's timers.
var SystemClock Clock = systemClock{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTicker(d time.Duration) (Ticker, <-chan time.Time) {
	ticker := time.NewTicker(d)
	return ticker, ticker.C
}
