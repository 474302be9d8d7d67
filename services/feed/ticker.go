package feed

import (
	// Go Internal Packages
	"time"
)

// Ticker is the periodic trigger a LiveFeed owns while it is active.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates one Ticker per activation.
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t *timeTicker) C() <-chan time.Time { return t.t.C }
func (t *timeTicker) Stop()               { t.t.Stop() }

func NewTimeTicker(d time.Duration) Ticker {
	return &timeTicker{t: time.NewTicker(d)}
}
