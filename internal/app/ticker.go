package app

import "time"

// Ticker is the part of time.Ticker the loop uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates the auto-scroll ticker.
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// autoScroller runs a ticker only while a drag may need auto-scroll.
type autoScroller struct {
	factory TickerFactory
	ticker  Ticker
}

func (s *autoScroller) sync(active bool, interval time.Duration) {
	if active {
		s.start(interval)
	} else {
		s.stop()
	}
}

func (s *autoScroller) start(interval time.Duration) {
	if s.ticker != nil {
		return
	}
	s.ticker = s.factory(interval)
}

func (s *autoScroller) stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

// C is nil while stopped, so a select on it blocks.
func (s *autoScroller) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C()
}
