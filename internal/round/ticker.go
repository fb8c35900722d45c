package round

import "time"

// tickSlack lets a tick land this much early. Frame durations such as
// time.Second/60 truncate, so sixty of them fall a few nanoseconds short of
// a second.
const tickSlack = time.Millisecond

// Ticker fires its callback once for every Interval of frame time fed to
// Advance. It replaces a wall-clock timer so the round can be driven from a
// fixed-rate game loop and stepped deterministically in tests.
type Ticker struct {
	Interval time.Duration

	acc     time.Duration
	fn      func()
	stopped bool
}

func NewTicker(interval time.Duration, fn func()) *Ticker {
	return &Ticker{Interval: interval, fn: fn}
}

// Advance accumulates dt and fires once per elapsed interval. A stop issued
// from inside the callback takes effect immediately.
func (t *Ticker) Advance(dt time.Duration) {
	if t.stopped || t.Interval <= 0 {
		return
	}
	t.acc += dt
	for t.acc >= t.Interval-tickSlack && !t.stopped {
		t.acc -= t.Interval
		t.fn()
	}
}

func (t *Ticker) Stop() {
	t.stopped = true
	t.acc = 0
}

func (t *Ticker) Stopped() bool {
	return t.stopped
}
