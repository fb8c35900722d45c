package round

import (
	"fmt"
	"log"
	"time"
)

// Round constants
const (
	Duration     = 45 // seconds
	TargetCount  = 5
	TickInterval = time.Second
)

type Outcome int

const (
	Active Outcome = iota // Targets can still be found
	Won                   // Every target found in time
	Lost                  // Countdown reached zero
)

func (o Outcome) String() string {
	switch o {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result is the outcome record persisted between sessions.
type Result struct {
	Score         int `json:"score"`
	RemainingTime int `json:"remainingTime"`
	TotalTime     int `json:"totalTime"`
}

// Presenter is the narrow surface a frontend implements to show round state.
// Implementations must ignore indices they have no element for.
type Presenter interface {
	SetTimeDisplay(remaining int)
	MarkTargetFound(index int)
	ShowRoundEnd(res Result, won bool)
	ShowLastResult(res Result)
}

// Saver persists the result of a finished round.
type Saver interface {
	Save(res Result) error
}

// Round holds the mutable state of one play session. A new Round is built for
// every scene; restarting discards it.
type Round struct {
	Duration int
	Targets  int

	elapsed int
	score   int
	outcome Outcome
	paused  bool

	ticker    *Ticker
	presenter Presenter
	saver     Saver
	onEnd     []func(Outcome)
}

// New creates an active round with the standard duration and target count.
// Either port may be nil.
func New(p Presenter, s Saver) *Round {
	if p == nil {
		p = nopPresenter{}
	}
	r := &Round{
		Duration:  Duration,
		Targets:   TargetCount,
		presenter: p,
		saver:     s,
	}
	r.ticker = NewTicker(TickInterval, r.Tick)
	return r
}

// Advance feeds frame time into the one-second ticker.
func (r *Round) Advance(dt time.Duration) {
	r.ticker.Advance(dt)
}

// Tick is the once-per-second countdown step.
func (r *Round) Tick() {
	if r.outcome != Active || r.paused {
		return
	}
	r.elapsed++
	remaining := r.Duration - r.elapsed
	r.presenter.SetTimeDisplay(remaining)
	if remaining <= 0 {
		r.End(false)
	}
}

// AddScore records one more found target. It returns the new score and is a
// no-op once the round is over or the score is already at the target count.
func (r *Round) AddScore() int {
	if r.outcome != Active || r.score >= r.Targets {
		return r.score
	}
	r.score++
	return r.score
}

// End finishes the round. Only the first call has any effect.
func (r *Round) End(won bool) {
	if r.outcome != Active {
		return
	}
	if won {
		r.outcome = Won
	} else {
		r.outcome = Lost
	}
	r.ticker.Stop()

	res := r.Result()
	if r.saver != nil {
		if err := r.saver.Save(res); err != nil {
			log.Printf("round: saving result: %v", err)
		}
	}
	r.presenter.ShowRoundEnd(res, won)

	for _, fn := range r.onEnd {
		fn(r.outcome)
	}
	log.Printf("round: %s with score %d, %ds left", r.outcome, res.Score, res.RemainingTime)
}

// OnEnd registers fn to run once the round is over.
func (r *Round) OnEnd(fn func(Outcome)) {
	r.onEnd = append(r.onEnd, fn)
}

func (r *Round) Pause()  { r.paused = true }
func (r *Round) Resume() { r.paused = false }

func (r *Round) Paused() bool     { return r.paused }
func (r *Round) Over() bool       { return r.outcome != Active }
func (r *Round) Outcome() Outcome { return r.outcome }
func (r *Round) Score() int       { return r.score }
func (r *Round) Elapsed() int     { return r.elapsed }

// Remaining is the countdown value, never below zero.
func (r *Round) Remaining() int {
	return max(0, r.Duration-r.elapsed)
}

// Result snapshots the round as it would be persisted.
func (r *Round) Result() Result {
	return Result{
		Score:         r.score,
		RemainingTime: r.Remaining(),
		TotalTime:     r.Duration,
	}
}

// Presenter exposes the port so sibling components can publish through it.
func (r *Round) Presenter() Presenter {
	return r.presenter
}

// TickerStopped reports whether the countdown has been cancelled.
func (r *Round) TickerStopped() bool {
	return r.ticker.Stopped()
}

// FormatTime renders the countdown as a zero padded two digit string.
func FormatTime(remaining int) string {
	return fmt.Sprintf("%02d", remaining)
}

type nopPresenter struct{}

func (nopPresenter) SetTimeDisplay(int)        {}
func (nopPresenter) MarkTargetFound(int)       {}
func (nopPresenter) ShowRoundEnd(Result, bool) {}
func (nopPresenter) ShowLastResult(Result)     {}
