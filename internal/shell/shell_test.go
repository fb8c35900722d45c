package shell

import (
	"errors"
	"testing"

	"stagseek/internal/round"
)

func TestOrientation_PausesInPortrait(t *testing.T) {
	r := round.New(nil, nil)
	o := &Orientation{Round: r}

	if o.Check(1920, 1080) {
		t.Error("landscape view should not show the overlay")
	}
	r.Tick()

	if !o.Check(390, 844) {
		t.Error("portrait view should show the overlay")
	}
	if !r.Paused() || !o.Overlay() {
		t.Error("portrait should pause the round")
	}
	r.Tick()
	r.Tick()
	if r.Elapsed() != 1 {
		t.Errorf("Elapsed while rotated = %d, want 1", r.Elapsed())
	}

	o.Check(844, 390)
	if r.Paused() || o.Overlay() {
		t.Error("landscape should resume the round")
	}
	r.Tick()
	if r.Elapsed() != 2 {
		t.Errorf("Elapsed after resume = %d, want 2", r.Elapsed())
	}
}

func TestOrientation_SquareIsLandscape(t *testing.T) {
	o := &Orientation{}
	if o.Check(500, 500) {
		t.Error("square view should count as landscape")
	}
}

type fakeScreen struct {
	on    bool
	err   error
	calls int
}

func (f *fakeScreen) IsFullscreen() bool { return f.on }

func (f *fakeScreen) SetFullscreen(on bool) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.on = on
	return nil
}

func TestFullscreen_Toggle(t *testing.T) {
	s := &fakeScreen{}
	fs := &Fullscreen{Screen: s}
	fs.Toggle()
	if !s.on {
		t.Error("first toggle should enter fullscreen")
	}
	fs.Toggle()
	if s.on {
		t.Error("second toggle should leave fullscreen")
	}
}

func TestFullscreen_ErrorIsNotFatal(t *testing.T) {
	s := &fakeScreen{err: errors.New("denied")}
	fs := &Fullscreen{Screen: s}
	fs.Toggle()
	if s.on || s.calls != 1 {
		t.Errorf("on=%v calls=%d, want false 1", s.on, s.calls)
	}
	(&Fullscreen{}).Toggle()
}

func TestSummary(t *testing.T) {
	if got := Summary(round.Result{}, false); got != "" {
		t.Errorf("Summary without result = %q, want empty", got)
	}
	got := Summary(round.Result{Score: 4, RemainingTime: 0, TotalTime: 45}, true)
	want := "Last game: Score 4, Time 0/45 seconds"
	if got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

func TestEndLines(t *testing.T) {
	score, remaining := EndLines(round.Result{Score: 5, RemainingTime: 12, TotalTime: 45})
	if score != "Score: 5" || remaining != "Time: 12 seconds remaining" {
		t.Errorf("EndLines = %q, %q", score, remaining)
	}
}
