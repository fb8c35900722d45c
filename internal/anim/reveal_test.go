package anim

import (
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestPulse_YoyoForever(t *testing.T) {
	p := NewPulse(1, 0.3)

	p.Update(PulseHalf)
	if !near(p.Scale(), 0.36) {
		t.Errorf("Scale at peak = %v, want 0.36", p.Scale())
	}
	p.Update(PulseHalf)
	if !near(p.Scale(), 0.3) {
		t.Errorf("Scale after one cycle = %v, want 0.3", p.Scale())
	}

	// Many cycles later the loop is still running.
	p.Update(100*PulseHalf + PulseHalf/2)
	if s := p.Scale(); s <= 0.3 || s >= 0.36 {
		t.Errorf("Scale mid-cycle = %v, want strictly between base and peak", s)
	}
}

func TestPulse_StopRestoresBase(t *testing.T) {
	p := NewPulse(2, 0.4)
	p.Update(PulseHalf / 2)
	p.Stop()
	if p.Scale() != 0.4 {
		t.Errorf("Scale after stop = %v, want 0.4", p.Scale())
	}
	p.Update(time.Second)
	if p.Scale() != 0.4 {
		t.Error("stopped pulse kept animating")
	}
}

func TestFlight_LinearToScoreArea(t *testing.T) {
	f := NewFlight(1000, 800)

	if f.Update(CoinDuration / 2) {
		t.Fatal("flight finished early")
	}
	x, y := f.Position()
	if !near(x, 2500) || !near(y, 400) {
		t.Errorf("midpoint = (%v, %v), want (2500, 400)", x, y)
	}
	if !near(f.Scale(), 0.2) {
		t.Errorf("mid scale = %v, want 0.2", f.Scale())
	}

	if !f.Update(CoinDuration / 2) {
		t.Fatal("flight should have landed")
	}
	x, y = f.Position()
	if x != CoinTargetX || y != CoinTargetY {
		t.Errorf("end = (%v, %v), want (%v, %v)", x, y, CoinTargetX, CoinTargetY)
	}
}

func TestSet_DropsLandedCoins(t *testing.T) {
	var s Set
	s.Reveal(1, 10, 10, 0.3)
	s.Update(time.Second)
	s.Reveal(2, 20, 20, 0.4)

	s.Update(2 * time.Second)
	if len(s.Flights) != 1 {
		t.Fatalf("len(Flights) = %d, want 1", len(s.Flights))
	}
	s.Update(time.Second)
	if len(s.Flights) != 0 {
		t.Errorf("len(Flights) = %d, want 0", len(s.Flights))
	}
	if len(s.Pulses) != 2 {
		t.Errorf("pulses must outlive coins, got %d", len(s.Pulses))
	}
}

func TestSet_PulseScaleAndStop(t *testing.T) {
	var s Set
	s.Reveal(3, 0, 0, 0.4)
	s.Update(PulseHalf)

	if got := s.PulseScale(3, 0.4); !near(got, 0.48) {
		t.Errorf("PulseScale = %v, want 0.48", got)
	}
	if got := s.PulseScale(4, 0.29); got != 0.29 {
		t.Errorf("PulseScale without pulse = %v, want base", got)
	}

	s.StopPulses()
	if got := s.PulseScale(3, 0.4); got != 0.4 {
		t.Errorf("PulseScale after stop = %v, want 0.4", got)
	}
}

func TestPulse_CarriesOverTurningPoint(t *testing.T) {
	stepped := NewPulse(1, 0.3)
	for i := 0; i < 3; i++ {
		stepped.Update(PulseHalf / 2)
	}
	long := NewPulse(1, 0.3)
	long.Update(3 * PulseHalf / 2)

	if !near(stepped.Scale(), long.Scale()) {
		t.Errorf("one long frame = %v, three short frames = %v", long.Scale(), stepped.Scale())
	}
	if s := long.Scale(); s <= 0.3 || s >= 0.36 {
		t.Errorf("Scale on the way down = %v, want strictly between base and peak", s)
	}
}

func TestFlight_StaysLanded(t *testing.T) {
	f := NewFlight(0, 0)
	f.Update(CoinDuration + time.Second)
	if !f.Done() {
		t.Fatal("flight should be done")
	}
	if !f.Update(time.Second) || !near(f.Scale(), CoinEndScale) {
		t.Errorf("landed coin moved: done=%v scale=%v", f.Done(), f.Scale())
	}
}
