package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Reveal animation constants
const (
	PulseGrow    = 1.2
	PulseHalf    = 300 * time.Millisecond
	CoinDuration = 2500 * time.Millisecond
	CoinScale    = 0.3
	CoinEndScale = 0.1
	CoinTargetX  = 4000.0
	CoinTargetY  = 0.0
)

// seconds converts a frame delta into the float32 seconds gween steps by.
func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// Pulse grows a sprite to PulseGrow times its base scale and back again,
// forever, until stopped.
type Pulse struct {
	Target int // target index the pulse belongs to
	Base   float64

	grow, shrink *gween.Tween
	shrinking    bool
	phase        float32
	half         float32
	value        float32
	stopped      bool
}

func NewPulse(target int, base float64) *Pulse {
	peak := float32(base * PulseGrow)
	half := seconds(PulseHalf)
	return &Pulse{
		Target: target,
		Base:   base,
		grow:   gween.New(float32(base), peak, half, ease.OutQuad),
		shrink: gween.New(peak, float32(base), half, ease.InQuad),
		half:   half,
		value:  float32(base),
	}
}

// Update steps the loop. Time left over at a turning point carries into the
// next half so long frames keep the rhythm.
func (p *Pulse) Update(dt time.Duration) {
	if p.stopped || p.half <= 0 {
		return
	}
	rest := seconds(dt)
	for rest > 0 {
		step := min(rest, p.half-p.phase)
		if step <= 0 {
			step = rest
		}
		rest -= step
		p.phase += step

		tw := p.grow
		if p.shrinking {
			tw = p.shrink
		}
		value, done := tw.Update(step)
		p.value = value
		if done {
			tw.Reset()
			p.shrinking = !p.shrinking
			p.phase = 0
		}
	}
}

// Scale is the current display scale.
func (p *Pulse) Scale() float64 {
	if p.stopped {
		return p.Base
	}
	return float64(p.value)
}

// Stop ends the loop and restores the base scale.
func (p *Pulse) Stop() {
	p.stopped = true
}

func (p *Pulse) Stopped() bool {
	return p.stopped
}

// Flight moves a coin from a found target toward the score area while it
// shrinks. It plays once.
type Flight struct {
	x, y, scale *gween.Tween
	curX, curY  float32
	curScale    float32
	done        bool
}

func NewFlight(fromX, fromY float64) *Flight {
	d := seconds(CoinDuration)
	return &Flight{
		x:        gween.New(float32(fromX), CoinTargetX, d, ease.Linear),
		y:        gween.New(float32(fromY), CoinTargetY, d, ease.Linear),
		scale:    gween.New(CoinScale, CoinEndScale, d, ease.Linear),
		curX:     float32(fromX),
		curY:     float32(fromY),
		curScale: CoinScale,
	}
}

// Update advances the flight and reports whether it has landed.
func (f *Flight) Update(dt time.Duration) bool {
	if f.done {
		return true
	}
	step := seconds(dt)
	f.curX, _ = f.x.Update(step)
	f.curY, _ = f.y.Update(step)
	f.curScale, f.done = f.scale.Update(step)
	return f.done
}

func (f *Flight) Position() (float64, float64) {
	return float64(f.curX), float64(f.curY)
}

func (f *Flight) Scale() float64 {
	return float64(f.curScale)
}

func (f *Flight) Done() bool {
	return f.done
}

// Set owns the live reveal animations of a scene.
type Set struct {
	Pulses  []*Pulse
	Flights []*Flight
}

// Reveal starts the pulse and coin flight for a target found at (x, y).
func (s *Set) Reveal(target int, x, y, scale float64) {
	s.Pulses = append(s.Pulses, NewPulse(target, scale))
	s.Flights = append(s.Flights, NewFlight(x, y))
}

// Update advances every animation and drops landed coins.
func (s *Set) Update(dt time.Duration) {
	for _, p := range s.Pulses {
		p.Update(dt)
	}
	live := s.Flights[:0]
	for _, f := range s.Flights {
		if !f.Update(dt) {
			live = append(live, f)
		}
	}
	for i := len(live); i < len(s.Flights); i++ {
		s.Flights[i] = nil
	}
	s.Flights = live
}

// PulseScale returns the animated scale for target, or base when it has no
// pulse.
func (s *Set) PulseScale(target int, base float64) float64 {
	for _, p := range s.Pulses {
		if p.Target == target {
			return p.Scale()
		}
	}
	return base
}

// StopPulses halts every pulse loop. Coins keep flying.
func (s *Set) StopPulses() {
	for _, p := range s.Pulses {
		p.Stop()
	}
}
