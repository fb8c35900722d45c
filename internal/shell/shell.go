// Package shell holds the pieces around the round that are not gameplay:
// orientation lock, fullscreen and the last result line.
package shell

import (
	"fmt"
	"log"

	"stagseek/internal/round"
)

// Pauser is the part of a round the orientation watcher drives.
type Pauser interface {
	Pause()
	Resume()
}

// Orientation shows the rotate-device overlay and pauses the round while the
// view is taller than it is wide.
type Orientation struct {
	Round Pauser

	portrait bool
}

// Check applies the rule for a view of w x h. Call it on load and on every
// resize. It returns true while the overlay must be shown.
func (o *Orientation) Check(w, h int) bool {
	portrait := h > w
	if portrait != o.portrait {
		log.Printf("shell: orientation portrait=%v (%dx%d)", portrait, w, h)
	}
	o.portrait = portrait
	if o.Round != nil {
		if portrait {
			o.Round.Pause()
		} else {
			o.Round.Resume()
		}
	}
	return portrait
}

// Overlay reports whether the rotate-device overlay is showing.
func (o *Orientation) Overlay() bool {
	return o.portrait
}

// Screen switches the host display in and out of fullscreen.
type Screen interface {
	IsFullscreen() bool
	SetFullscreen(on bool) error
}

type Fullscreen struct {
	Screen Screen
}

// Toggle flips fullscreen. Failures are logged and otherwise ignored.
func (f *Fullscreen) Toggle() {
	if f.Screen == nil {
		return
	}
	if f.Screen.IsFullscreen() {
		if err := f.Screen.SetFullscreen(false); err != nil {
			log.Printf("shell: error exiting fullscreen: %v", err)
		}
		return
	}
	if err := f.Screen.SetFullscreen(true); err != nil {
		log.Printf("shell: error enabling fullscreen: %v", err)
	}
}

// Summary renders the previous round in one line, or "" without one.
func Summary(res round.Result, ok bool) string {
	if !ok {
		return ""
	}
	return fmt.Sprintf("Last game: Score %d, Time %d/%d seconds", res.Score, res.RemainingTime, res.TotalTime)
}

// EndLines are the score and time lines of the end-of-round popup.
func EndLines(res round.Result) (score, remaining string) {
	return fmt.Sprintf("Score: %d", res.Score),
		fmt.Sprintf("Time: %d seconds remaining", res.RemainingTime)
}

// EndTitle is the popup heading for an outcome.
func EndTitle(won bool) string {
	if won {
		return "You found every stag!"
	}
	return "Time's up!"
}
