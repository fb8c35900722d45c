package entity

import (
	"log"

	"stagseek/internal/round"
)

// Registry owns the hidden targets of one round.
type Registry struct {
	Targets []*Target

	// OnFound runs for every newly found target before the score changes.
	OnFound func(t *Target)

	round *round.Round
}

// NewRegistry builds one interactive target per placement. sizes[i] is the
// image size of target i+1; missing entries leave the target zero sized.
func NewRegistry(r *round.Round, placements []Placement, sizes []Size) *Registry {
	reg := &Registry{round: r}
	for i, p := range placements {
		t := &Target{
			Index:       i + 1,
			Placement:   p,
			Interactive: true,
		}
		if i < len(sizes) {
			t.Size = sizes[i]
		}
		reg.Targets = append(reg.Targets, t)
	}
	return reg
}

// TargetAt returns the topmost interactive target under a world point.
func (reg *Registry) TargetAt(wx, wy float64) *Target {
	for i := len(reg.Targets) - 1; i >= 0; i-- {
		t := reg.Targets[i]
		if t.Interactive && t.Contains(wx, wy) {
			return t
		}
	}
	return nil
}

// Select marks t as found. It does nothing once the round is over or when t
// was already found. Finding the last target wins the round.
func (reg *Registry) Select(t *Target) {
	if t == nil || reg.round.Over() || t.Found {
		return
	}
	t.Found = true
	t.Interactive = false

	if reg.OnFound != nil {
		reg.OnFound(t)
	}

	score := reg.round.AddScore()
	reg.round.Presenter().MarkTargetFound(t.Index)
	log.Printf("entity: found stag %d (%d/%d)", t.Index, score, len(reg.Targets))

	if reg.FoundCount() == len(reg.Targets) {
		reg.round.End(true)
	}
}

// FoundCount is the number of targets found so far.
func (reg *Registry) FoundCount() int {
	n := 0
	for _, t := range reg.Targets {
		if t.Found {
			n++
		}
	}
	return n
}
