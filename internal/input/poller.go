package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Poller reads raw key state once per frame and derives edge events. It is
// the only place that remembers the previous frame's key state.
type Poller struct {
	bindings Bindings
	read     KeyReader
	trackers map[ebiten.Key]*KeyStateTracker
}

// NewPoller creates a poller reading live ebiten key state.
func NewPoller(bindings Bindings) *Poller {
	return NewPollerWithReader(bindings, ebiten.IsKeyPressed)
}

// NewPollerWithReader creates a poller over an arbitrary key source.
func NewPollerWithReader(bindings Bindings, read KeyReader) *Poller {
	p := &Poller{
		bindings: bindings,
		read:     read,
		trackers: make(map[ebiten.Key]*KeyStateTracker),
	}
	for _, keys := range bindings {
		for _, k := range keys {
			if _, ok := p.trackers[k]; !ok {
				p.trackers[k] = &KeyStateTracker{}
			}
		}
	}
	return p
}

// Poll must be called exactly once per tick. Each key is read once, so an
// alias shared by several actions (F for confirm and interact) still yields a
// single edge per action.
func (p *Poller) Poll() Frame {
	down := make(map[ebiten.Key]bool, len(p.trackers))
	edge := make(map[ebiten.Key]bool, len(p.trackers))
	for k, tr := range p.trackers {
		d := p.read(k)
		down[k] = d
		edge[k] = tr.Update(d)
	}

	var f Frame
	for action, keys := range p.bindings {
		for _, k := range keys {
			if down[k] {
				f.Held |= NewActions(action)
			}
			if edge[k] {
				f.Pressed |= NewActions(action)
			}
		}
	}
	return f
}
