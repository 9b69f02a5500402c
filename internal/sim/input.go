package sim

import (
	"github.com/paulmach/orb"
)

type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// InputSnapshot is everything the player did between two ticks.
type InputSnapshot struct {
	keys uint8
	// Clicks are world positions whose obstacle state should toggle.
	Clicks []orb.Point
	// Target, when set, overrides the pathing agents' target.
	Target *orb.Point
}

func (s InputSnapshot) IsKeyDown(k Key) bool {
	return s.keys&(1<<k) != 0
}

// WithKeys returns a copy of s with the keys held down.
func (s InputSnapshot) WithKeys(keys ...Key) InputSnapshot {
	for _, k := range keys {
		s.keys |= 1 << k
	}
	return s
}

// Input latches events between ticks. The tick driver drains it once per
// tick with Snapshot.
type Input struct {
	pending InputSnapshot
}

func (in *Input) Press(k Key) {
	in.pending.keys |= 1 << k
}

func (in *Input) Click(p orb.Point) {
	in.pending.Clicks = append(in.pending.Clicks, p)
}

func (in *Input) SetTarget(p orb.Point) {
	in.pending.Target = &p
}

// Snapshot returns the latched input and clears the latch.
func (in *Input) Snapshot() InputSnapshot {
	s := in.pending
	in.pending = InputSnapshot{}
	return s
}
