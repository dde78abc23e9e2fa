package factory

import (
	"fmt"

	"github.com/maisem/aoc2025"
	"tailscale.com/util/set"
)

// MinLightPresses returns the fewest button presses that turn every light of
// the diagram off. Pressing a button toggles the lights it touches.
func (m *Machine) MinLightPresses() (int, error) {
	type state struct {
		lights  uint64
		presses int
	}
	masks := make([]uint64, len(m.Buttons))
	for i, b := range m.Buttons {
		masks[i] = b.Mask()
	}

	seen := make(set.Set[uint64])
	seen.Add(m.Lights.Bits)
	q := aoc.NewQueue(state{lights: m.Lights.Bits})
	found, presses := false, 0
	q.While(func(s state) bool {
		if s.lights == 0 {
			found, presses = true, s.presses
			return false
		}
		for _, mask := range masks {
			next := s.lights ^ mask
			if seen.Contains(next) {
				continue
			}
			seen.Add(next)
			q.Push(state{lights: next, presses: s.presses + 1})
		}
		return true
	})
	if !found {
		return 0, fmt.Errorf("%w: lights %v after %d states: %v", ErrUnsolvable, m.Lights, seen.Len(), m)
	}
	return presses, nil
}
