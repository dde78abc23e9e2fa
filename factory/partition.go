package factory

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// unreachable marks a branch that cannot drain every counter.
const unreachable = math.MaxInt

// partitionSearch drains the counter vector smallest counter first. The
// smallest nonzero counter m can only be drained by the buttons touching it,
// and their presses must add up to exactly m, so every split of m between
// those buttons is tried. Once split, those buttons are spent for the rest of
// the branch since any further press would take that counter below zero.
type partitionSearch struct {
	buttons []Button
}

func (m *Machine) minJoltagePartition() (int, error) {
	avail := make([]int, len(m.Buttons))
	for i := range avail {
		avail[i] = i
	}
	s := partitionSearch{buttons: m.Buttons}
	got := s.search(m.Joltage, avail)
	if got == unreachable {
		return 0, fmt.Errorf("%w: joltage %v: %v", ErrUnsolvable, m.Joltage, m)
	}
	Log.WithFields(logrus.Fields{
		"machine": m.String(),
		"presses": got,
	}).Debug("partition search")
	return got, nil
}

// search returns the fewest presses of the buttons in avail (indices into
// s.buttons) that drain residual, or unreachable.
func (s partitionSearch) search(residual []int, avail []int) int {
	low, targets, ok := minNonZero(residual)
	if !ok {
		return 0
	}
	best := unreachable
	for _, t := range targets {
		var matched, rest []int
		for _, bi := range avail {
			if s.buttons[bi].Touches(t) {
				matched = append(matched, bi)
			} else {
				rest = append(rest, bi)
			}
		}
		if len(matched) == 0 {
			// Nothing left can drain counter t, so no target choice can
			// succeed from here.
			return unreachable
		}
		next := make([]int, len(residual))
		forCompositions(low, len(matched), func(counts []int) bool {
			copy(next, residual)
			if !s.press(next, matched, counts) {
				return true
			}
			if sub := s.search(next, rest); sub != unreachable && low+sub < best {
				best = low + sub
			}
			return true
		})
	}
	return best
}

// press presses buttons[i] counts[i] times against v, reporting false if any
// counter would go below zero. v is garbage on failure.
func (s partitionSearch) press(v []int, buttons, counts []int) bool {
	for i, n := range counts {
		if n == 0 {
			continue
		}
		if !s.buttons[buttons[i]].decrementInPlace(v, n) {
			return false
		}
	}
	return true
}

// forCompositions calls f with every way of writing total as an ordered sum
// of parts non-negative integers, stopping early if f returns false. f must
// not retain the slice.
func forCompositions(total, parts int, f func([]int) (keepGoing bool)) {
	if parts <= 0 {
		if total == 0 {
			f(nil)
		}
		return
	}
	buf := make([]int, parts)
	var rec func(i, left int) bool
	rec = func(i, left int) bool {
		if i == parts-1 {
			buf[i] = left
			return f(buf)
		}
		for n := left; n >= 0; n-- {
			buf[i] = n
			if !rec(i+1, left-n) {
				return false
			}
		}
		return true
	}
	rec(0, total)
}
