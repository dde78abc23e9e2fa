package factory

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc2025"
	"github.com/sirupsen/logrus"
)

// factored records that a residual seen after presses presses was factor
// times some used vector not yet reached.
type factored struct {
	presses int
	factor  int
}

// memoSearch is a breadth-first search over residual counter vectors. States
// are keyed by the used vector (target minus residual) so different press
// orders reaching the same counters collapse into one entry.
//
// On top of plain BFS it takes a shortcut: if the residual is k times a used
// vector u already reached in p presses, repeating those presses k times
// drains it, for k*p more presses. The shortcut is taken as soon as it is
// found, which is not guaranteed to be optimal; Partition is the exact
// strategy.
type memoSearch struct {
	m   *Machine
	log *logrus.Entry

	// skip is the coordinate settled before the search starts, or -1.
	skip int

	pressesCache map[vectorKey]int
	factorCache  map[vectorKey]factored
}

type memoState struct {
	residual []int
	presses  int
}

func (m *Machine) minJoltageMemoBFS() (int, error) {
	s := &memoSearch{
		m:            m,
		log:          Log.WithField("machine", m.String()),
		skip:         -1,
		pressesCache: make(map[vectorKey]int),
		factorCache:  make(map[vectorKey]factored),
	}
	return s.run()
}

// settleSingleUnit handles a target with exactly one counter needing a single
// press: the first button covering it that can be pressed is pressed once up
// front, and buttons touching that counter are ignored afterwards.
func (s *memoSearch) settleSingleUnit(start []int) int {
	idx := -1
	for i, v := range s.m.Joltage {
		if v != 1 {
			continue
		}
		if idx != -1 {
			return 0
		}
		idx = i
	}
	if idx == -1 {
		return 0
	}
	for _, b := range s.m.Buttons {
		if b.Touches(idx) && b.decrementInPlace(start, 1) {
			s.skip = idx
			s.log.WithFields(logrus.Fields{
				"index":  idx,
				"button": b.String(),
			}).Debug("settled single unit counter")
			return 1
		}
	}
	return 0
}

func (s *memoSearch) run() (int, error) {
	target := s.m.Joltage
	start := slices.Clone(target)
	settled := s.settleSingleUnit(start)
	s.pressesCache[usedKey(target, start)] = settled

	var buttons []Button
	for _, b := range s.m.Buttons {
		if s.skip != -1 && b.Touches(s.skip) {
			continue
		}
		buttons = append(buttons, b)
	}

	q := aoc.NewQueue(memoState{residual: start, presses: settled})
	for {
		st, ok := q.Pop()
		if !ok {
			break
		}
		if isZero(st.residual) {
			s.log.WithField("presses", st.presses).Debug("pure brute force")
			return st.presses, nil
		}
		presses := st.presses + 1
		for _, b := range buttons {
			next, ok := b.decrement(st.residual, 1)
			if !ok {
				continue
			}
			key := usedKey(target, next)
			if _, ok := s.pressesCache[key]; ok {
				continue
			}
			s.pressesCache[key] = presses

			if f, ok := s.factorCache[key]; ok {
				total := f.presses + f.factor*presses
				s.log.WithFields(logrus.Fields{
					"factor": f.factor,
					"total":  total,
				}).Debug("future factor")
				return total, nil
			}
			if total, ok := s.pastFactor(next, presses); ok {
				return total, nil
			}
			q.Push(memoState{residual: next, presses: presses})
		}
	}
	return 0, fmt.Errorf("%w: joltage %v after %d states: %v", ErrUnsolvable, target, len(s.pressesCache), s.m)
}

// pastFactor looks for a factor k such that residual/k is a used vector
// already reached, returning the cheapest presses + k*cached. Factors with no
// match yet are remembered in factorCache.
func (s *memoSearch) pastFactor(residual []int, presses int) (int, bool) {
	low, _, ok := minNonZero(residual)
	if !ok {
		return 0, false
	}
	// A factor dividing every counter divides their gcd.
	g := aoc.GCDOf(residual...)
	best, found := 0, false
	scaled := make([]int, len(residual))
	for k := 2; k <= low; k++ {
		if g%k != 0 {
			continue
		}
		for i, v := range residual {
			scaled[i] = v / k
		}
		key := keyOf(scaled)
		cached, ok := s.pressesCache[key]
		if !ok {
			s.factorCache[key] = factored{presses: presses, factor: k}
			continue
		}
		if total := presses + k*cached; !found || total < best {
			best, found = total, true
		}
	}
	if found {
		s.log.WithField("total", best).Debug("past factor")
	}
	return best, found
}
