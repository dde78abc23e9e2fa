package factory

import "fmt"

// Strategy selects how MinJoltagePresses searches.
type Strategy int

const (
	// Partition is an exact depth-first search splitting the smallest
	// counter between the buttons that touch it.
	Partition Strategy = iota
	// MemoBFS is a breadth-first search with memoized used vectors and a
	// scaling shortcut. Faster on some machines, but the shortcut may
	// overshoot the true minimum.
	MemoBFS
)

func (s Strategy) String() string {
	switch s {
	case Partition:
		return "partition"
	case MemoBFS:
		return "bfs"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the strategy named by s, as printed by String.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "partition":
		return Partition, nil
	case "bfs":
		return MemoBFS, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

// MinJoltagePresses returns the fewest button presses that drain every
// joltage counter to zero. Each press lowers the counters its button touches
// by one; a press that would take a counter below zero is not allowed.
func (m *Machine) MinJoltagePresses(s Strategy) (int, error) {
	if m.Joltage.IsZero() && (s == Partition || s == MemoBFS) {
		return 0, nil
	}
	switch s {
	case Partition:
		return m.minJoltagePartition()
	case MemoBFS:
		return m.minJoltageMemoBFS()
	}
	return 0, fmt.Errorf("unknown strategy %v", s)
}
