// The day10 command solves Advent of Code 2025 day 10: the fewest button
// presses that configure every factory machine.
package main

import (
	"context"
	_ "embed"
	"flag"

	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/factory"
)

var flagStrategy = flag.String("strategy", factory.Partition.String(), "joltage search strategy: partition or bfs")

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed day10.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) machines() []*factory.Machine {
	var ms []*factory.Machine
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		ms = append(ms, aoc.MustGet(factory.Parse(line)))
	})
	return ms
}

// solveAll solves every machine concurrently and sums the presses.
func (s solver) solveAll(solve func(*factory.Machine) (int, error)) int {
	ms := s.machines()
	factory.Log.SetLevel(aoc.Log.GetLevel())
	return aoc.MustGet(aoc.ParallelSum(context.Background(), s.Config().WorkerLimit(), ms, func(_ context.Context, m *factory.Machine) (int, error) {
		n, err := solve(m)
		if err != nil {
			return 0, err
		}
		s.Debugf("%v: %d presses", m, n)
		return n, nil
	}))
}

/*
want=7

[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}
*/
func (s solver) D10p1() any {
	return s.solveAll((*factory.Machine).MinLightPresses)
}

// want=33
func (s solver) D10p2() any {
	strategy := aoc.MustGet(factory.ParseStrategy(*flagStrategy))
	return s.solveAll(func(m *factory.Machine) (int, error) {
		return m.MinJoltagePresses(strategy)
	})
}
