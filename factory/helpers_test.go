package factory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, line string) *Machine {
	t.Helper()
	m, err := Parse(line)
	require.NoError(t, err)
	return m
}

// randomButton returns a non-empty button over width coordinates.
func randomButton(r *rand.Rand, width int) Button {
	var idx []int
	for len(idx) == 0 {
		for i := range width {
			if r.Intn(2) == 0 {
				idx = append(idx, i)
			}
		}
	}
	b, err := NewButton(idx...)
	if err != nil {
		panic(err)
	}
	return b
}

func randomToggleMachine(t *testing.T, r *rand.Rand) *Machine {
	t.Helper()
	width := 1 + r.Intn(6)
	buttons := make([]Button, r.Intn(6))
	for i := range buttons {
		buttons[i] = randomButton(r, width)
	}
	joltage := make(JoltageVector, width)
	m, err := New(LightDiagram{Bits: uint64(r.Intn(1 << width)), Width: width}, joltage, buttons)
	require.NoError(t, err)
	return m
}

// singleCoordMachine returns a machine whose buttons each touch one counter,
// with at least one button per counter, and the presses it needs.
func singleCoordMachine(t *testing.T, r *rand.Rand) (*Machine, int) {
	t.Helper()
	width := 1 + r.Intn(4)
	joltage := make(JoltageVector, width)
	var buttons []Button
	want := 0
	for i := range joltage {
		joltage[i] = r.Intn(7)
		want += joltage[i]
		for range 1 + r.Intn(2) {
			buttons = append(buttons, Button{i})
		}
	}
	r.Shuffle(len(buttons), func(i, j int) { buttons[i], buttons[j] = buttons[j], buttons[i] })
	m, err := New(LightDiagram{Width: width}, joltage, buttons)
	require.NoError(t, err)
	return m, want
}
