// Package factory models the day 10 factory machines: a light diagram, a
// joltage requirement and a set of buttons, and finds the fewest button
// presses that turn every light off or drain every joltage counter.
package factory

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log receives debug output from the solvers.
var Log = logrus.New()

// ErrUnsolvable is returned when no sequence of presses reaches the goal
// state. Well-formed puzzle inputs never produce it.
var ErrUnsolvable = errors.New("no solution found")

// maxLights is the widest light diagram a uint64 can hold.
const maxLights = 64

// Button is the sorted set of coordinates a button affects.
type Button []int

// NewButton returns the button affecting idx. Indices must be non-negative
// and unique.
func NewButton(idx ...int) (Button, error) {
	b := slices.Clone(idx)
	slices.Sort(b)
	for i, v := range b {
		if v < 0 {
			return nil, fmt.Errorf("button %v: negative index %d", idx, v)
		}
		if i > 0 && b[i-1] == v {
			return nil, fmt.Errorf("button %v: duplicate index %d", idx, v)
		}
	}
	return b, nil
}

// Mask returns the lights toggled by the button.
func (b Button) Mask() uint64 {
	var m uint64
	for _, i := range b {
		m |= 1 << i
	}
	return m
}

func (b Button) Touches(i int) bool {
	_, ok := slices.BinarySearch(b, i)
	return ok
}

// decrement returns a copy of v with every affected counter lowered by n. It
// reports false if that would take any counter below zero.
func (b Button) decrement(v []int, n int) ([]int, bool) {
	out := slices.Clone(v)
	if !b.decrementInPlace(out, n) {
		return nil, false
	}
	return out, true
}

// decrementInPlace is decrement on v itself. v is left untouched on failure.
func (b Button) decrementInPlace(v []int, n int) bool {
	for _, i := range b {
		if v[i] < n {
			return false
		}
	}
	for _, i := range b {
		v[i] -= n
	}
	return true
}

func (b Button) String() string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// LightDiagram is a row of lights; bit i of Bits is light i.
type LightDiagram struct {
	Bits  uint64
	Width int
}

func (d LightDiagram) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range d.Width {
		if d.Bits&(1<<i) != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// JoltageVector holds one non-negative counter per coordinate.
type JoltageVector []int

func (v JoltageVector) IsZero() bool {
	return isZero(v)
}

func (v JoltageVector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprint(x)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Machine is one line of the puzzle input. Solvers treat it as read-only.
type Machine struct {
	Lights  LightDiagram
	Joltage JoltageVector
	Buttons []Button
}

// New returns a machine after checking that every button stays within both
// the light diagram and the joltage vector.
func New(lights LightDiagram, joltage JoltageVector, buttons []Button) (*Machine, error) {
	if lights.Width < 0 || lights.Width > maxLights {
		return nil, fmt.Errorf("light diagram width %d out of range [0,%d]", lights.Width, maxLights)
	}
	if lights.Width < maxLights && lights.Bits>>lights.Width != 0 {
		return nil, fmt.Errorf("light diagram %#x wider than %d", lights.Bits, lights.Width)
	}
	for i, j := range joltage {
		if j < 0 {
			return nil, fmt.Errorf("joltage %d is negative: %d", i, j)
		}
	}
	for _, b := range buttons {
		for _, i := range b {
			if i >= lights.Width {
				return nil, fmt.Errorf("button %v: index %d outside light diagram %v", b, i, lights)
			}
			if i >= len(joltage) {
				return nil, fmt.Errorf("button %v: index %d outside joltage %v", b, i, joltage)
			}
		}
	}
	return &Machine{
		Lights:  lights,
		Joltage: joltage,
		Buttons: buttons,
	}, nil
}

// Parse parses a machine in the puzzle's encoding:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
func Parse(line string) (*Machine, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("parsing machine %q: want a light diagram and joltage", line)
	}
	lights, err := parseLights(fields[0])
	if err != nil {
		return nil, fmt.Errorf("parsing machine %q: %w", line, err)
	}
	joltage, err := parseList(fields[len(fields)-1], '{', '}')
	if err != nil {
		return nil, fmt.Errorf("parsing machine %q: joltage: %w", line, err)
	}
	var buttons []Button
	for _, f := range fields[1 : len(fields)-1] {
		idx, err := parseList(f, '(', ')')
		if err != nil {
			return nil, fmt.Errorf("parsing machine %q: button: %w", line, err)
		}
		b, err := NewButton(idx...)
		if err != nil {
			return nil, fmt.Errorf("parsing machine %q: %w", line, err)
		}
		buttons = append(buttons, b)
	}
	m, err := New(lights, joltage, buttons)
	if err != nil {
		return nil, fmt.Errorf("parsing machine %q: %w", line, err)
	}
	return m, nil
}

func parseLights(s string) (LightDiagram, error) {
	inner, ok := trimDelims(s, '[', ']')
	if !ok {
		return LightDiagram{}, fmt.Errorf("light diagram %q: want [...]", s)
	}
	if len(inner) > maxLights {
		return LightDiagram{}, fmt.Errorf("light diagram %q: more than %d lights", s, maxLights)
	}
	d := LightDiagram{Width: len(inner)}
	for i, c := range inner {
		switch c {
		case '#':
			d.Bits |= 1 << i
		case '.':
		default:
			return LightDiagram{}, fmt.Errorf("light diagram %q: bad light %q", s, c)
		}
	}
	return d, nil
}

func parseList(s string, left, right byte) ([]int, error) {
	inner, ok := trimDelims(s, left, right)
	if !ok {
		return nil, fmt.Errorf("%q: want %c...%c", s, left, right)
	}
	if inner == "" {
		return nil, nil
	}
	var out []int
	for _, f := range strings.Split(inner, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func trimDelims(s string, left, right byte) (string, bool) {
	if len(s) < 2 || s[0] != left || s[len(s)-1] != right {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// String returns the machine in its puzzle encoding.
func (m *Machine) String() string {
	parts := []string{m.Lights.String()}
	for _, b := range m.Buttons {
		parts = append(parts, b.String())
	}
	parts = append(parts, m.Joltage.String())
	return strings.Join(parts, " ")
}

func isZero(v []int) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// minNonZero returns the smallest nonzero value of v and every index holding
// it. ok is false if v is all zeros.
func minNonZero(v []int) (min int, idx []int, ok bool) {
	for i, x := range v {
		switch {
		case x == 0:
		case !ok || x < min:
			min, idx, ok = x, []int{i}, true
		case x == min:
			idx = append(idx, i)
		}
	}
	return min, idx, ok
}
