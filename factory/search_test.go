package factory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These machines were checked by hand against the shortcut, so both
// strategies must find the true minimum.
var crossChecked = []struct {
	line string
	want int
}{
	{"[..] (0,1) {3,3}", 3},
	{"[..] (0) (0,1) {4,2}", 4},
	{"[..] (0) (1) {2,3}", 5},
	{"[..] (0) (1) {1,3}", 4},
	{"[...] (0) (1,2) {0,0,0}", 0},
	{"[...] (0,2) {3,0,3}", 3},
	{"[...] (0,1) (1,2) {2,5,3}", 5},
	{"[...] (0,1) (0,2) (2) {1,0,2}", 2},
	{"[#] (0) {1}", 1},
}

func TestMemoBFSExamples(t *testing.T) {
	for _, tt := range crossChecked {
		got, err := mustParse(t, tt.line).MinJoltagePresses(MemoBFS)
		if err != nil || got != tt.want {
			t.Errorf("MemoBFS(%q) = %v, %v; want %v", tt.line, got, err, tt.want)
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	for _, tt := range crossChecked {
		m := mustParse(t, tt.line)
		a, err := m.MinJoltagePresses(Partition)
		require.NoError(t, err, tt.line)
		b, err := m.MinJoltagePresses(MemoBFS)
		require.NoError(t, err, tt.line)
		assert.Equal(t, a, b, tt.line)
	}
}

func TestMemoBFSUnsolvable(t *testing.T) {
	for _, line := range []string{
		// The lone 1 is settled by (0,1), after which nothing touches
		// counter 1.
		"[..] (0,1) {1,2}",
		"[.] {1}",
		"[..] (0) {0,2}",
	} {
		_, err := mustParse(t, line).MinJoltagePresses(MemoBFS)
		assert.ErrorIs(t, err, ErrUnsolvable, line)
	}
}

func TestSettleSingleUnit(t *testing.T) {
	tests := []struct {
		line      string
		wantSkip  int
		wantStart []int
	}{
		// First covering button can't be pressed; the next one is used.
		{"[...] (0,1) (0,2) (2) {1,0,2}", 0, []int{0, 0, 1}},
		// Two counters need one press: nothing is settled.
		{"[..] (0) (1) {1,1}", -1, []int{1, 1}},
		{"[..] (0) (1) {2,3}", -1, []int{2, 3}},
	}
	for _, tt := range tests {
		m := mustParse(t, tt.line)
		s := &memoSearch{m: m, log: Log.WithField("test", tt.line), skip: -1}
		start := append([]int(nil), m.Joltage...)
		presses := s.settleSingleUnit(start)
		assert.Equal(t, tt.wantSkip, s.skip, tt.line)
		assert.Equal(t, tt.wantStart, start, tt.line)
		if tt.wantSkip == -1 {
			assert.Equal(t, 0, presses, tt.line)
		} else {
			assert.Equal(t, 1, presses, tt.line)
		}
	}
}

func TestMemoBFSSingleCoordinateButtons(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for range 200 {
		m, want := singleCoordMachine(t, r)
		got, err := m.MinJoltagePresses(MemoBFS)
		require.NoError(t, err, m.String())
		require.Equal(t, want, got, m.String())

		ref, err := m.MinJoltagePresses(Partition)
		require.NoError(t, err, m.String())
		require.Equal(t, ref, got, m.String())
	}
}
