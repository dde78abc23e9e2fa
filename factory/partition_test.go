package factory

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForCompositions(t *testing.T) {
	var got [][]int
	forCompositions(3, 2, func(c []int) bool {
		got = append(got, slices.Clone(c))
		return true
	})
	assert.Equal(t, [][]int{{3, 0}, {2, 1}, {1, 2}, {0, 3}}, got)
}

func TestForCompositionsCount(t *testing.T) {
	tests := []struct {
		total, parts, want int
	}{
		{total: 0, parts: 3, want: 1},
		{total: 4, parts: 1, want: 1},
		{total: 4, parts: 3, want: 15}, // C(6,2)
		{total: 5, parts: 4, want: 56}, // C(8,3)
		{total: 0, parts: 0, want: 1},
		{total: 2, parts: 0, want: 0},
	}
	for _, tt := range tests {
		n := 0
		forCompositions(tt.total, tt.parts, func(c []int) bool {
			sum := 0
			for _, v := range c {
				if v < 0 {
					t.Fatalf("negative part in %v", c)
				}
				sum += v
			}
			if sum != tt.total {
				t.Fatalf("composition %v does not sum to %d", c, tt.total)
			}
			n++
			return true
		})
		if n != tt.want {
			t.Errorf("forCompositions(%d, %d) produced %d; want %d", tt.total, tt.parts, n, tt.want)
		}
	}
}

func TestForCompositionsStops(t *testing.T) {
	n := 0
	forCompositions(10, 3, func([]int) bool {
		n++
		return n < 4
	})
	assert.Equal(t, 4, n)
}

func TestPartitionExamples(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"[..] (0,1) {3,3}", 3},
		{"[..] (0) (0,1) {4,2}", 4},
		{"[..] (0) (0,1) {0,0}", 0},
		// Pressing (0,1,2) three times beats the single-counter buttons.
		{"[...] (0) (1) (2) (0,1,2) {3,3,4}", 4},
		{"[...] (0,1) (1,2) {2,5,3}", 5},
	}
	for _, tt := range tests {
		got, err := mustParse(t, tt.line).MinJoltagePresses(Partition)
		if err != nil || got != tt.want {
			t.Errorf("Partition(%q) = %v, %v; want %v", tt.line, got, err, tt.want)
		}
	}
}

func TestPartitionUnsolvable(t *testing.T) {
	for _, line := range []string{
		"[..] (0,1) {1,2}",
		"[..] (0) {1,2}",
		"[.] {1}",
	} {
		_, err := mustParse(t, line).MinJoltagePresses(Partition)
		assert.ErrorIs(t, err, ErrUnsolvable, line)
	}
}

func TestPartitionSingleCoordinateButtons(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for range 200 {
		m, want := singleCoordMachine(t, r)
		got, err := m.MinJoltagePresses(Partition)
		require.NoError(t, err, m.String())
		require.Equal(t, want, got, m.String())
	}
}

func TestPartitionLeavesMachineAlone(t *testing.T) {
	m := mustParse(t, "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
	before := m.String()
	_, err := m.MinJoltagePresses(Partition)
	require.NoError(t, err)
	assert.Equal(t, before, m.String())
}
