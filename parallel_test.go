package aoc

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelKeepsOrder(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out, err := Parallel(context.Background(), 3, in, func(_ context.Context, v int) (int, error) {
		return v * v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9, 16, 25, 36, 49, 64}, out)
}

func TestParallelLimit(t *testing.T) {
	var running, peak atomic.Int32
	in := make([]int, 32)
	_, err := Parallel(context.Background(), 2, in, func(_ context.Context, v int) (int, error) {
		n := running.Add(1)
		defer running.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return v, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestParallelSum(t *testing.T) {
	got, err := ParallelSum(context.Background(), 0, []string{"1", "20", "300"}, func(_ context.Context, s string) (int, error) {
		return Int(s), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 321, got)
}

func TestParallelError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ParallelSum(context.Background(), 1, []int{1, 2, 3}, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	assert.ErrorIs(t, err, boom)
}
