package factory

import (
	"tailscale.com/util/deephash"
)

const (
	packedWords   = 4
	bitsPerCoord  = 16
	coordsPerWord = 64 / bitsPerCoord
	maxCoord      = 1<<bitsPerCoord - 1

	// maxPacked is the widest vector a packed key can hold.
	maxPacked = packedWords * coordsPerWord
)

// vectorKey identifies a counter vector in a map. Vectors up to maxPacked
// wide with values up to maxCoord are packed exactly; anything else falls
// back to a deephash sum. All vectors of one solve have the same width, so
// packed keys never collide.
type vectorKey struct {
	packed [packedWords]uint64
	hashed bool
	sum    deephash.Sum
}

var hashVector = deephash.HasherForType[[]int]()

func keyOf(v []int) vectorKey {
	var k vectorKey
	if len(v) <= maxPacked {
		fits := true
		for i, x := range v {
			if x < 0 || x > maxCoord {
				fits = false
				break
			}
			k.packed[i/coordsPerWord] |= uint64(x) << (bitsPerCoord * (i % coordsPerWord))
		}
		if fits {
			return k
		}
	}
	return vectorKey{hashed: true, sum: hashVector(&v)}
}

// usedKey returns the key of target minus residual, the amount already
// drained from each counter.
func usedKey(target, residual []int) vectorKey {
	used := make([]int, len(target))
	for i := range target {
		used[i] = target[i] - residual[i]
	}
	return keyOf(used)
}
