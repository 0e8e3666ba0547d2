package newton

import "math/bits"

// Range is a half-open span [Start, End) of flattened pixel indices.
type Range struct {
	Start, End int
}

func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits [0, n) into workers contiguous ranges. Worker i owns
// [⌊n·i/workers⌋, ⌊n·(i+1)/workers⌋), so sizes differ by at most one.
func Partition(n, workers int) []Range {
	if workers < 1 || n < 0 {
		return nil
	}

	ranges := make([]Range, workers)
	for i := range ranges {
		ranges[i] = Range{
			Start: boundary(n, i, workers),
			End:   boundary(n, i+1, workers),
		}
	}
	return ranges
}

// boundary computes ⌊n·i/workers⌋ with a 128-bit product so large grids
// cannot overflow. i <= workers keeps the quotient within n.
func boundary(n, i, workers int) int {
	hi, lo := bits.Mul64(uint64(n), uint64(i))
	q, _ := bits.Div64(hi, lo, uint64(workers))
	return int(q)
}
