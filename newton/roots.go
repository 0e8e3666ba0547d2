package newton

import "math"

// RootTable returns the k-th roots of unity, the exact roots of z^k - 1.
// Entry j is (cos(2πj/k), sin(2πj/k)).
func RootTable(degree int) []complex128 {
	if degree < 1 {
		return nil
	}

	roots := make([]complex128, degree)
	for j := range roots {
		angle := 2 * math.Pi * float64(j) / float64(degree)
		roots[j] = complex(math.Cos(angle), math.Sin(angle))
	}
	return roots
}
