package newton

import (
	"math"
	"testing"
)

func TestRootTableRootsOfUnity(t *testing.T) {
	for k := 1; k <= 40; k++ {
		roots := RootTable(k)
		if len(roots) != k {
			t.Fatalf("RootTable(%d) has %d entries", k, len(roots))
		}
		for j, root := range roots {
			if got := Pow(root, k); !closeTo(got, 1, 1e-9) {
				t.Errorf("degree %d: root[%d]^%d = %v, want 1", k, j, k, got)
			}
			if m := MagnitudeSquared(root); math.Abs(m-1) > 1e-12 {
				t.Errorf("degree %d: |root[%d]|² = %v, want 1", k, j, m)
			}
		}
	}
}

func TestRootTableOrder(t *testing.T) {
	roots := RootTable(4)
	want := []complex128{1, 1i, -1, -1i}
	for j := range want {
		if !closeTo(roots[j], want[j], 1e-15) {
			t.Errorf("root[%d] = %v, want %v", j, roots[j], want[j])
		}
	}
	if roots[0] != 1 {
		t.Errorf("root[0] = %v, want exactly 1", roots[0])
	}
}

func TestRootTableInvalidDegree(t *testing.T) {
	if roots := RootTable(0); roots != nil {
		t.Errorf("RootTable(0) = %v, want nil", roots)
	}
}

func TestStepFixesRoots(t *testing.T) {
	for _, k := range []int{1, 2, 3, 5, 8, 13} {
		inv := 1 / float64(k)
		for j, root := range RootTable(k) {
			if got := Step(k, inv, root); !closeTo(got, root, 1e-12) {
				t.Errorf("degree %d: Step(root[%d]) = %v, want %v", k, j, got, root)
			}
		}
	}
}

func TestStepMatchesNewtonQuotient(t *testing.T) {
	for _, k := range []int{2, 3, 4, 7, 9, 12} {
		inv := 1 / float64(k)
		for _, x := range powSamples {
			if x == 0 {
				continue
			}
			// x - f(x)/f'(x) evaluated directly.
			want := x - (PowNaive(x, k)-1)/(complex(float64(k), 0)*PowNaive(x, k-1))
			if got := Step(k, inv, x); !closeTo(got, want, 1e-9) {
				t.Errorf("Step(%d, %v) = %v, want %v", k, x, got, want)
			}
		}
	}
}
