package newton

import (
	"math"
	"strconv"
	"testing"
)

var powSamples = []complex128{
	0, 1, -1, 1i, -1i,
	0.5 + 0.5i,
	-0.75 + 0.25i,
	1.1 - 0.3i,
	-1.3 - 0.9i,
	0.01 + 1.2i,
	math.Sqrt2 / 2 * (1 + 1i),
}

func closeTo(a, b complex128, rel float64) bool {
	scale := math.Max(MagnitudeSquared(b), 1)
	return MagnitudeSquared(a-b) <= rel*rel*scale
}

func TestPowPathsAgree(t *testing.T) {
	for _, x := range powSamples {
		for p := 0; p <= 64; p++ {
			naive := PowNaive(x, p)
			if got := Pow(x, p); !closeTo(got, naive, 1e-10) {
				t.Errorf("Pow(%v, %d) = %v, want %v", x, p, got, naive)
			}
			if got := PowBinary(x, p); !closeTo(got, naive, 1e-10) {
				t.Errorf("PowBinary(%v, %d) = %v, want %v", x, p, got, naive)
			}
		}
	}
}

func TestPowZeroExponent(t *testing.T) {
	for _, x := range powSamples {
		if got := Pow(x, 0); got != 1 {
			t.Errorf("Pow(%v, 0) = %v, want 1", x, got)
		}
		if got := PowBinary(x, 0); got != 1 {
			t.Errorf("PowBinary(%v, 0) = %v, want 1", x, got)
		}
	}
}

func TestPowBinaryOfI(t *testing.T) {
	// i^p cycles through 1, i, -1, -i and every product is exact.
	want := []complex128{1, 1i, -1, -1i}
	for p := 0; p < 100; p++ {
		if got := PowBinary(1i, p); got != want[p%4] {
			t.Errorf("PowBinary(i, %d) = %v, want %v", p, got, want[p%4])
		}
	}
}

func TestInverse(t *testing.T) {
	for _, x := range powSamples {
		if x == 0 {
			continue
		}
		if got := x * Inverse(x); !closeTo(got, 1, 1e-14) {
			t.Errorf("%v * Inverse(%v) = %v, want 1", x, x, got)
		}
	}
}

func TestMagnitudeAndDistance(t *testing.T) {
	tests := []struct {
		a, b complex128
		want float64
	}{
		{3 + 4i, 0, 25},
		{1, 1, 0},
		{1 + 1i, -1 - 1i, 8},
		{-2i, 2i, 16},
	}

	for _, tt := range tests {
		if got := DistanceSquared(tt.a, tt.b); got != tt.want {
			t.Errorf("DistanceSquared(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	if got := MagnitudeSquared(3 - 4i); got != 25 {
		t.Errorf("MagnitudeSquared(3-4i) = %v, want 25", got)
	}
}

func TestScale(t *testing.T) {
	if got := Scale(1.5-2i, 2); got != 3-4i {
		t.Errorf("Scale = %v, want 3-4i", got)
	}
	if got := DivReal(3-4i, 2); got != 1.5-2i {
		t.Errorf("DivReal = %v, want 1.5-2i", got)
	}
}

var sink complex128

func BenchmarkPow(b *testing.B) {
	x := complex(0.3, 0.7)
	for _, p := range []int{3, 7, 8, 9, 16, 31} {
		b.Run("fast-"+strconv.Itoa(p), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sink = Pow(x, p)
			}
		})
		b.Run("naive-"+strconv.Itoa(p), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sink = PowNaive(x, p)
			}
		})
	}
}
