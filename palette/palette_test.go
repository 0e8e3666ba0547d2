package palette

import (
	"errors"
	"testing"
)

func TestForDegree(t *testing.T) {
	for _, degree := range []int{1, 3, 10, 11, 25} {
		p := ForDegree(degree)
		if len(p) != degree+2 {
			t.Fatalf("ForDegree(%d) has %d entries, want %d", degree, len(p), degree+2)
		}
		if err := p.Validate(degree); err != nil {
			t.Fatalf("ForDegree(%d).Validate() = %v", degree, err)
		}
		if p[0] != Black || p[degree+1] != Black {
			t.Errorf("degree %d: unclassified or sentinel entry is not black", degree)
		}
		for i := 1; i <= degree; i++ {
			if p[i] != Named[(i-1)%len(Named)] {
				t.Errorf("degree %d: entry %d = %v, want %v", degree, i, p[i], Named[(i-1)%len(Named)])
			}
		}
	}
}

func TestValidateTooSmall(t *testing.T) {
	p := ForDegree(3)
	if err := p.Validate(4); !errors.Is(err, ErrPaletteTooSmall) {
		t.Fatalf("Validate(4) = %v, want %v", err, ErrPaletteTooSmall)
	}
}

func TestRGBRoundTripsNamedColours(t *testing.T) {
	want := [][3]uint8{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {255, 0, 255}, {0, 255, 255},
		{255, 255, 0}, {255, 255, 255}, {200, 100, 150}, {200, 150, 100}, {150, 200, 100},
	}

	p := ForDegree(len(want))
	for i, w := range want {
		r, g, b := p.RGB(uint32(i + 1))
		if [3]uint8{r, g, b} != w {
			t.Errorf("RGB(%d) = %v, want %v", i+1, [3]uint8{r, g, b}, w)
		}
	}
	if r, g, b := p.RGB(uint32(len(want) + 1)); r|g|b != 0 {
		t.Errorf("sentinel colour = %d %d %d, want black", r, g, b)
	}
}

func TestGray(t *testing.T) {
	tests := []struct {
		count uint32
		want  uint8
	}{
		{0, 0},
		{1, 2},
		{100, 200},
		{127, 254},
		{128, 255},
		{1001, 255},
	}

	for _, tt := range tests {
		if got := Gray(tt.count); got != tt.want {
			t.Errorf("Gray(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}
