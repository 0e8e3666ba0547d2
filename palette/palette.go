// Package palette maps classification results to colours.
package palette

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrPaletteTooSmall = errors.New("palette has fewer entries than root indices")

// Black is used for unclassified and diverged pixels.
var Black = mgl32.Vec3{0, 0, 0}

// Named is the list of root colours, reused cyclically when the degree
// exceeds its length. Components are in [0, 1].
var Named = []mgl32.Vec3{
	rgb(255, 0, 0),
	rgb(0, 255, 0),
	rgb(0, 0, 255),
	rgb(255, 0, 255),
	rgb(0, 255, 255),
	rgb(255, 255, 0),
	rgb(255, 255, 255),
	rgb(200, 100, 150),
	rgb(200, 150, 100),
	rgb(150, 200, 100),
}

func rgb(r, g, b uint8) mgl32.Vec3 {
	return mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// Palette is indexed by root index: 0 is unclassified, 1..k are the roots
// and k+1 is the diverged sentinel.
type Palette []mgl32.Vec3

// ForDegree builds a palette with exactly degree+2 entries.
func ForDegree(degree int) Palette {
	if degree < 0 {
		degree = 0
	}

	p := make(Palette, degree+2)
	p[0] = Black
	for i := 1; i <= degree; i++ {
		p[i] = Named[(i-1)%len(Named)]
	}
	p[degree+1] = Black
	return p
}

// Validate checks that every root index a run of the given degree can
// produce has an entry.
func (p Palette) Validate(degree int) error {
	if len(p) < degree+2 {
		return fmt.Errorf("%w: %d entries for degree %d, need %d", ErrPaletteTooSmall, len(p), degree, degree+2)
	}
	return nil
}

// RGB returns the 8-bit channels of the colour for a root index.
func (p Palette) RGB(index uint32) (r, g, b uint8) {
	c := p[index]
	return channel(c[0]), channel(c[1]), channel(c[2])
}

func channel(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

// Gray maps an iteration count to an intensity: min(255, 2·count).
func Gray(count uint32) uint8 {
	if count >= 128 {
		return 255
	}
	return uint8(2 * count)
}
