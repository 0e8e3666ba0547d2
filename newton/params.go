package newton

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultSide          = 4000
	DefaultWorkers       = 1
	DefaultMaxIterations = 1000
)

var (
	ErrInvalidDegree        = errors.New("degree must be a positive integer")
	ErrInvalidSide          = errors.New("grid side must be a positive integer")
	ErrInvalidWorkers       = errors.New("worker count must be a positive integer")
	ErrInvalidMaxIterations = errors.New("iteration cap must be a positive integer")
	ErrInvalidPlane         = errors.New("plane span must be positive and finite")
)

// Plane is the square window of the complex plane sampled by the grid.
type Plane struct {
	Center   mgl64.Vec2
	HalfSpan float64
}

// DefaultPlane covers [-2, 2) on both axes.
var DefaultPlane = Plane{
	Center:   mgl64.Vec2{0, 0},
	HalfSpan: 2,
}

// Sample maps grid coordinates to the complex plane:
// re = cx + 2h(x/side - 0.5), im = cy + 2h(y/side - 0.5).
func (p Plane) Sample(x, y, side int) complex128 {
	scale := 2 * p.HalfSpan
	return complex(
		p.Center[0]+scale*(float64(x)/float64(side)-0.5),
		p.Center[1]+scale*(float64(y)/float64(side)-0.5),
	)
}

// Params holds everything fixed for the duration of a run.
type Params struct {
	Degree        int
	Side          int
	Workers       int
	MaxIterations int
	Plane         Plane
}

// DefaultParams returns the defaults for the given degree.
func DefaultParams(degree int) Params {
	return Params{
		Degree:        degree,
		Side:          DefaultSide,
		Workers:       DefaultWorkers,
		MaxIterations: DefaultMaxIterations,
		Plane:         DefaultPlane,
	}
}

// Pixels is the flattened grid size, Side².
func (p Params) Pixels() int {
	return p.Side * p.Side
}

// Validate rejects parameters that cannot describe a run.
func (p Params) Validate() error {
	// Root indices go up to Degree+1 and counts up to MaxIterations+1, both stored as uint32.
	if p.Degree < 1 || uint64(p.Degree) >= math.MaxUint32 {
		return fmt.Errorf("%w: got %d", ErrInvalidDegree, p.Degree)
	}
	if p.Side < 1 || p.Side > math.MaxInt/p.Side {
		return fmt.Errorf("%w: got %d", ErrInvalidSide, p.Side)
	}
	if p.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, p.Workers)
	}
	if p.MaxIterations < 1 || uint64(p.MaxIterations) >= math.MaxUint32 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxIterations, p.MaxIterations)
	}
	h := p.Plane.HalfSpan
	if !(h > 0) || math.IsInf(h, 0) ||
		math.IsNaN(p.Plane.Center[0]) || math.IsNaN(p.Plane.Center[1]) {
		return fmt.Errorf("%w: centre %v, half span %v", ErrInvalidPlane, p.Plane.Center, h)
	}
	return nil
}
