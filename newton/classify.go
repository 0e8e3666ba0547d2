package newton

import (
	"math"
	"math/cmplx"
)

const (
	// Tolerance bounds both the squared distance to a root and the squared
	// magnitude below which a sample is treated as stuck at the origin.
	Tolerance = 1e-6
	// EscapeBound is the component magnitude treated as numeric infinity.
	EscapeBound = 1e10
)

// Outcome is the terminal state of one sample.
//
// Root is 1-based: 1..Degree for a converged sample, Degree+1 for a sample
// that escaped, collapsed onto the origin or hit the iteration cap.
// Steps is the number of Newton steps taken before classification.
type Outcome struct {
	Root   int
	Steps  int
	Capped bool
}

// Classifier drives the Newton iteration for single samples.
// It only reads its fields, so one value can serve any number of goroutines.
type Classifier struct {
	Degree        int
	InvDegree     float64
	Roots         []complex128
	MaxIterations int
}

// NewClassifier builds a classifier for z^degree - 1.
func NewClassifier(degree, maxIterations int) Classifier {
	return Classifier{
		Degree:        degree,
		InvDegree:     1 / float64(degree),
		Roots:         RootTable(degree),
		MaxIterations: maxIterations,
	}
}

// Sentinel is the root index recorded for samples that did not converge.
func (c Classifier) Sentinel() int {
	return len(c.Roots) + 1
}

// Classify iterates x until it lands within Tolerance of a root, escapes,
// collapses onto the origin or reaches MaxIterations steps.
// Roots are tested in table order and the first one within tolerance wins.
func (c Classifier) Classify(x complex128) Outcome {
	for steps := 0; ; steps++ {
		for j, root := range c.Roots {
			if DistanceSquared(x, root) < Tolerance {
				return Outcome{Root: j + 1, Steps: steps}
			}
		}

		if math.Abs(real(x)) > EscapeBound || math.Abs(imag(x)) > EscapeBound ||
			MagnitudeSquared(x) < Tolerance || cmplx.IsNaN(x) {
			return Outcome{Root: c.Sentinel(), Steps: steps}
		}

		if steps >= c.MaxIterations {
			return Outcome{Root: c.Sentinel(), Steps: steps, Capped: true}
		}

		x = Step(c.Degree, c.InvDegree, x)
	}
}
