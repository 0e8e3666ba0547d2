package newton

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Result holds the per-pixel output of a run as two flat arrays indexed by
// x + y·Side.
type Result struct {
	Side       int
	Degree     int
	Roots      []uint32
	Iterations []uint32
}

func newResult(p Params) *Result {
	n := p.Pixels()
	return &Result{
		Side:       p.Side,
		Degree:     p.Degree,
		Roots:      make([]uint32, n),
		Iterations: make([]uint32, n),
	}
}

// Sentinel is the root index of samples that did not converge.
func (r *Result) Sentinel() uint32 {
	return uint32(r.Degree) + 1
}

// At returns the root index and iteration count of pixel (x, y).
func (r *Result) At(x, y int) (root, iterations uint32) {
	i := x + y*r.Side
	return r.Roots[i], r.Iterations[i]
}

// Run is a validated, immutable set of parameters plus everything derived
// from them. Render may be called repeatedly, but not concurrently.
type Run struct {
	params     Params
	classifier Classifier
	classify   func(complex128) Outcome

	done atomic.Int64
}

// NewRun validates p and precomputes the root table and inverse degree.
func NewRun(p Params) (*Run, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	r := &Run{
		params:     p,
		classifier: NewClassifier(p.Degree, p.MaxIterations),
	}
	r.classify = r.classifier.Classify
	return r, nil
}

func (r *Run) Params() Params {
	return r.params
}

// Roots returns a copy of the root table.
func (r *Run) Roots() []complex128 {
	return append([]complex128(nil), r.classifier.Roots...)
}

// Progress reports the completed fraction of the current or last render.
func (r *Run) Progress() float64 {
	return float64(r.done.Load()) / float64(r.params.Pixels())
}

// Render classifies every pixel of the grid. The grid is split into one
// contiguous range per worker; each worker writes only its own range and the
// result is returned after all of them have finished. If any worker fails or
// ctx is cancelled, the partial result is discarded and the error returned.
func (r *Run) Render(ctx context.Context) (*Result, error) {
	r.done.Store(0)
	res := newResult(r.params)

	g, gctx := errgroup.WithContext(ctx)
	for i, rng := range Partition(r.params.Pixels(), r.params.Workers) {
		i, rng := i, rng
		g.Go(func() (err error) {
			defer catchPanic(i, &err)
			return r.renderRange(gctx, res, rng)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render degree %d: %w", r.params.Degree, err)
	}
	return res, nil
}

// renderRange walks rng in raster order, carrying (x, y) along instead of
// dividing the flat index for every pixel.
func (r *Run) renderRange(ctx context.Context, res *Result, rng Range) error {
	side := r.params.Side
	plane := r.params.Plane
	x, y := rng.Start%side, rng.Start/side

	var pending int64
	for px := rng.Start; px < rng.End; px++ {
		out := r.classify(plane.Sample(x, y, side))
		res.Roots[px] = uint32(out.Root)
		res.Iterations[px] = uint32(out.Steps + 1)
		pending++

		if x++; x == side {
			x = 0
			y++
			r.done.Add(pending)
			pending = 0
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	r.done.Add(pending)
	return nil
}
