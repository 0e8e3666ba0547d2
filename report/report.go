// Package report summarises a finished run.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"

	"github.com/stewi1014/newtonfractal/newton"
)

type Root struct {
	Index          int     `json:"index"`
	Re             float64 `json:"re"`
	Im             float64 `json:"im"`
	Pixels         int     `json:"pixels"`
	MeanIterations float64 `json:"mean_iterations"`
}

type Summary struct {
	Degree         int     `json:"degree"`
	Side           int     `json:"side"`
	Workers        int     `json:"workers"`
	MaxIterations  int     `json:"max_iterations"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Roots          []Root  `json:"roots"`
	Diverged       int     `json:"diverged"`
	Capped         int     `json:"capped"`
	Unclassified   int     `json:"unclassified"`
	MeanIterations float64 `json:"mean_iterations"`
	MaxIterCount   uint32  `json:"max_iteration_count"`
}

// Summarize counts pixels per root. Capped pixels are the sentinel pixels
// whose count is MaxIterations+1; they are included in Diverged.
func Summarize(run *newton.Run, res *newton.Result, elapsed time.Duration) Summary {
	p := run.Params()
	s := Summary{
		Degree:         p.Degree,
		Side:           p.Side,
		Workers:        p.Workers,
		MaxIterations:  p.MaxIterations,
		ElapsedSeconds: elapsed.Seconds(),
	}

	rootTable := run.Roots()
	sums := make([]uint64, len(rootTable))
	s.Roots = make([]Root, len(rootTable))
	for j, root := range rootTable {
		s.Roots[j] = Root{Index: j + 1, Re: real(root), Im: imag(root)}
	}

	var total uint64
	capped := uint32(p.MaxIterations) + 1
	for i, root := range res.Roots {
		its := res.Iterations[i]
		total += uint64(its)
		if its > s.MaxIterCount {
			s.MaxIterCount = its
		}

		switch {
		case root == 0:
			s.Unclassified++
		case root == res.Sentinel():
			s.Diverged++
			if its == capped {
				s.Capped++
			}
		default:
			s.Roots[root-1].Pixels++
			sums[root-1] += uint64(its)
		}
	}

	for j := range s.Roots {
		if s.Roots[j].Pixels > 0 {
			s.Roots[j].MeanIterations = float64(sums[j]) / float64(s.Roots[j].Pixels)
		}
	}
	if n := len(res.Roots); n > 0 {
		s.MeanIterations = float64(total) / float64(n)
	}
	return s
}

// Write encodes s as indented JSON.
func Write(w io.Writer, s Summary) error {
	data, err := sonic.ConfigStd.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
