package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stewi1014/newtonfractal/newton"
	"github.com/stewi1014/newtonfractal/palette"
	"github.com/stewi1014/newtonfractal/raster"
	"github.com/stewi1014/newtonfractal/report"
)

// renderAll validates every degree before rendering any of them, then
// renders and saves them one after another.
func (a *app) renderAll(ctx context.Context, degrees []int) error {
	runs := make([]*newton.Run, len(degrees))
	for i, degree := range degrees {
		run, err := newton.NewRun(a.cfg.Params(degree))
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		if err := palette.ForDegree(degree).Validate(degree); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		runs[i] = run
	}

	if err := os.MkdirAll(a.cfg.Out, 0o755); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	for _, run := range runs {
		if err := a.render(ctx, run); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) render(ctx context.Context, run *newton.Run) error {
	p := run.Params()
	log := a.log.WithFields(logrus.Fields{
		"degree":  p.Degree,
		"side":    p.Side,
		"workers": p.Workers,
	})
	log.Info("calculating")

	start := time.Now()
	stop := periodicProgress(ctx, log, "calculating", run.Progress)
	res, err := run.Render(ctx)
	stop()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	log.WithField("elapsed", elapsed.Round(time.Millisecond)).Info("done calculating")

	opts := SaveOptions{Dir: a.cfg.Out, Compress: a.cfg.Compress}

	attractors, err := raster.RootImage(res, palette.ForDegree(p.Degree))
	if err != nil {
		return err
	}
	images := []struct {
		name string
		img  raster.Image
	}{
		{attractorsName(p.Degree), attractors},
		{convergenceName(p.Degree), raster.IterationImage(res)},
	}
	for _, image := range images {
		path, err := saveImage(ctx, log, opts, image.name, image.img)
		if err != nil {
			return err
		}
		log.WithField("file", path).Info("image written")
	}

	if a.cfg.Summary {
		path, err := saveSummary(ctx, opts, report.Summarize(run, res, elapsed))
		if err != nil {
			return err
		}
		log.WithField("file", path).Info("summary written")
	}
	return nil
}
