package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"

	"github.com/stewi1014/newtonfractal/raster"
	"github.com/stewi1014/newtonfractal/report"
)

type SaveOptions struct {
	Dir      string
	Compress bool
}

func attractorsName(degree int) string {
	return fmt.Sprintf("newton_attractors_x%d.ppm", degree)
}

func convergenceName(degree int) string {
	return fmt.Sprintf("newton_convergence_x%d.ppm", degree)
}

func summaryName(degree int) string {
	return fmt.Sprintf("newton_summary_x%d.json", degree)
}

// saveImage writes img as PPM, compressed if requested, and returns the path
// written.
func saveImage(ctx context.Context, log *logrus.Entry, opts SaveOptions, name string, img raster.Image) (string, error) {
	path := filepath.Join(opts.Dir, name)
	if opts.Compress {
		path += ".zst"
	}

	progress := raster.WithProgress(img)
	stop := periodicProgress(ctx, log, "encoding "+name, progress.Progress)
	defer stop()

	err := writeFile(ctx, path, func(w io.Writer) error {
		if !opts.Compress {
			return raster.EncodePPM(w, progress)
		}

		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("zstd.NewWriter failed: %w", err)
		}
		if err := raster.EncodePPM(zw, progress); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	})
	return path, err
}

func saveSummary(ctx context.Context, opts SaveOptions, s report.Summary) (string, error) {
	path := filepath.Join(opts.Dir, summaryName(s.Degree))
	return path, writeFile(ctx, path, func(w io.Writer) error {
		return report.Write(w, s)
	})
}

// writeFile creates path and hands it to write. On any failure, including
// ctx being cancelled mid-write, the partial file is removed.
func writeFile(ctx context.Context, path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	// Closing the file makes the writer fail fast once ctx is cancelled.
	abort := context.AfterFunc(ctx, func() {
		file.Close()
	})

	defer func() {
		if !abort() && err == nil {
			err = context.Cause(ctx)
		}
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(path)
			err = fmt.Errorf("write %s: %w", path, err)
		}
	}()

	return write(file)
}
