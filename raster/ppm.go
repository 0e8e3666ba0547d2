package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

// EncodePPM writes img as a plain (P3) PPM with a maximum channel value of
// 255: one "r g b " triplet per pixel in row-major order, one line per row.
func EncodePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriterSize(w, 1<<16)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", bounds.Dx(), bounds.Dy(), 255); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	rgb := pixelFunc(img)
	line := make([]byte, 0, bounds.Dx()*12+1)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		line = line[:0]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := rgb(x, y)
			line = strconv.AppendUint(line, uint64(r), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(g), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(b), 10)
			line = append(line, ' ')
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("write ppm row %d: %w", y-bounds.Min.Y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush ppm: %w", err)
	}
	return nil
}

func pixelFunc(img image.Image) func(x, y int) (r, g, b uint8) {
	if src, ok := img.(Image); ok {
		return src.RGBAt
	}
	return func(x, y int) (r, g, b uint8) {
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		return c.R, c.G, c.B
	}
}
