// Package raster turns a classified grid into images and writes them as
// plain-text PPM.
package raster

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/stewi1014/newtonfractal/newton"
	"github.com/stewi1014/newtonfractal/palette"
)

// Image is an image.Image that can also hand out raw channels without
// going through color.Color.
type Image interface {
	image.Image
	RGBAt(x, y int) (r, g, b uint8)
}

// RootImage colours each pixel by the root it converged to.
func RootImage(res *newton.Result, p palette.Palette) (Image, error) {
	if err := p.Validate(res.Degree); err != nil {
		return nil, err
	}
	return &rootImage{grid: grid{res}, palette: p}, nil
}

// IterationImage shades each pixel by its iteration count.
func IterationImage(res *newton.Result) Image {
	return &iterationImage{grid: grid{res}}
}

type grid struct {
	res *newton.Result
}

func (g grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.res.Side, g.res.Side)
}

func (g grid) ColorModel() color.Model {
	return color.NRGBAModel
}

func (g grid) Opaque() bool {
	return true
}

type rootImage struct {
	grid
	palette palette.Palette
}

func (i *rootImage) RGBAt(x, y int) (r, g, b uint8) {
	root, _ := i.res.At(x, y)
	return i.palette.RGB(root)
}

func (i *rootImage) At(x, y int) color.Color {
	r, g, b := i.RGBAt(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

type iterationImage struct {
	grid
}

func (i *iterationImage) RGBAt(x, y int) (r, g, b uint8) {
	_, its := i.res.At(x, y)
	v := palette.Gray(its)
	return v, v, v
}

func (i *iterationImage) At(x, y int) color.Color {
	v, _, _ := i.RGBAt(x, y)
	return color.NRGBA{R: v, G: v, B: v, A: 0xff}
}

// ProgressImage counts pixel reads so a long encode can report how far it got.
type ProgressImage struct {
	Image
	count atomic.Int64
}

func WithProgress(img Image) *ProgressImage {
	return &ProgressImage{Image: img}
}

func (i *ProgressImage) RGBAt(x, y int) (r, g, b uint8) {
	i.count.Add(1)
	return i.Image.RGBAt(x, y)
}

func (i *ProgressImage) At(x, y int) color.Color {
	i.count.Add(1)
	return i.Image.At(x, y)
}

func (i *ProgressImage) Progress() float64 {
	end := i.Bounds().Dx() * i.Bounds().Dy()
	if end == 0 {
		return 1
	}
	return float64(i.count.Load()) / float64(end)
}
