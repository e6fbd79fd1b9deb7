// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/unit"
)

// Image is a widget that displays a raster image.
type Image struct {
	// Src is the image to display.
	Src image.Image
	// Width and Height fix the extent of the image region. A zero
	// value leaves the axis to the constraints and the aspect ratio.
	Width, Height unit.Rel
	// Fit specifies how to scale the image into its region.
	Fit Fit
	// Scale is the number of points per image pixel. If zero,
	// a pixel is one point, matching 72 DPI.
	Scale float64
}

// ErrNotFound is returned by Open for missing image files.
var ErrNotFound = errors.New("file not found")

// Open decodes the image file name in fsys. PNG, JPEG, GIF, BMP,
// TIFF and WebP images are supported.
func Open(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("widget: %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("widget: %w", err)
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("widget: %s: %w", name, err)
	}
	return img, nil
}

// Decode decodes an image in any of the formats supported by Open.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to load image (%w)", err)
	}
	return img, nil
}

// NaturalSize returns the size of the image at its scale.
func (im Image) NaturalSize() geom.Point {
	if im.Src == nil {
		return geom.Point{}
	}
	scale := im.Scale
	if scale == 0 {
		scale = 1
	}
	b := im.Src.Bounds()
	return geom.Pt(unit.Abs(float64(b.Dx())*scale), unit.Abs(float64(b.Dy())*scale))
}

func (im Image) Layout(gtx layout.Context) frame.Frame {
	if im.Src == nil {
		return frame.New(geom.Point{})
	}
	cs := gtx.Constraints
	if !im.Width.IsZero() {
		cs.Max.X = im.Width.Resolve(cs.Max.X).Max(0)
		cs.Expand.X = true
	}
	if !im.Height.IsZero() {
		cs.Max.Y = im.Height.Resolve(cs.Max.Y).Max(0)
		cs.Expand.Y = true
	}
	natural := im.NaturalSize()
	region := canvas(cs, natural)
	size := im.Fit.size(region, natural)

	// Place the image in a frame of exactly its size, then center it
	// in the region.
	f := frame.New(size)
	f.Push(geom.Point{}, frame.Image{Src: im.Src, Size: size})
	f.Resize(region, region.Sub(size).Mul(.5))
	if im.Fit.clips() {
		f.Clip()
	}
	return f
}
