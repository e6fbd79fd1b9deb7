// SPDX-License-Identifier: Unlicense OR MIT

// Package render rasterises frames to images.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/sync/errgroup"

	"gioui.org/typeset/font"
	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
)

// Renderer draws frames with fogleman/gg. It is safe for concurrent
// use.
type Renderer struct {
	dpi        float64
	oversample int
	background *color.NRGBA
	log        *zap.Logger

	mu    sync.Mutex
	fonts map[font.Face]*sfnt.Font
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDPI sets the output resolution. The default is 72 DPI, one
// pixel per point.
func WithDPI(dpi float64) Option {
	return func(r *Renderer) {
		r.dpi = dpi
	}
}

// WithOversample renders at n times the resolution and scales the
// result down, for smoother edges.
func WithOversample(n int) Option {
	return func(r *Renderer) {
		r.oversample = n
	}
}

// WithBackground fills images with c before drawing.
func WithBackground(c color.NRGBA) Option {
	return func(r *Renderer) {
		r.background = &c
	}
}

// WithLogger directs the renderer's diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		r.log = l
	}
}

// New returns a renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		dpi:        72,
		oversample: 1,
		log:        zap.NewNop(),
		fonts:      make(map[font.Face]*sfnt.Font),
	}
	for _, o := range opts {
		o(r)
	}
	if r.dpi <= 0 {
		r.dpi = 72
	}
	if r.oversample < 1 {
		r.oversample = 1
	}
	return r
}

// PixelSize returns the size in pixels of an image of f.
func (r *Renderer) PixelSize(f frame.Frame) image.Point {
	return r.pixelSize(f, 1)
}

func (r *Renderer) pixelSize(f frame.Frame, oversample int) image.Point {
	s := r.dpi / 72 * float64(oversample)
	px := func(v float64) int {
		return max(1, int(math.Ceil(v*s)))
	}
	return image.Pt(px(float64(f.Width())), px(float64(f.Height())))
}

// Render draws f. Content outside the frame bounds is cut off by the
// image edges.
func (r *Renderer) Render(f frame.Frame) image.Image {
	size := r.pixelSize(f, r.oversample)
	dc := gg.NewContext(size.X, size.Y)
	if r.background != nil {
		dc.SetColor(*r.background)
		dc.Clear()
	}
	scale := r.dpi / 72 * float64(r.oversample)
	p := &painter{r: r, dc: dc, w: size.X, h: size.Y}
	p.frame(f, geom.Affine2D{}.Scale(geom.Point{}, scale, scale))
	img := dc.Image()
	if r.oversample == 1 {
		return img
	}
	out := image.NewRGBA(image.Rectangle{Max: r.pixelSize(f, 1)})
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

// RenderAll draws frames concurrently. The images are in the order
// of frames.
func (r *Renderer) RenderAll(ctx context.Context, frames []frame.Frame) ([]image.Image, error) {
	imgs := make([]image.Image, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			imgs[i] = r.Render(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return imgs, nil
}

// SavePNG writes img to the PNG file path.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// font returns the outlines of face, parsing it on first use.
func (r *Renderer) font(face font.Face) (*sfnt.Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.fonts[face]; ok {
		return f, nil
	}
	f, err := opentype.Parse(face.TTF())
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	r.fonts[face] = f
	return f, nil
}
