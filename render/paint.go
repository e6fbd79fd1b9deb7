// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"image"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
)

// painter draws the elements of one image.
type painter struct {
	r    *Renderer
	dc   *gg.Context
	w, h int
	// masks is the stack of clip masks in effect.
	masks []*image.Alpha
	buf   sfnt.Buffer
}

func (p *painter) frame(f frame.Frame, t geom.Affine2D) {
	for _, it := range f.Items() {
		at := t.Mul(geom.Affine2D{}.Offset(it.Pos))
		switch e := it.Elem.(type) {
		case frame.Group:
			p.group(e, at)
		case frame.Shape:
			p.shape(e, at)
		case frame.Text:
			p.text(e, at)
		case frame.Image:
			p.image(e, at)
		}
	}
}

func (p *painter) group(g frame.Group, t geom.Affine2D) {
	t = t.Mul(g.Transform)
	if !g.Clips {
		p.frame(g.Frame, t)
		return
	}
	var parent *image.Alpha
	if n := len(p.masks); n > 0 {
		parent = p.masks[n-1]
	}
	mask := clipMask(p.w, p.h, t, geom.Rectangle{Max: g.Frame.Size()}, parent)
	p.masks = append(p.masks, mask)
	p.setMask(mask)
	p.frame(g.Frame, t)
	p.masks = p.masks[:len(p.masks)-1]
	p.setMask(parent)
}

func (p *painter) setMask(m *image.Alpha) {
	if m == nil {
		p.dc.ResetClip()
		return
	}
	// Masks are created at the context size.
	_ = p.dc.SetMask(m)
}

func (p *painter) shape(s frame.Shape, t geom.Affine2D) {
	if s.Fill == nil && s.Stroke == nil {
		return
	}
	if !setTransform(p.dc, t) {
		return
	}
	r := geom.Rectangle{Max: s.Size}.Canon()
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	if s.Fill != nil && w > 0 && h > 0 {
		p.dc.DrawRectangle(x, y, w, h)
		p.dc.SetColor(*s.Fill)
		p.dc.Fill()
	}
	if s.Stroke != nil && s.Stroke.Thickness > 0 {
		p.dc.DrawRectangle(x, y, w, h)
		p.dc.SetColor(s.Stroke.Color)
		p.dc.SetLineWidth(float64(s.Stroke.Thickness) * lineScale(t))
		p.dc.Stroke()
	}
}

func (p *painter) image(im frame.Image, t geom.Affine2D) {
	if im.Src == nil {
		return
	}
	b := im.Src.Bounds()
	if b.Empty() || im.Size.X <= 0 || im.Size.Y <= 0 {
		return
	}
	sx := float64(im.Size.X) / float64(b.Dx())
	sy := float64(im.Size.Y) / float64(b.Dy())
	if !setTransform(p.dc, t.Mul(geom.Affine2D{}.Scale(geom.Point{}, sx, sy))) {
		return
	}
	p.dc.DrawImage(im.Src, -b.Min.X, -b.Min.Y)
}

// text fills the outlines of the glyphs of a run. The item position
// is the start of the baseline.
func (p *painter) text(txt frame.Text, t geom.Affine2D) {
	if txt.Face == nil || len(txt.Glyphs) == 0 {
		return
	}
	fnt, err := p.r.font(txt.Face)
	if err != nil {
		p.r.log.Warn("skipping text", zap.String("text", txt.Runes), zap.Error(err))
		return
	}
	if !setTransform(p.dc, t) {
		return
	}
	ppem := fixed.Int26_6(float64(txt.Size) * 64)
	for _, g := range txt.Glyphs {
		segs, err := fnt.LoadGlyph(&p.buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			p.r.log.Debug("missing glyph", zap.Uint32("glyph", g.ID), zap.Error(err))
			continue
		}
		x := float64(g.X)
		pt := func(a fixed.Point26_6) (float64, float64) {
			return x + float64(a.X)/64, float64(a.Y) / 64
		}
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				p.dc.MoveTo(pt(s.Args[0]))
			case sfnt.SegmentOpLineTo:
				p.dc.LineTo(pt(s.Args[0]))
			case sfnt.SegmentOpQuadTo:
				x1, y1 := pt(s.Args[0])
				x2, y2 := pt(s.Args[1])
				p.dc.QuadraticTo(x1, y1, x2, y2)
			case sfnt.SegmentOpCubeTo:
				x1, y1 := pt(s.Args[0])
				x2, y2 := pt(s.Args[1])
				x3, y3 := pt(s.Args[2])
				p.dc.CubicTo(x1, y1, x2, y2, x3, y3)
			}
		}
		p.dc.ClosePath()
	}
	p.dc.SetColor(txt.Fill)
	p.dc.Fill()
}
