// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"gioui.org/typeset/font"
	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/text"
	"gioui.org/typeset/unit"
)

// Label is a widget for laying out a single line of text. Its frame
// is one line high, as wide as the shaped text, with the baseline at
// the font ascent.
type Label struct {
	Shaper *text.Shaper
	Font   font.Font
	// Size is the font size. If zero, the context font size is used.
	Size unit.Value
	// Color is the text color. The zero value means opaque black.
	Color color.NRGBA
	Text  string
}

func (l Label) Layout(gtx layout.Context) frame.Frame {
	size := gtx.Metric.Abs(unit.V(1, unit.UnitEm))
	if l.Size.V != 0 {
		size = gtx.Metric.Abs(l.Size)
	}
	r := l.Shaper.Shape(l.Font, size, l.Text)
	f := frame.New(geom.Pt(r.Advance, r.Height()))
	f.SetBaseline(r.Ascent)
	glyphs := make([]frame.Glyph, len(r.Glyphs))
	for i, g := range r.Glyphs {
		glyphs[i] = frame.Glyph{ID: g.ID, X: g.X}
	}
	col := l.Color
	if col == (color.NRGBA{}) {
		col.A = 0xff
	}
	f.Push(geom.Pt(0, r.Ascent), frame.Text{
		Font:    r.Font,
		Face:    r.Face,
		Size:    r.Size,
		Fill:    col,
		Glyphs:  glyphs,
		Advance: r.Advance,
		Ascent:  r.Ascent,
		Descent: r.Descent,
		Runes:   r.Text,
	})
	return f
}
