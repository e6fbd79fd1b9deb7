// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"testing"

	"gioui.org/typeset/font"
	"gioui.org/typeset/font/gofont"
	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/text"
	"gioui.org/typeset/unit"
)

func TestLabel(t *testing.T) {
	shaper := text.NewShaper(gofont.Collection())
	gtx := layout.Context{Constraints: layout.Loose(geom.Pt(200, 200))}
	l := Label{Shaper: shaper, Size: unit.V(12, unit.UnitPt), Text: "Label"}
	f := l.Layout(gtx)
	run := shaper.Shape(font.Font{}, 12, "Label")
	if got, want := f.Size(), geom.Pt(run.Advance, run.Height()); got != want {
		t.Errorf("size %v, want %v", got, want)
	}
	if !f.HasBaseline() || f.Baseline() != run.Ascent {
		t.Errorf("baseline %v, want the ascent %v", f.Baseline(), run.Ascent)
	}
	if f.Text() != "Label" {
		t.Errorf("text %q", f.Text())
	}
	it := f.Items()[0]
	txt := it.Elem.(frame.Text)
	if it.Pos.Y != run.Ascent || len(txt.Glyphs) != 5 || txt.Face == nil {
		t.Errorf("text element %+v at %v", txt, it.Pos)
	}
}

func TestLabelEmSize(t *testing.T) {
	shaper := text.NewShaper(gofont.Regular())
	gtx := layout.Context{Metric: unit.Metric{FontSize: 20}}
	em := Label{Shaper: shaper, Size: unit.V(1, unit.UnitEm), Text: "x"}.Layout(gtx)
	def := Label{Shaper: shaper, Text: "x"}.Layout(gtx)
	if em.Size() != def.Size() {
		t.Errorf("1em label is %v, default label is %v", em.Size(), def.Size())
	}
	if txt := def.Items()[0].Elem.(frame.Text); txt.Size != 20 {
		t.Errorf("default size %v, want the context font size", txt.Size)
	}
}

func TestRect(t *testing.T) {
	gtx := layout.Context{Constraints: layout.Loose(geom.Pt(200, unit.Inf()))}
	fill := color.NRGBA{B: 0xff, A: 0xff}
	f := Rect{Width: unit.Relative(unit.Percent(50)), Height: unit.Relative(1), Fill: fill}.Layout(gtx)
	if got, want := f.Size(), geom.Pt(100, 0); got != want {
		t.Errorf("size %v, want %v", got, want)
	}
	sh := f.Items()[0].Elem.(frame.Shape)
	if *sh.Fill != fill || sh.Size != f.Size() {
		t.Errorf("shape %+v", sh)
	}
}
