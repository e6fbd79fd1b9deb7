// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/unit"
)

// Rect is a filled rectangle. Relative sides resolve against the
// available extent, so a 100% side is indeterminate and zero when
// the extent is unbounded.
type Rect struct {
	Width, Height unit.Rel
	Fill          color.NRGBA
	Stroke        *frame.Stroke
}

func (r Rect) Layout(gtx layout.Context) frame.Frame {
	cs := gtx.Constraints
	size := geom.Pt(r.Width.Resolve(cs.Max.X), r.Height.Resolve(cs.Max.Y))
	f := frame.New(size)
	fill := r.Fill
	f.Push(geom.Point{}, frame.Shape{Size: size, Fill: &fill, Stroke: r.Stroke})
	return f
}
