// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/unit"
)

// Box is a container with an optional fixed size, background and
// clipping. A zero Width or Height sizes the box to its content on
// that axis.
//
// Box is where overflowing content is truncated: with Clip set,
// content outside the box bounds is not drawn.
type Box struct {
	Width, Height unit.Rel
	Fill          *color.NRGBA
	Stroke        *frame.Stroke
	Clip          bool
	Child         Layoutable
}

// Layout lays out the box. Relative sizes resolve against the
// available extent; the child sees the box size as its available
// extent on the fixed axes.
func (b Box) Layout(gtx Context) frame.Frame {
	cs := gtx.Constraints
	ccs := cs
	var size geom.Point
	fixedX, fixedY := !b.Width.IsZero(), !b.Height.IsZero()
	if fixedX {
		size.X = b.Width.Resolve(cs.Max.X)
		ccs.Max.X = size.X.Max(0)
		ccs.Expand.X = true
	}
	if fixedY {
		size.Y = b.Height.Resolve(cs.Max.Y)
		ccs.Max.Y = size.Y.Max(0)
		ccs.Expand.Y = true
	}
	var child frame.Frame
	if b.Child != nil {
		child = ctxLayout(gtx, ccs, b.Child)
	}
	if !fixedX {
		size.X = child.Width()
	}
	if !fixedY {
		size.Y = child.Height()
	}
	f := frame.New(size)
	f.PushFrame(geom.Point{}, child)
	if child.HasBaseline() {
		f.SetBaseline(child.Baseline())
	}
	if b.Clip {
		f.Clip()
	}
	if b.Fill != nil || b.Stroke != nil {
		f.Prepend(geom.Point{}, frame.Shape{Size: size, Fill: b.Fill, Stroke: b.Stroke})
	}
	return f
}
