// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
)

// Transformed is content scaled and then rotated about the center
// of its frame. The frame keeps the untransformed size, so
// containers place it as if no transform applied.
type Transformed struct {
	// ScaleX and ScaleY are the scale factors. A zero factor
	// leaves its axis unscaled.
	ScaleX, ScaleY float64
	// Rotation is in radians, clockwise on the page.
	Rotation float64
	Child    Layoutable
}

func (t Transformed) Layout(gtx Context) frame.Frame {
	f := t.Child.Layout(gtx)
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sx == 1 && sy == 1 && t.Rotation == 0 {
		return f
	}
	c := f.Size().Mul(0.5)
	// Page y grows downwards, which turns the counter-clockwise
	// rotation of Affine2D clockwise.
	f.Transform(geom.Affine2D{}.Scale(c, sx, sy).Rotate(c, t.Rotation))
	return f
}
