// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/unit"
)

// rect is a filled rectangle with relative width and height.
type rect struct {
	w, h unit.Rel
}

func fixed(w, h unit.Abs) rect {
	return rect{w: unit.Absolute(w), h: unit.Absolute(h)}
}

func (r rect) Layout(gtx Context) frame.Frame {
	sz := geom.Pt(r.w.Resolve(gtx.Constraints.Max.X), r.h.Resolve(gtx.Constraints.Max.Y))
	f := frame.New(sz)
	f.Push(geom.Point{}, frame.Shape{Size: sz})
	return f
}

func gtxOf(w, h unit.Abs) Context {
	return Context{Constraints: Loose(geom.Pt(w, h))}
}
