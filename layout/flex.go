// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/typeset/geom"
	"gioui.org/typeset/unit"
)

// Spacing is a gap between stacked content. Rel is resolved against
// the available main extent before placement; Fr takes a share of the
// extent left over once everything else is measured, much like a
// flexed child takes a share of the space after rigid children.
type Spacing struct {
	Rel unit.Rel
	Fr  unit.Fr
}

// Gap returns a Spacing of the relative length r.
func Gap(r unit.Rel) Spacing {
	return Spacing{Rel: r}
}

// FrGap returns a Spacing taking the fraction f of the remaining
// space.
func FrGap(f unit.Fr) Spacing {
	return Spacing{Fr: f}
}

// IsZero reports whether s never takes up space.
func (s Spacing) IsZero() bool {
	return s.Rel.IsZero() && s.Fr == 0
}

func (s Spacing) String() string {
	switch {
	case s.Fr == 0:
		return s.Rel.String()
	case s.Rel.IsZero():
		return s.Fr.String()
	default:
		return s.Rel.String() + " + " + s.Fr.String()
	}
}

func axisPoint(a Axis, main, cross unit.Abs) geom.Point {
	if a == Horizontal {
		return geom.Point{X: main, Y: cross}
	} else {
		return geom.Point{X: cross, Y: main}
	}
}

func axisMain(a Axis, sz geom.Point) unit.Abs {
	if a == Horizontal {
		return sz.X
	} else {
		return sz.Y
	}
}

func axisCross(a Axis, sz geom.Point) unit.Abs {
	if a == Horizontal {
		return sz.Y
	} else {
		return sz.X
	}
}
