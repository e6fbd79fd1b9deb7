// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"gioui.org/typeset/geom"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/unit"
)

// Fit scales content with a fixed aspect ratio into a region.
type Fit uint8

const (
	// Contain scales the content as large as possible without
	// cropping, preserving its aspect ratio.
	Contain Fit = iota
	// Cover scales the content to cover the region, preserving its
	// aspect ratio. The overhang is clipped.
	Cover
	// Stretch scales the content to the region without preserving
	// its aspect ratio.
	Stretch
	// ScaleDown is like Contain, but never enlarges the content.
	ScaleDown
	// Unscaled leaves the content at its natural size, clipped to
	// the region.
	Unscaled
)

// ParseFit returns the fit named s.
func ParseFit(s string) (Fit, error) {
	for f := Contain; f <= Unscaled; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("widget: invalid fit %q", s)
}

func (f Fit) String() string {
	switch f {
	case Contain:
		return "contain"
	case Cover:
		return "cover"
	case Stretch:
		return "stretch"
	case ScaleDown:
		return "scaledown"
	case Unscaled:
		return "unscaled"
	default:
		panic("unreachable")
	}
}

// clips reports whether content fitted with f may extend beyond its
// canvas.
func (f Fit) clips() bool {
	return f == Cover || f == Unscaled
}

// canvas returns the region content of the natural size will be
// fitted into. Expanded axes take the whole available extent; an
// unexpanded axis shrinks to what the other axis leaves for the
// aspect ratio.
func canvas(cs layout.Constraints, natural geom.Point) geom.Point {
	ratio := safeDiv(natural.X, natural.Y)
	avail := cs.Max
	expX := cs.Expand.X && avail.X.IsFinite()
	expY := cs.Expand.Y && avail.Y.IsFinite()
	wide := float64(ratio) > float64(avail.X)/float64(avail.Y)
	switch {
	case expX && expY:
		return avail
	case expX || (wide && avail.X.IsFinite()):
		return geom.Pt(avail.X, avail.Y.Min(safeDiv(avail.X, ratio)))
	case avail.Y.IsFinite():
		return geom.Pt(avail.X.Min(avail.Y*ratio), avail.Y)
	default:
		return natural
	}
}

// size returns the size of content of the natural size fitted into
// canvas.
func (f Fit) size(canvas, natural geom.Point) geom.Point {
	ratio := safeDiv(natural.X, natural.Y)
	wide := float64(ratio) > float64(safeDiv(canvas.X, canvas.Y))
	switch f {
	case Stretch:
		return canvas
	case Unscaled:
		return natural
	case ScaleDown:
		s := Contain.size(canvas, natural)
		if s.X > natural.X {
			return natural
		}
		return s
	case Contain, Cover:
		if wide == (f == Contain) {
			return geom.Pt(canvas.X, safeDiv(canvas.X, ratio))
		}
		return geom.Pt(canvas.Y*ratio, canvas.Y)
	default:
		panic("unreachable")
	}
}

// safeDiv returns a/b, or zero if the quotient is not finite.
func safeDiv(a, b unit.Abs) unit.Abs {
	q := a / b
	if !q.IsFinite() {
		return 0
	}
	return q
}
