// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/unit"
)

// Constraints represent the space available to a layout.
type Constraints struct {
	// Max is the available extent. Either coordinate may be
	// infinite for an unbounded axis.
	Max geom.Point
	// Expand requests that the result fills Max on the
	// marked axes.
	Expand Expand
}

// Expand marks the axes a layout must fill.
type Expand struct {
	X, Y bool
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the position of content along an axis.
type Alignment uint8

// Layoutable is content that can be laid out into a frame.
type Layoutable interface {
	Layout(gtx Context) frame.Frame
}

// Widget is a function that lays out content. It implements
// Layoutable.
type Widget func(gtx Context) frame.Frame

// Align is an alignment on zero, one or both axes.
type Align struct {
	X, Y       Alignment
	HasX, HasY bool
}

// Aligned is content with an alignment. Containers such as Stack
// lift the alignment and apply it themselves.
type Aligned struct {
	Align Align
	Child Layoutable
}

// Inset adds space around content. Horizontal insets are
// relative to the available width, vertical insets to the
// available height.
type Inset struct {
	Top, Right, Bottom, Left unit.Rel
}

const (
	Start Alignment = iota
	Middle
	End
)

const (
	Horizontal Axis = iota
	Vertical
)

// Loose returns constraints with the extent max and no
// expansion.
func Loose(max geom.Point) Constraints {
	return Constraints{Max: max}
}

// Exact returns constraints that must be filled exactly.
func Exact(size geom.Point) Constraints {
	return Constraints{Max: size, Expand: Expand{X: true, Y: true}}
}

// On reports whether the constraints expand along axis a.
func (e Expand) On(a Axis) bool {
	if a == Horizontal {
		return e.X
	}
	return e.Y
}

// Layout calls w.
func (w Widget) Layout(gtx Context) frame.Frame {
	return w(gtx)
}

// AlignX returns an alignment on the horizontal axis.
func AlignX(a Alignment) Align {
	return Align{X: a, HasX: true}
}

// AlignY returns an alignment on the vertical axis.
func AlignY(a Alignment) Align {
	return Align{Y: a, HasY: true}
}

// On returns the alignment along axis, if set.
func (a Align) On(axis Axis) (Alignment, bool) {
	if axis == Horizontal {
		return a.X, a.HasX
	}
	return a.Y, a.HasY
}

// Or fills the axes not set in a from b.
func (a Align) Or(b Align) Align {
	if !a.HasX {
		a.X, a.HasX = b.X, b.HasX
	}
	if !a.HasY {
		a.Y, a.HasY = b.Y, b.HasY
	}
	return a
}

// Layout lays out the child and positions it within the available
// space on the aligned axes the constraints expand.
func (a Aligned) Layout(gtx Context) frame.Frame {
	cs := gtx.Constraints
	ccs := cs
	if a.Align.HasX {
		ccs.Expand.X = false
	}
	if a.Align.HasY {
		ccs.Expand.Y = false
	}
	f := ctxLayout(gtx, ccs, a.Child)
	sz := f.Size()
	target := sz
	var off geom.Point
	if cs.Expand.X && cs.Max.X.IsFinite() {
		target.X = cs.Max.X
	}
	if cs.Expand.Y && cs.Max.Y.IsFinite() {
		target.Y = cs.Max.Y
	}
	if x, ok := a.Align.On(Horizontal); ok {
		off.X = x.offset(target.X, sz.X)
	}
	if y, ok := a.Align.On(Vertical); ok {
		off.Y = y.offset(target.Y, sz.Y)
	}
	f.Resize(target, off)
	return f
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v unit.Rel) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Layout a child.
func (in Inset) Layout(gtx Context, w Layoutable) frame.Frame {
	cs := gtx.Constraints
	top := in.Top.Resolve(cs.Max.Y)
	bottom := in.Bottom.Resolve(cs.Max.Y)
	left := in.Left.Resolve(cs.Max.X)
	right := in.Right.Resolve(cs.Max.X)
	mcs := cs
	if mcs.Max.X.IsFinite() {
		mcs.Max.X -= left + right
		if mcs.Max.X < 0 {
			left = 0
			right = 0
			mcs.Max.X = 0
		}
	}
	if mcs.Max.Y.IsFinite() {
		mcs.Max.Y -= top + bottom
		if mcs.Max.Y < 0 {
			bottom = 0
			top = 0
			mcs.Max.Y = 0
		}
	}
	child := ctxLayout(gtx, mcs, w)
	sz := child.Size().Add(geom.Pt(left+right, top+bottom))
	f := frame.New(sz)
	f.PushFrame(geom.Pt(left, top), child)
	if child.HasBaseline() {
		f.SetBaseline(child.Baseline() + top)
	}
	return f
}

// Padded returns the child with in applied.
func (in Inset) Padded(child Layoutable) Widget {
	return func(gtx Context) frame.Frame {
		return in.Layout(gtx, child)
	}
}

// offset returns the position of an extent size within
// ref. The result is negative if size exceeds ref.
func (a Alignment) offset(ref, size unit.Abs) unit.Abs {
	switch a {
	case Middle:
		return (ref - size) / 2
	case End:
		return ref - size
	default:
		return 0
	}
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (a Align) String() string {
	switch {
	case a.HasX && a.HasY:
		return a.X.String() + "+" + a.Y.String()
	case a.HasX:
		return a.X.String() + "/x"
	case a.HasY:
		return a.Y.String() + "/y"
	default:
		return "None"
	}
}
