// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/unit"
)

// Stack lays out child elements one after another along a direction,
// with spacing between them.
//
// Children are measured against the full available extent, so a
// relative child size never depends on its siblings. A stack that
// does not fit reports its true size; clipping is left to an
// enclosing Box.
type Stack struct {
	// Dir is the direction children are stacked in.
	Dir Dir
	// Spacing, if set, separates adjacent children that have no
	// explicit spacing between them.
	Spacing *Spacing
	// Children are the stacked content and explicit gaps, in
	// logical order.
	Children []StackChild
}

// StackChild is the descriptor for a Stack child: content or an
// explicit gap.
type StackChild struct {
	spacing *Spacing
	widget  Layoutable
}

// EntryKind distinguishes the entries of a stack.
type EntryKind uint8

const (
	EntryChild EntryKind = iota
	EntrySpacing
)

// Entry is a normalised stack child.
type Entry struct {
	Kind EntryKind
	// Index is the position in Stack.Children, or -1 for
	// inserted spacing.
	Index int
	// Child is the content with any Aligned wrapper removed.
	Child Layoutable
	// Align is the alignment lifted from the wrapper.
	Align   Align
	Spacing Spacing
	// Synthetic marks spacing inserted from Stack.Spacing.
	Synthetic bool
}

// Placement is the position of a child within a stack.
type Placement struct {
	// Index is the position in Stack.Children.
	Index int
	// Offset is the top-left corner relative to the stack.
	Offset geom.Point
	// Main and Cross are the child extents along the stack axes.
	Main, Cross unit.Abs
	Frame       frame.Frame
}

// Arrangement is the result of arranging a stack.
type Arrangement struct {
	Size geom.Point
	// Placements has one element per content child, in logical
	// order.
	Placements []Placement
}

// Stacked returns a Stack child of content.
func Stacked(w Layoutable) StackChild {
	return StackChild{widget: w}
}

// Spaced returns a Stack child that is an explicit gap.
func Spaced(s Spacing) StackChild {
	return StackChild{spacing: &s}
}

// Entries returns the normalised children of s, with the default
// spacing inserted between adjacent content.
func (s Stack) Entries() []Entry {
	entries := make([]Entry, 0, 2*len(s.Children))
	for i, c := range s.Children {
		if c.spacing != nil {
			entries = append(entries, Entry{Kind: EntrySpacing, Index: i, Spacing: *c.spacing})
			continue
		}
		if s.Spacing != nil && len(entries) > 0 && entries[len(entries)-1].Kind == EntryChild {
			entries = append(entries, Entry{Kind: EntrySpacing, Index: -1, Spacing: *s.Spacing, Synthetic: true})
		}
		child, align := unwrap(c.widget)
		entries = append(entries, Entry{Kind: EntryChild, Index: i, Child: child, Align: align})
	}
	return entries
}

// unwrap removes Aligned wrappers from w. Inner alignments apply
// on the axes the outer ones leave unset.
func unwrap(w Layoutable) (Layoutable, Align) {
	var align Align
	for {
		switch a := w.(type) {
		case Aligned:
			align = align.Or(a.Align)
			w = a.Child
		case *Aligned:
			align = align.Or(a.Align)
			w = a.Child
		default:
			return w, align
		}
	}
}

// Arrange measures and places the children of s.
func (s Stack) Arrange(gtx Context) Arrangement {
	mainAxis, crossAxis, reversed := s.Dir.Axes()
	entries := s.Entries()
	cs := gtx.Constraints
	availMain := axisMain(mainAxis, cs.Max)
	availCross := axisCross(mainAxis, cs.Max)

	type measured struct {
		frame frame.Frame
		gap   unit.Abs
	}
	ms := make([]measured, len(entries))
	// Children see the whole available extent.
	ccs := Loose(cs.Max)
	var (
		used     unit.Abs
		frTotal  unit.Fr
		maxCross unit.Abs
		children int
	)
	// Measure.
	for i, e := range entries {
		switch e.Kind {
		case EntrySpacing:
			g := e.Spacing.Rel.Resolve(availMain)
			ms[i].gap = g
			used += g
			if e.Spacing.Fr > 0 {
				frTotal += e.Spacing.Fr
			}
		case EntryChild:
			f := ctxLayout(gtx, ccs, e.Child)
			ms[i].frame = f
			used += axisMain(mainAxis, f.Size())
			maxCross = maxCross.Max(axisCross(mainAxis, f.Size()))
			children++
		}
	}
	remaining := availMain - used
	for i, e := range entries {
		if e.Kind == EntrySpacing {
			ms[i].gap += e.Spacing.Fr.Share(frTotal, remaining)
		}
	}
	crossRef := availCross
	if !crossRef.IsFinite() {
		crossRef = maxCross
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	if reversed {
		slices.Reverse(order)
	}
	// Place.
	placements := make([]Placement, 0, children)
	var cursor, crossSize unit.Abs
	for _, i := range order {
		e := entries[i]
		if e.Kind == EntrySpacing {
			cursor += ms[i].gap
			continue
		}
		f := ms[i].frame
		main, cross := axisMain(mainAxis, f.Size()), axisCross(mainAxis, f.Size())
		align, ok := e.Align.On(crossAxis)
		if !ok {
			align = s.Dir.CrossDefault()
		}
		off := align.offset(crossRef, cross)
		placements = append(placements, Placement{
			Index:  e.Index,
			Offset: axisPoint(mainAxis, cursor, off),
			Main:   main,
			Cross:  cross,
			Frame:  f,
		})
		crossSize = crossSize.Max(off + cross)
		cursor += main
	}
	if reversed {
		slices.Reverse(placements)
	}
	if cs.Expand.On(crossAxis) && availCross.IsFinite() {
		crossSize = availCross
	}
	if availMain.IsFinite() && cursor > availMain {
		gtx.Logger().Debug("stack overflows",
			zap.Stringer("dir", s.Dir),
			zap.Float64("size", cursor.Points()),
			zap.Float64("available", availMain.Points()),
		)
	}
	return Arrangement{
		Size:       axisPoint(mainAxis, cursor, crossSize),
		Placements: placements,
	}
}

// Layout arranges the children of s and composes them into a frame.
func (s Stack) Layout(gtx Context) frame.Frame {
	arr := s.Arrange(gtx)
	f := frame.New(arr.Size)
	for _, p := range arr.Placements {
		f.PushFrame(p.Offset, p.Frame)
	}
	return f
}
