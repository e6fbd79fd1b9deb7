// SPDX-License-Identifier: Unlicense OR MIT

/*
Package frame implements finished layouts: frames of elements at fixed
positions.

A Frame has a size, an optional baseline and an ordered list of
positioned elements, back to front. Layouts build frames and compose
them by pushing child frames at offsets; small child frames are
inlined into their parent, larger ones are kept as groups.

Like slices, copies of a Frame share element storage. Push appends
to it; the other methods that change elements build new storage, so
a frame pushed into several parents, or kept in a placement, is
never changed behind its back.
*/
package frame

import (
	"image"
	"image/color"
	"strings"

	"gioui.org/typeset/font"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/unit"
)

// Frame is a finished layout with elements at fixed positions.
type Frame struct {
	size geom.Point
	// baseline from the top, if hasBaseline.
	baseline    unit.Abs
	hasBaseline bool
	items       []Item
}

// Item is an element at a position relative to the top-left corner
// of its frame.
type Item struct {
	Pos  geom.Point
	Elem Element
}

// Element is the building block of frames. It is one of Group,
// Shape, Text or Image.
type Element interface {
	isElement()
}

// Group is a nested frame with an optional transform and
// clipping.
type Group struct {
	Frame     Frame
	Transform geom.Affine2D
	// Clips marks the frame's bounds as a clipping boundary.
	Clips bool
}

// Shape is a rectangle with optional fill and stroke.
type Shape struct {
	Size   geom.Point
	Fill   *color.NRGBA
	Stroke *Stroke
}

// Stroke describes the outline of a Shape.
type Stroke struct {
	Color     color.NRGBA
	Thickness unit.Abs
}

// Text is a run of shaped text. The item position is the start of
// the baseline.
type Text struct {
	Font font.Font
	// Face is the face the glyph IDs index.
	Face font.Face
	// Size is the font size.
	Size unit.Abs
	Fill color.NRGBA
	// Glyphs are positioned relative to the start of the run.
	Glyphs []Glyph
	// Advance is the width of the run.
	Advance unit.Abs
	// Ascent and Descent extend the run above and below the
	// baseline.
	Ascent, Descent unit.Abs
	// Runes holds the source text of the run.
	Runes string
}

// Glyph is a glyph in a run of text.
type Glyph struct {
	ID uint32
	X  unit.Abs
}

// Image is a raster image scaled to Size.
type Image struct {
	Src  image.Image
	Size geom.Point
}

func (Group) isElement() {}
func (Shape) isElement() {}
func (Text) isElement()  {}
func (Image) isElement() {}

// maxInline is the largest element count of a frame inlined into
// a non-empty parent.
const maxInline = 5

// New returns an empty frame. It panics if size is not finite.
func New(size geom.Point) Frame {
	if !size.IsFinite() {
		panic("frame: size is not finite")
	}
	return Frame{size: size}
}

// Size returns the size of the frame.
func (f Frame) Size() geom.Point {
	return f.size
}

// Width returns the width of the frame.
func (f Frame) Width() unit.Abs {
	return f.size.X
}

// Height returns the height of the frame.
func (f Frame) Height() unit.Abs {
	return f.size.Y
}

// SetSize sets the size of the frame without moving its
// contents.
func (f *Frame) SetSize(size geom.Point) {
	f.size = size
}

// Baseline returns the baseline measured from the top. Without
// an explicit baseline it is the bottom of the frame.
func (f Frame) Baseline() unit.Abs {
	if !f.hasBaseline {
		return f.size.Y
	}
	return f.baseline
}

// HasBaseline reports whether a baseline was set.
func (f Frame) HasBaseline() bool {
	return f.hasBaseline
}

// SetBaseline sets the baseline measured from the top.
func (f *Frame) SetBaseline(b unit.Abs) {
	f.baseline = b
	f.hasBaseline = true
}

// Len returns the number of elements. It is also the layer the
// next pushed element is added on.
func (f Frame) Len() int {
	return len(f.items)
}

// IsEmpty reports whether f contains no elements.
func (f Frame) IsEmpty() bool {
	return f.Len() == 0
}

// Items returns the elements of f, back to front. The slice must
// not be modified.
func (f Frame) Items() []Item {
	return f.items
}

// Push adds an element at a position in the foreground.
func (f *Frame) Push(pos geom.Point, e Element) {
	f.items = append(f.items, Item{Pos: pos, Elem: e})
}

// PushFrame adds a frame at a position in the foreground. Small
// frames are inlined, larger ones become a Group.
func (f *Frame) PushFrame(pos geom.Point, child Frame) {
	if f.shouldInline(child) {
		f.inline(f.Len(), pos, child)
	} else {
		f.Push(pos, Group{Frame: child})
	}
}

// Prepend adds an element at a position in the background.
func (f *Frame) Prepend(pos geom.Point, e Element) {
	f.insert(0, pos, e)
}

// insert adds an element on the given layer. It panics if the layer
// is greater than Len.
func (f *Frame) insert(layer int, pos geom.Point, e Element) {
	if layer > f.Len() {
		panic("frame: layer out of range")
	}
	f.splice(layer, []Item{{Pos: pos, Elem: e}})
}

// Translate moves the contents and the baseline of f by offset.
func (f *Frame) Translate(offset geom.Point) {
	if offset.IsZero() {
		return
	}
	if f.hasBaseline {
		f.baseline += offset.Y
	}
	if f.Len() == 0 {
		return
	}
	moved := make([]Item, len(f.items))
	for i, it := range f.items {
		moved[i] = Item{Pos: it.Pos.Add(offset), Elem: it.Elem}
	}
	f.items = moved
}

// Resize sets the size of f to target and moves its contents by
// offset, typically the aligned position of the old size within
// target.
func (f *Frame) Resize(target, offset geom.Point) {
	if f.size == target {
		return
	}
	f.size = target
	f.Translate(offset)
}

// Clip makes the bounds of f a clipping boundary for its contents.
func (f *Frame) Clip() {
	f.group(func(g *Group) { g.Clips = true })
}

// Transform applies t to the contents of f.
func (f *Frame) Transform(t geom.Affine2D) {
	f.group(func(g *Group) { g.Transform = t })
}

// Text recovers the text in f and its groups.
func (f Frame) Text() string {
	var b strings.Builder
	f.text(&b)
	return b.String()
}

func (f Frame) text(b *strings.Builder) {
	for _, it := range f.Items() {
		switch e := it.Elem.(type) {
		case Text:
			b.WriteString(e.Runes)
		case Group:
			e.Frame.text(b)
		}
	}
}

// Bounds returns the union of f's own area and the area covered by
// its elements. Clipping groups do not extend beyond their frame.
func (f Frame) Bounds() geom.Rectangle {
	b := geom.Rectangle{Max: f.size}
	for _, it := range f.Items() {
		var r geom.Rectangle
		switch e := it.Elem.(type) {
		case Group:
			inner := e.Frame.Bounds()
			if e.Clips {
				inner = inner.Intersect(geom.Rectangle{Max: e.Frame.size})
			}
			r = e.Transform.TransformRect(inner)
		case Shape:
			r = geom.Rectangle{Max: e.Size}.Canon()
		case Image:
			r = geom.Rectangle{Max: e.Size}
		case Text:
			r = geom.Rect(0, -e.Ascent, e.Advance, e.Descent)
		}
		b = b.Union(r.Add(it.Pos))
	}
	return b
}

// group wraps the contents of f in a Group and modifies the
// group with fn.
func (f *Frame) group(fn func(g *Group)) {
	wrapper := Frame{size: f.size, baseline: f.baseline, hasBaseline: f.hasBaseline}
	g := Group{Frame: *f}
	fn(&g)
	wrapper.Push(geom.Point{}, g)
	*f = wrapper
}

func (f *Frame) shouldInline(child Frame) bool {
	return f.IsEmpty() || child.Len() <= maxInline
}

// inline splices the elements of child into f at layer.
func (f *Frame) inline(layer int, pos geom.Point, child Frame) {
	if child.Len() == 0 {
		return
	}
	if pos.IsZero() && f.IsEmpty() {
		f.items = child.items[:len(child.items):len(child.items)]
		return
	}
	moved := make([]Item, len(child.items))
	for i, it := range child.items {
		moved[i] = Item{Pos: it.Pos.Add(pos), Elem: it.Elem}
	}
	f.splice(layer, moved)
}

// splice replaces the elements of f with a copy that has items
// inserted at layer.
func (f *Frame) splice(layer int, items []Item) {
	l := make([]Item, 0, len(f.items)+len(items))
	l = append(l, f.items[:layer]...)
	l = append(l, items...)
	l = append(l, f.items[layer:]...)
	f.items = l
}
