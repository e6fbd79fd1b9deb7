// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/unit"
)

var ignoreFrames = cmpopts.IgnoreFields(Placement{}, "Frame")

func TestStackMainSizeIsSum(t *testing.T) {
	gap := Gap(unit.Absolute(3))
	for _, dir := range []Dir{LTR, RTL, TTB, BTT} {
		t.Run(dir.String(), func(t *testing.T) {
			s := Stack{
				Dir:     dir,
				Spacing: &gap,
				Children: []StackChild{
					Stacked(fixed(10, 5)),
					Stacked(fixed(20, 6)),
					Spaced(Gap(unit.Absolute(4))),
					Stacked(fixed(30, 7)),
				},
			}
			arr := s.Arrange(gtxOf(100, 100))
			main, _, _ := dir.Axes()
			want := unit.Abs(3 + 4)
			for _, p := range arr.Placements {
				want += p.Main
			}
			if got := axisMain(main, arr.Size); got != want {
				t.Errorf("main size %v, want %v", got, want)
			}
		})
	}
}

func TestStackMirror(t *testing.T) {
	children := []StackChild{
		Stacked(fixed(10, 10)),
		Spaced(Gap(unit.Absolute(7))),
		Stacked(fixed(20, 15)),
		Stacked(fixed(5, 30)),
	}
	gap := Gap(unit.Absolute(2))
	for _, dirs := range [][2]Dir{{LTR, RTL}, {TTB, BTT}} {
		fwd := Stack{Dir: dirs[0], Spacing: &gap, Children: children}.Arrange(gtxOf(200, 200))
		rev := Stack{Dir: dirs[1], Spacing: &gap, Children: children}.Arrange(gtxOf(200, 200))
		if fwd.Size != rev.Size {
			t.Fatalf("%v/%v: sizes differ: %v, %v", dirs[0], dirs[1], fwd.Size, rev.Size)
		}
		main := dirs[0].Axis()
		total := axisMain(main, fwd.Size)
		for i := range fwd.Placements {
			f, r := fwd.Placements[i], rev.Placements[i]
			if f.Index != r.Index {
				t.Errorf("%v: placement %d index %d, mirrored %d", dirs[1], i, f.Index, r.Index)
			}
			want := total - axisMain(main, f.Offset) - f.Main
			if got := axisMain(main, r.Offset); got != want {
				t.Errorf("%v: child %d at %v, want %v", dirs[1], f.Index, got, want)
			}
		}
	}
}

func TestStackFullChildUsesAvailable(t *testing.T) {
	s := Stack{
		Dir: LTR,
		Children: []StackChild{
			Stacked(fixed(20, 10)),
			Stacked(rect{w: unit.Relative(1), h: unit.Absolute(10)}),
		},
	}
	arr := s.Arrange(gtxOf(100, 50))
	if got := arr.Placements[1].Main; got != 100 {
		t.Errorf("100%% child is %v wide, want 100", got)
	}
	if got := arr.Size.X; got != 120 {
		t.Errorf("stack width %v, want 120", got)
	}
}

func TestStackIdempotent(t *testing.T) {
	gap := Gap(unit.Rel{Ratio: unit.Percent(5), Abs: 1})
	s := Stack{
		Dir:     BTT,
		Spacing: &gap,
		Children: []StackChild{
			Stacked(Aligned{Align: AlignX(Middle), Child: fixed(10, 10)}),
			Spaced(FrGap(1)),
			Stacked(rect{w: unit.Relative(unit.Percent(50)), h: unit.Absolute(5)}),
		},
	}
	gtx := gtxOf(80, 90)
	first, second := s.Arrange(gtx), s.Arrange(gtx)
	if diff := cmp.Diff(first, second, ignoreFrames); diff != "" {
		t.Errorf("second arrangement differs (-first +second):\n%s", diff)
	}
}

func TestStackEntries(t *testing.T) {
	gap := Gap(unit.Absolute(5))
	s := Stack{
		Spacing: &gap,
		Children: []StackChild{
			Stacked(fixed(1, 1)),
			Stacked(fixed(1, 1)),
			Spaced(Gap(unit.Absolute(9))),
			Stacked(fixed(1, 1)),
			Stacked(Aligned{Align: AlignY(End), Child: fixed(1, 1)}),
		},
	}
	type entry struct {
		Kind      EntryKind
		Index     int
		Synthetic bool
		Gap       unit.Abs
	}
	var got []entry
	for _, e := range s.Entries() {
		got = append(got, entry{e.Kind, e.Index, e.Synthetic, e.Spacing.Rel.Abs})
	}
	want := []entry{
		{EntryChild, 0, false, 0},
		{EntrySpacing, -1, true, 5},
		{EntryChild, 1, false, 0},
		{EntrySpacing, 2, false, 9},
		{EntryChild, 3, false, 0},
		{EntrySpacing, -1, true, 5},
		{EntryChild, 4, false, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	last := s.Entries()[6]
	if a, ok := last.Align.On(Vertical); !ok || a != End {
		t.Errorf("lifted alignment = %v", last.Align)
	}
	if _, ok := last.Child.(Aligned); ok {
		t.Error("Aligned wrapper was not removed")
	}
}

func TestStackNoSpacingWithoutDefault(t *testing.T) {
	s := Stack{Children: []StackChild{Stacked(fixed(1, 1)), Stacked(fixed(1, 1))}}
	if n := len(s.Entries()); n != 2 {
		t.Errorf("got %d entries, want 2", n)
	}
}

func TestStackBottomToTop(t *testing.T) {
	widths := []unit.Rel{
		unit.Absolute(30),
		unit.Absolute(20),
		unit.Absolute(40),
		unit.Absolute(15),
		unit.Absolute(30),
		unit.Relative(unit.Percent(50)),
		unit.Absolute(20),
		unit.Relative(1),
	}
	var children []StackChild
	for _, w := range widths {
		children = append(children, Stacked(Aligned{
			Align: AlignX(End),
			Child: rect{w: w, h: unit.Absolute(5)},
		}))
	}
	arr := Stack{Dir: BTT, Children: children}.Arrange(gtxOf(50, 50))
	if got, want := arr.Size, geom.Pt(50, 40); got != want {
		t.Errorf("size %v, want %v", got, want)
	}
	var want []Placement
	for i, w := range widths {
		width := w.Resolve(50)
		want = append(want, Placement{
			Index:  i,
			Offset: geom.Pt(50-width, unit.Abs(5*(len(widths)-1-i))),
			Main:   5,
			Cross:  width,
		})
	}
	if diff := cmp.Diff(want, arr.Placements, ignoreFrames); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestStackRightToLeft(t *testing.T) {
	gap := Gap(unit.Absolute(5))
	s := Stack{
		Dir:      RTL,
		Spacing:  &gap,
		Children: []StackChild{Stacked(fixed(10, 10)), Stacked(fixed(10, 10)), Stacked(fixed(10, 10))},
	}
	arr := s.Arrange(gtxOf(100, 100))
	var offsets []unit.Abs
	for _, p := range arr.Placements {
		offsets = append(offsets, p.Offset.X)
	}
	if diff := cmp.Diff([]unit.Abs{30, 15, 0}, offsets); diff != "" {
		t.Errorf("offsets in logical order (-want +got):\n%s", diff)
	}
	if arr.Size != geom.Pt(40, 10) {
		t.Errorf("size %v, want (40,10)", arr.Size)
	}
}

func TestBoxClipsOverflowingStack(t *testing.T) {
	s := Stack{
		Dir:      TTB,
		Children: []StackChild{Stacked(fixed(20, 11)), Stacked(fixed(20, 11)), Stacked(fixed(20, 11))},
	}
	box := Box{Width: unit.Absolute(50), Height: unit.Absolute(30), Clip: true, Child: s}
	gtx := gtxOf(100, 100)

	inner := s.Arrange(Context{Constraints: Exact(geom.Pt(50, 30))})
	if inner.Size.Y != 33 {
		t.Errorf("stack height %v, want 33", inner.Size.Y)
	}
	f := box.Layout(gtx)
	if f.Size() != geom.Pt(50, 30) {
		t.Errorf("box size %v, want (50,30)", f.Size())
	}
	items := f.Items()
	if len(items) != 1 {
		t.Fatalf("box has %d items, want a single clip group", len(items))
	}
	g, ok := items[0].Elem.(frame.Group)
	if !ok || !g.Clips {
		t.Fatalf("box item is %#v, want a clipping group", items[0].Elem)
	}
	if got := f.Bounds(); got != geom.Rect(0, 0, 50, 30) {
		t.Errorf("visible bounds %v, want the box", got)
	}
}

func TestStackOverflowIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gtx := gtxOf(100, 50)
	gtx.Log = zap.New(core)
	s := Stack{
		Dir:      TTB,
		Children: []StackChild{Stacked(fixed(10, 20)), Stacked(fixed(10, 20)), Stacked(fixed(10, 20))},
	}
	arr := s.Arrange(gtx)
	if arr.Size.Y != 60 {
		t.Errorf("height %v, want the untruncated 60", arr.Size.Y)
	}
	if got := arr.Placements[2].Offset.Y; got != 40 {
		t.Errorf("last child at %v, want 40", got)
	}
	entries := logs.FilterMessage("stack overflows").All()
	if len(entries) != 1 {
		t.Fatalf("got %d overflow records, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["size"]; got != 60.0 {
		t.Errorf("logged size %v, want 60", got)
	}

	s.Children = s.Children[:2]
	s.Arrange(gtx)
	if n := logs.FilterMessage("stack overflows").Len(); n != 1 {
		t.Errorf("fitting stack logged overflow, %d records", n)
	}
}

func TestStackFractionalSpacing(t *testing.T) {
	s := Stack{
		Dir: LTR,
		Children: []StackChild{
			Stacked(fixed(10, 10)),
			Spaced(FrGap(1)),
			Stacked(fixed(10, 10)),
			Spaced(FrGap(3)),
			Stacked(fixed(10, 10)),
		},
	}
	arr := s.Arrange(gtxOf(100, 100))
	var offsets []unit.Abs
	for _, p := range arr.Placements {
		offsets = append(offsets, p.Offset.X)
	}
	if diff := cmp.Diff([]unit.Abs{0, 27.5, 90}, offsets); diff != "" {
		t.Errorf("offsets (-want +got):\n%s", diff)
	}
	if arr.Size.X != 100 {
		t.Errorf("width %v, want 100", arr.Size.X)
	}

	// Nothing to share when unbounded.
	arr = s.Arrange(Context{Constraints: Loose(geom.Pt(unit.Inf(), 100))})
	if arr.Size.X != 30 {
		t.Errorf("unbounded width %v, want 30", arr.Size.X)
	}
}

func TestStackRelativeSpacingUnbounded(t *testing.T) {
	gap := Gap(unit.Rel{Ratio: unit.Percent(50), Abs: 2})
	s := Stack{
		Dir:      TTB,
		Spacing:  &gap,
		Children: []StackChild{Stacked(fixed(10, 10)), Stacked(fixed(10, 10))},
	}
	arr := s.Arrange(Context{Constraints: Loose(geom.Pt(100, unit.Inf()))})
	if arr.Size.Y != 22 {
		t.Errorf("height %v, want 22", arr.Size.Y)
	}
	arr = s.Arrange(gtxOf(100, 100))
	if arr.Size.Y != 72 {
		t.Errorf("height %v, want 72", arr.Size.Y)
	}
}

func TestStackCrossAlignment(t *testing.T) {
	tests := map[string]struct {
		cs      Constraints
		align   Align
		offset  unit.Abs
		crossSz unit.Abs
	}{
		"default start": {
			cs:      Loose(geom.Pt(100, 100)),
			offset:  0,
			crossSz: 30,
		},
		"middle of available": {
			cs:      Loose(geom.Pt(100, 100)),
			align:   AlignX(Middle),
			offset:  45,
			crossSz: 55,
		},
		"middle of widest when unbounded": {
			cs:      Loose(geom.Pt(unit.Inf(), 100)),
			align:   AlignX(Middle),
			offset:  10,
			crossSz: 30,
		},
		"end": {
			cs:      Loose(geom.Pt(100, 100)),
			align:   AlignX(End),
			offset:  90,
			crossSz: 100,
		},
		"main axis alignment ignored": {
			cs:      Loose(geom.Pt(100, 100)),
			align:   AlignY(End),
			offset:  0,
			crossSz: 30,
		},
		"expanded cross axis": {
			cs:      Constraints{Max: geom.Pt(100, 100), Expand: Expand{X: true}},
			offset:  0,
			crossSz: 100,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Stack{
				Dir: TTB,
				Children: []StackChild{
					Stacked(Aligned{Align: tt.align, Child: fixed(10, 10)}),
					Stacked(fixed(30, 10)),
				},
			}
			arr := s.Arrange(Context{Constraints: tt.cs})
			if got := arr.Placements[0].Offset.X; got != tt.offset {
				t.Errorf("cross offset %v, want %v", got, tt.offset)
			}
			if got := arr.Size.X; got != tt.crossSz {
				t.Errorf("cross size %v, want %v", got, tt.crossSz)
			}
		})
	}
}

func TestStackWiderThanAvailable(t *testing.T) {
	s := Stack{
		Dir:      TTB,
		Children: []StackChild{Stacked(Aligned{Align: AlignX(End), Child: fixed(80, 10)})},
	}
	arr := s.Arrange(gtxOf(50, 50))
	if got := arr.Placements[0].Offset.X; got != -30 {
		t.Errorf("offset %v, want -30", got)
	}
}

func TestStackEmpty(t *testing.T) {
	s := Stack{Dir: LTR}
	if arr := s.Arrange(gtxOf(10, 20)); arr.Size != (geom.Point{}) || len(arr.Placements) != 0 {
		t.Errorf("empty stack = %+v", arr)
	}
	gtx := Context{Constraints: Exact(geom.Pt(10, 20))}
	if got := s.Arrange(gtx).Size; got != geom.Pt(0, 20) {
		t.Errorf("empty expanded stack size %v, want (0,20)", got)
	}
}

func TestStackLayoutFrame(t *testing.T) {
	s := Stack{
		Dir:      RTL,
		Children: []StackChild{Stacked(fixed(10, 10)), Stacked(fixed(20, 5))},
	}
	f := s.Layout(gtxOf(100, 100))
	if f.Size() != geom.Pt(30, 10) {
		t.Errorf("frame size %v", f.Size())
	}
	var pos []geom.Point
	for _, it := range f.Items() {
		pos = append(pos, it.Pos)
	}
	if diff := cmp.Diff([]geom.Point{{X: 20}, {}}, pos); diff != "" {
		t.Errorf("element positions (-want +got):\n%s", diff)
	}
}

func BenchmarkStack(b *testing.B) {
	gap := Gap(unit.Absolute(4))
	var children []StackChild
	for i := 0; i < 20; i++ {
		children = append(children, Stacked(fixed(10, 10)))
	}
	s := Stack{Dir: BTT, Spacing: &gap, Children: children}
	gtx := gtxOf(100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Layout(gtx)
	}
}
