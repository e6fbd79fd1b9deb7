// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"context"
	"image/color"
	"math"
	"testing"

	"go.uber.org/goleak"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/unit"
)

func TestParseDir(t *testing.T) {
	for _, d := range []Dir{LTR, RTL, TTB, BTT} {
		got, err := ParseDir(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDir(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDir("diagonal"); err == nil {
		t.Error("ParseDir accepted an invalid direction")
	}
}

func TestDirAxes(t *testing.T) {
	tests := []struct {
		d           Dir
		main, cross Axis
		reversed    bool
	}{
		{LTR, Horizontal, Vertical, false},
		{RTL, Horizontal, Vertical, true},
		{TTB, Vertical, Horizontal, false},
		{BTT, Vertical, Horizontal, true},
	}
	for _, tt := range tests {
		main, cross, rev := tt.d.Axes()
		if main != tt.main || cross != tt.cross || rev != tt.reversed {
			t.Errorf("%v.Axes() = %v, %v, %v", tt.d, main, cross, rev)
		}
	}
}

func TestAlignedExpands(t *testing.T) {
	a := Aligned{Align: Align{X: End, Y: Middle, HasX: true, HasY: true}, Child: fixed(10, 10)}
	f := a.Layout(Context{Constraints: Exact(geom.Pt(100, 50))})
	if f.Size() != geom.Pt(100, 50) {
		t.Errorf("size %v, want (100,50)", f.Size())
	}
	if got := f.Items()[0].Pos; got != geom.Pt(90, 20) {
		t.Errorf("child at %v, want (90,20)", got)
	}

	// Without expansion there is nothing to align within.
	f = a.Layout(gtxOf(100, 50))
	if f.Size() != geom.Pt(10, 10) || !f.Items()[0].Pos.IsZero() {
		t.Errorf("loose aligned frame %v with child at %v", f.Size(), f.Items()[0].Pos)
	}
}

func TestAlignOr(t *testing.T) {
	got := AlignX(End).Or(Align{X: Start, Y: Middle, HasX: true, HasY: true})
	want := Align{X: End, Y: Middle, HasX: true, HasY: true}
	if got != want {
		t.Errorf("Or = %v, want %v", got, want)
	}
}

func TestInset(t *testing.T) {
	in := Inset{
		Top:    unit.Absolute(1),
		Right:  unit.Relative(unit.Percent(10)),
		Bottom: unit.Absolute(3),
		Left:   unit.Absolute(4),
	}
	var seen Constraints
	child := Widget(func(gtx Context) frame.Frame {
		seen = gtx.Constraints
		return fixed(20, 20).Layout(gtx)
	})
	f := in.Layout(gtxOf(100, 50), child)
	if want := geom.Pt(86, 46); seen.Max != want {
		t.Errorf("child constraints %v, want %v", seen.Max, want)
	}
	if f.Size() != geom.Pt(34, 24) {
		t.Errorf("size %v, want (34,24)", f.Size())
	}
	if got := f.Items()[0].Pos; got != geom.Pt(4, 1) {
		t.Errorf("child at %v, want (4,1)", got)
	}
}

func TestInsetUnbounded(t *testing.T) {
	in := UniformInset(unit.Rel{Ratio: unit.Percent(50), Abs: 2})
	f := in.Layout(Context{Constraints: Loose(geom.Pt(unit.Inf(), unit.Inf()))}, fixed(10, 10))
	if f.Size() != geom.Pt(14, 14) {
		t.Errorf("size %v, want (14,14)", f.Size())
	}
}

func TestBoxAutoSize(t *testing.T) {
	fill := color.NRGBA{R: 0xff, A: 0xff}
	b := Box{Height: unit.Relative(unit.Percent(50)), Fill: &fill, Child: fixed(15, 5)}
	f := b.Layout(gtxOf(100, 80))
	if f.Size() != geom.Pt(15, 40) {
		t.Errorf("size %v, want (15,40)", f.Size())
	}
	bg, ok := f.Items()[0].Elem.(frame.Shape)
	if !ok || bg.Fill == nil || *bg.Fill != fill || bg.Size != f.Size() {
		t.Errorf("background = %#v", f.Items()[0].Elem)
	}
}

func TestTransformed(t *testing.T) {
	near := func(a, b geom.Rectangle) bool {
		d := func(x, y unit.Abs) bool { return math.Abs(float64(x-y)) < 1e-9 }
		return d(a.Min.X, b.Min.X) && d(a.Min.Y, b.Min.Y) && d(a.Max.X, b.Max.X) && d(a.Max.Y, b.Max.Y)
	}
	tests := []struct {
		name   string
		t      Transformed
		bounds geom.Rectangle
	}{
		{"scale", Transformed{ScaleX: 2, ScaleY: 2, Child: fixed(10, 10)}, geom.Rect(-5, -5, 15, 15)},
		{"scale x", Transformed{ScaleX: 3, Child: fixed(10, 10)}, geom.Rect(-10, 0, 20, 10)},
		{"rotate", Transformed{Rotation: math.Pi / 2, Child: fixed(10, 20)}, geom.Rect(-5, 5, 15, 15)},
	}
	for _, tt := range tests {
		f := tt.t.Layout(gtxOf(100, 100))
		if want := tt.t.Child.Layout(gtxOf(100, 100)).Size(); f.Size() != want {
			t.Errorf("%s: size %v, want %v", tt.name, f.Size(), want)
		}
		if f.Len() != 1 {
			t.Fatalf("%s: %d items, want a single group", tt.name, f.Len())
		}
		g, ok := f.Items()[0].Elem.(frame.Group)
		if !ok {
			t.Fatalf("%s: item is %T, want a group", tt.name, f.Items()[0].Elem)
		}
		if b := g.Transform.TransformRect(g.Frame.Bounds()); !near(b, tt.bounds) {
			t.Errorf("%s: content covers %v, want %v", tt.name, b, tt.bounds)
		}
	}
	// Without a transform the child frame is returned as is.
	f := Transformed{Child: fixed(4, 4)}.Layout(gtxOf(10, 10))
	if _, ok := f.Items()[0].Elem.(frame.Shape); !ok {
		t.Errorf("identity transform wrapped the child in %T", f.Items()[0].Elem)
	}
}

func TestLayoutAll(t *testing.T) {
	defer goleak.VerifyNone(t)
	children := []Layoutable{fixed(1, 2), fixed(3, 4), rect{w: unit.Relative(1), h: unit.Absolute(1)}}
	frames, err := LayoutAll(context.Background(), gtxOf(50, 50), children)
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 50, Y: 1}}
	for i, f := range frames {
		if f.Size() != want[i] {
			t.Errorf("frame %d size %v, want %v", i, f.Size(), want[i])
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LayoutAll(ctx, gtxOf(50, 50), children); err == nil {
		t.Error("LayoutAll with a cancelled context succeeded")
	}
}
