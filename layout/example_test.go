// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/unit"
)

func ExampleStack() {
	gtx := layout.Context{
		Constraints: layout.Loose(geom.Pt(100, 100)),
	}
	gap := layout.Gap(unit.Absolute(5))

	arr := layout.Stack{
		Dir:     layout.BTT,
		Spacing: &gap,
		Children: []layout.StackChild{
			layout.Stacked(layoutWidget(30, 10)),
			layout.Stacked(layout.Aligned{
				Align: layout.AlignX(layout.End),
				Child: layoutWidget(20, 10),
			}),
		},
	}.Arrange(gtx)

	fmt.Println(arr.Size)
	for _, p := range arr.Placements {
		fmt.Println(p.Index, p.Offset)
	}

	// Output:
	// (100,25)
	// 0 (0,15)
	// 1 (80,0)
}

func ExampleInset() {
	gtx := layout.Context{
		Constraints: layout.Loose(geom.Pt(100, 100)),
	}

	// Inset all edges by 10.
	inset := layout.UniformInset(unit.Absolute(10))
	f := inset.Layout(gtx, layout.Widget(func(gtx layout.Context) frame.Frame {
		// Lay out a 50x50 sized widget.
		f := layoutWidget(50, 50).Layout(gtx)
		fmt.Println(f.Size())
		return f
	}))

	fmt.Println(f.Size())

	// Output:
	// (50,50)
	// (70,70)
}

func layoutWidget(width, height unit.Abs) layout.Widget {
	return func(gtx layout.Context) frame.Frame {
		return frame.New(geom.Pt(width, height))
	}
}
