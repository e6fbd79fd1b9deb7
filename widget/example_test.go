// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"fmt"
	"image"

	"gioui.org/typeset/geom"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/unit"
	"gioui.org/typeset/widget"
)

func ExampleImage() {
	gtx := layout.Context{
		Constraints: layout.Loose(geom.Pt(unit.Inf(), unit.Inf())),
	}
	img := widget.Image{
		Src:   image.NewNRGBA(image.Rect(0, 0, 400, 200)),
		Width: unit.Absolute(80),
		Fit:   widget.Cover,
	}
	fmt.Println(img.Layout(gtx).Size())

	// Output:
	// (80,40)
}
