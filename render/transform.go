// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"gioui.org/typeset/geom"
)

// setTransform replaces the matrix of dc with t. It reports false
// for singular transforms, which draw nothing.
//
// gg only offers relative transform operations, so t is decomposed
// into a translation, rotation, horizontal shear and scale, applied
// in that order.
func setTransform(dc *gg.Context, t geom.Affine2D) bool {
	a, c, e, b, d, f := t.Elems()
	det := a*d - b*c
	sx := math.Hypot(a, b)
	if det == 0 || sx == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return false
	}
	sy := det / sx
	shear := (a*c + b*d) / det
	dc.Identity()
	dc.Translate(e, f)
	if rot := math.Atan2(b, a); rot != 0 {
		dc.Rotate(rot)
	}
	if shear != 0 {
		dc.Shear(shear, 0)
	}
	dc.Scale(sx, sy)
	return true
}

// lineScale returns the factor t scales lengths by on average.
func lineScale(t geom.Affine2D) float64 {
	a, c, _, b, d, _ := t.Elems()
	return math.Sqrt(math.Abs(a*d - b*c))
}

// clipMask returns the coverage of the rectangle r under t, limited
// to parent if not nil.
func clipMask(w, h int, t geom.Affine2D, r geom.Rectangle, parent *image.Alpha) *image.Alpha {
	tmp := gg.NewContext(w, h)
	if setTransform(tmp, t) {
		r = r.Canon()
		tmp.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		tmp.SetRGB(0, 0, 0)
		tmp.Fill()
	}
	mask := tmp.AsMask()
	if parent != nil {
		for i, p := range parent.Pix {
			mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(p) / 0xff)
		}
	}
	return mask
}
