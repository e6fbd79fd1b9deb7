// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"fmt"
	"math"

	"gioui.org/typeset/unit"
)

// Affine2D represents an affine 2D transformation. The zero value of Affine2D
// represents the identity transform.
type Affine2D struct {
	// in order to make the zero value of Affine2D represent the identity
	// transform we store it with the identity matrix subtracted, that is
	// if the actual transformation matrix is:
	// [sx, hx, ox]
	// [hy, sy, oy]
	// [ 0,  0,  1]
	// we store a = sx-1 and e = sy-1
	a, b, c float64
	d, e, f float64
}

// NewAffine2D creates a new Affine2D transform from the matrix elements
// in row major order. The rows are: [sx, hx, ox], [hy, sy, oy], [0, 0, 1].
func NewAffine2D(sx, hx, ox, hy, sy, oy float64) Affine2D {
	return Affine2D{
		a: sx - 1, b: hx, c: ox,
		d: hy, e: sy - 1, f: oy,
	}
}

// Offset the transformation.
func (a Affine2D) Offset(offset Point) Affine2D {
	return Affine2D{
		a.a, a.b, a.c + float64(offset.X),
		a.d, a.e, a.f + float64(offset.Y),
	}
}

// Scale the transformation around the given origin.
func (a Affine2D) Scale(origin Point, sx, sy float64) Affine2D {
	if origin.IsZero() {
		return a.scale(sx, sy)
	}
	a = a.Offset(origin.Mul(-1))
	a = a.scale(sx, sy)
	return a.Offset(origin)
}

// Rotate the transformation by the given angle (in radians) counter clockwise around the given origin.
func (a Affine2D) Rotate(origin Point, radians float64) Affine2D {
	if !origin.IsZero() {
		a = a.Offset(origin.Mul(-1))
	}
	sin, cos := math.Sincos(radians)
	a = Affine2D{
		(a.a+1)*cos - a.d*sin - 1, a.b*cos - (a.e+1)*sin, a.c*cos - a.f*sin,
		(a.a+1)*sin + a.d*cos, a.b*sin + (a.e+1)*cos - 1, a.c*sin + a.f*cos,
	}
	if !origin.IsZero() {
		a = a.Offset(origin)
	}
	return a
}

// Shear the transformation by the given angle (in radians) around the given origin.
func (a Affine2D) Shear(origin Point, radiansX, radiansY float64) Affine2D {
	if !origin.IsZero() {
		a = a.Offset(origin.Mul(-1))
	}
	tx := math.Tan(radiansX)
	ty := math.Tan(radiansY)
	a = Affine2D{
		a.a + a.d*tx, a.b + (a.e+1)*tx, a.c + a.f*tx,
		(a.a+1)*ty + a.d, a.b*ty + a.e, a.c*ty + a.f,
	}
	if !origin.IsZero() {
		a = a.Offset(origin)
	}
	return a
}

// Mul returns A*B.
func (A Affine2D) Mul(B Affine2D) (r Affine2D) {
	A.a += 1
	A.e += 1
	B.a += 1
	B.e += 1
	r.a = A.a*B.a + A.b*B.d - 1
	r.b = A.a*B.b + A.b*B.e
	r.c = A.a*B.c + A.b*B.f + A.c
	r.d = A.d*B.a + A.e*B.d
	r.e = A.d*B.b + A.e*B.e - 1
	r.f = A.d*B.c + A.e*B.f + A.f
	return r
}

// Invert the transformation. Note that if the matrix is close to singular
// numerical errors may become large or infinity.
func (a Affine2D) Invert() Affine2D {
	if a.a == 0 && a.b == 0 && a.d == 0 && a.e == 0 {
		return Affine2D{a: 0, b: 0, c: -a.c, d: 0, e: 0, f: -a.f}
	}
	a.a += 1
	a.e += 1
	det := a.a*a.e - a.b*a.d
	a.a, a.e = a.e/det, a.a/det
	a.b, a.d = -a.b/det, -a.d/det
	temp := a.c
	a.c = -a.a*a.c - a.b*a.f
	a.f = -a.d*temp - a.e*a.f
	a.a -= 1
	a.e -= 1
	return a
}

// Transform p by returning a*p.
func (a Affine2D) Transform(p Point) Point {
	x, y := float64(p.X), float64(p.Y)
	return Point{
		X: unit.Abs(x*(a.a+1) + y*a.b + a.c),
		Y: unit.Abs(x*a.d + y*(a.e+1) + a.f),
	}
}

// Elems returns the matrix elements of the transform in row-major order. The
// rows are: [sx, hx, ox], [hy, sy, oy], [0, 0, 1].
func (a Affine2D) Elems() (sx, hx, ox, hy, sy, oy float64) {
	return a.a + 1, a.b, a.c, a.d, a.e + 1, a.f
}

// IsIdentity reports whether a leaves every point unchanged.
func (a Affine2D) IsIdentity() bool {
	return a == Affine2D{}
}

// TransformRect returns the bounding box of r transformed by a.
func (a Affine2D) TransformRect(r Rectangle) Rectangle {
	p0 := a.Transform(r.Min)
	b := Rectangle{Min: p0, Max: p0}
	for _, p := range []Point{Pt(r.Max.X, r.Min.Y), r.Max, Pt(r.Min.X, r.Max.Y)} {
		q := a.Transform(p)
		b.Min.X = b.Min.X.Min(q.X)
		b.Min.Y = b.Min.Y.Min(q.Y)
		b.Max.X = b.Max.X.Max(q.X)
		b.Max.Y = b.Max.Y.Max(q.Y)
	}
	return b
}

func (a Affine2D) scale(sx, sy float64) Affine2D {
	return Affine2D{
		(a.a+1)*sx - 1, a.b * sx, a.c * sx,
		a.d * sy, (a.e+1)*sy - 1, a.f * sy,
	}
}

func (a Affine2D) String() string {
	sx, hx, ox, hy, sy, oy := a.Elems()
	return fmt.Sprintf("[[%f %f %f] [%f %f %f]]", sx, hx, ox, hy, sy, oy)
}
