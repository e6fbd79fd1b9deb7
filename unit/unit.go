// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements typographic lengths and the resolution of
relative lengths against a reference extent.

Abs is an absolute length in points (1/72 inch). All layout happens
in Abs; the other units are converted on entry.

A Ratio is a fraction of a reference extent, and a Rel combines a
Ratio with an absolute offset. Resolving a Rel against an unbounded
(infinite) reference is indeterminate; the ratio part then
contributes nothing.

An Fr is a fractional share of whatever space is left after all
other lengths along an axis are resolved.

Value is a number with a unit attached, as written by a user. A
Converter, typically a Metric, turns Values into Abs.

*/
package unit

import (
	"fmt"
	"math"
	"strconv"
)

// Abs is an absolute length in points.
type Abs float64

// Ratio is a fraction of a reference length. 1 is 100%.
type Ratio float64

// Rel is a length relative to a reference: Ratio of the
// reference plus Abs.
type Rel struct {
	Ratio Ratio
	Abs   Abs
}

// Fr is a fraction of the remaining space.
type Fr float64

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

// Converter converts Values to absolute lengths.
type Converter interface {
	Abs(v Value) Abs
}

// Metric converts Values to absolute lengths. FontSize is the
// size of an em; a zero FontSize means the default of 11pt.
type Metric struct {
	FontSize Abs
}

const (
	// UnitPt is the typographic point, 1/72 inch.
	UnitPt Unit = iota
	// UnitMm is a millimetre.
	UnitMm
	// UnitCm is a centimetre.
	UnitCm
	// UnitIn is an inch.
	UnitIn
	// UnitEm is relative to the current font size.
	UnitEm
)

// DefaultFontSize is the em size used by a zero Metric.
const DefaultFontSize = Abs(11)

const (
	ptPerIn = 72
	ptPerCm = 72 / 2.54
	ptPerMm = 72 / 25.4
)

// Pt returns the length of v points.
func Pt(v float64) Abs {
	return Abs(v)
}

// Mm returns the length of v millimetres.
func Mm(v float64) Abs {
	return Abs(v * ptPerMm)
}

// Cm returns the length of v centimetres.
func Cm(v float64) Abs {
	return Abs(v * ptPerCm)
}

// In returns the length of v inches.
func In(v float64) Abs {
	return Abs(v * ptPerIn)
}

// Inf returns the infinite length, used for unbounded extents.
func Inf() Abs {
	return Abs(math.Inf(1))
}

// IsFinite reports whether a is neither infinite nor NaN.
func (a Abs) IsFinite() bool {
	f := float64(a)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Max returns the larger of a and b.
func (a Abs) Max(b Abs) Abs {
	if b > a {
		return b
	}
	return a
}

// Min returns the smaller of a and b.
func (a Abs) Min(b Abs) Abs {
	if b < a {
		return b
	}
	return a
}

// Points returns a as a float64 number of points.
func (a Abs) Points() float64 {
	return float64(a)
}

func (a Abs) String() string {
	if !a.IsFinite() {
		return strconv.FormatFloat(float64(a), 'g', -1, 64)
	}
	return strconv.FormatFloat(float64(a), 'g', 6, 64) + "pt"
}

// Percent returns the ratio p/100.
func Percent(p float64) Ratio {
	return Ratio(p / 100)
}

// Of resolves r against ref. A non-zero ratio of an infinite
// or NaN reference is indeterminate and resolves to zero.
func (r Ratio) Of(ref Abs) Abs {
	if r == 0 || !ref.IsFinite() {
		return 0
	}
	return Abs(r) * ref
}

func (r Ratio) String() string {
	return strconv.FormatFloat(float64(r)*100, 'g', 6, 64) + "%"
}

// Absolute returns the Rel that always resolves to a.
func Absolute(a Abs) Rel {
	return Rel{Abs: a}
}

// Relative returns the Rel that resolves to r of the reference.
func Relative(r Ratio) Rel {
	return Rel{Ratio: r}
}

// Resolve returns the absolute length of r relative to ref.
func (r Rel) Resolve(ref Abs) Abs {
	return r.Abs + r.Ratio.Of(ref)
}

// IsZero reports whether r resolves to zero for every reference.
func (r Rel) IsZero() bool {
	return r.Ratio == 0 && r.Abs == 0
}

// IsRelative reports whether r depends on its reference.
func (r Rel) IsRelative() bool {
	return r.Ratio != 0
}

// Add returns the sum of r and o.
func (r Rel) Add(o Rel) Rel {
	return Rel{Ratio: r.Ratio + o.Ratio, Abs: r.Abs + o.Abs}
}

func (r Rel) String() string {
	switch {
	case r.Ratio == 0:
		return r.Abs.String()
	case r.Abs == 0:
		return r.Ratio.String()
	default:
		return r.Ratio.String() + " + " + r.Abs.String()
	}
}

// Share returns f's part of remaining, where total is the sum of
// all fractions competing for it. Without a total, or without
// finite positive space to share, the share is zero.
func (f Fr) Share(total Fr, remaining Abs) Abs {
	if total <= 0 || f <= 0 || !remaining.IsFinite() || remaining <= 0 {
		return 0
	}
	return Abs(float64(f)/float64(total)) * remaining
}

func (f Fr) String() string {
	return strconv.FormatFloat(float64(f), 'g', 6, 64) + "fr"
}

// V returns a Value of v in unit u.
func V(v float32, u Unit) Value {
	return Value{V: v, U: u}
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPt:
		return "pt"
	case UnitMm:
		return "mm"
	case UnitCm:
		return "cm"
	case UnitIn:
		return "in"
	case UnitEm:
		return "em"
	default:
		panic("unknown unit")
	}
}

// ParseUnit returns the unit named by s.
func ParseUnit(s string) (Unit, bool) {
	switch s {
	case "pt":
		return UnitPt, true
	case "mm":
		return UnitMm, true
	case "cm":
		return UnitCm, true
	case "in":
		return UnitIn, true
	case "em":
		return UnitEm, true
	}
	return 0, false
}

// Abs converts v to points.
func (m Metric) Abs(v Value) Abs {
	f := float64(v.V)
	switch v.U {
	case UnitPt:
		return Pt(f)
	case UnitMm:
		return Mm(f)
	case UnitCm:
		return Cm(f)
	case UnitIn:
		return In(f)
	case UnitEm:
		fs := m.FontSize
		if fs == 0 {
			fs = DefaultFontSize
		}
		return Abs(f) * fs
	default:
		panic("unknown unit")
	}
}

// Add a list of Values.
func Add(c Converter, values ...Value) Value {
	var sum Value
	for _, v := range values {
		sum, v = compatible(c, sum, v)
		sum.V += v.V
	}
	return sum
}

func compatible(c Converter, v1, v2 Value) (Value, Value) {
	if v1.U == v2.U {
		return v1, v2
	}
	if v1.V == 0 {
		v1.U = v2.U
		return v1, v2
	}
	if v2.V == 0 {
		v2.U = v1.U
		return v1, v2
	}
	return Value{V: float32(c.Abs(v1))}, Value{V: float32(c.Abs(v2))}
}
