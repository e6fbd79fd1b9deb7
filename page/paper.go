// SPDX-License-Identifier: Unlicense OR MIT

package page

import (
	"fmt"
	"strconv"
	"strings"

	"gioui.org/typeset/geom"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/unit"
)

// Class groups papers that share default margins.
type Class uint8

const (
	Custom Class = iota
	Base
	US
	Newspaper
	Book
)

// Paper is a named page size.
type Paper struct {
	Name   string
	Class  Class
	Width  unit.Abs
	Height unit.Abs
}

var (
	A4     = Paper{Name: "a4", Class: Base, Width: unit.Mm(210), Height: unit.Mm(297)}
	A5     = Paper{Name: "a5", Class: Base, Width: unit.Mm(148), Height: unit.Mm(210)}
	Letter = Paper{Name: "letter", Class: US, Width: unit.In(8.5), Height: unit.In(11)}
	Legal  = Paper{Name: "legal", Class: US, Width: unit.In(8.5), Height: unit.In(14)}

	NewspaperCompact  = Paper{Name: "newspaper-compact", Class: Newspaper, Width: unit.Mm(280), Height: unit.Mm(430)}
	NewspaperBerliner = Paper{Name: "newspaper-berliner", Class: Newspaper, Width: unit.Mm(315), Height: unit.Mm(470)}

	BookDigest = Paper{Name: "book-digest", Class: Book, Width: unit.In(5.5), Height: unit.In(8.5)}
	BookTrade  = Paper{Name: "book-trade", Class: Book, Width: unit.In(6), Height: unit.In(9)}
)

var papers = []Paper{
	A4, A5, Letter, Legal,
	NewspaperCompact, NewspaperBerliner,
	BookDigest, BookTrade,
}

// ParsePaper returns the paper named s, or a custom paper for a size
// such as "100mmx50mm". Sizes without a unit are in points.
func ParsePaper(s string) (Paper, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range papers {
		if p.Name == name {
			return p, nil
		}
	}
	w, h, ok := strings.Cut(name, "x")
	if !ok {
		return Paper{}, fmt.Errorf("page: unknown paper %q", s)
	}
	width, err := parseLength(w)
	if err != nil {
		return Paper{}, fmt.Errorf("page: paper %q: %w", s, err)
	}
	height, err := parseLength(h)
	if err != nil {
		return Paper{}, fmt.Errorf("page: paper %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return Paper{}, fmt.Errorf("page: paper %q: empty size", s)
	}
	return Paper{Name: name, Class: Custom, Width: width, Height: height}, nil
}

func parseLength(s string) (unit.Abs, error) {
	num := strings.TrimRightFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' })
	u := unit.UnitPt
	if suffix := s[len(num):]; suffix != "" {
		var ok bool
		if u, ok = unit.ParseUnit(suffix); !ok || u == unit.UnitEm {
			return 0, fmt.Errorf("invalid unit %q", suffix)
		}
	}
	v, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return 0, err
	}
	return unit.Metric{}.Abs(unit.V(float32(v), u)), nil
}

// Size returns the page dimensions.
func (p Paper) Size() geom.Point {
	return geom.Pt(p.Width, p.Height)
}

// Margins returns the default margins of the class, relative to the
// page width for the sides and the page height for top and bottom.
func (c Class) Margins() layout.Inset {
	var left, top, right, bottom float64
	switch c {
	case Custom, Base:
		left, top, right, bottom = 11.90, 8.42, 11.90, 8.42
	case US:
		left, top, right, bottom = 17.60, 10.92, 17.60, 9.10
	case Newspaper:
		left, top, right, bottom = 4.55, 5.87, 4.55, 2.94
	case Book:
		left, top, right, bottom = 12.00, 8.52, 15.00, 9.65
	default:
		panic("unreachable")
	}
	rel := func(p float64) unit.Rel { return unit.Relative(unit.Percent(p)) }
	return layout.Inset{Top: rel(top), Right: rel(right), Bottom: rel(bottom), Left: rel(left)}
}

func (c Class) String() string {
	switch c {
	case Custom:
		return "custom"
	case Base:
		return "base"
	case US:
		return "us"
	case Newspaper:
		return "newspaper"
	case Book:
		return "book"
	default:
		panic("unreachable")
	}
}
