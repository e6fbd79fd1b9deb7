// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"strings"
)

// Dir is the direction content is stacked in.
type Dir uint8

const (
	// LTR stacks left to right.
	LTR Dir = iota
	// RTL stacks right to left.
	RTL
	// TTB stacks top to bottom.
	TTB
	// BTT stacks bottom to top.
	BTT
)

// Axis returns the axis d runs along.
func (d Dir) Axis() Axis {
	switch d {
	case LTR, RTL:
		return Horizontal
	case TTB, BTT:
		return Vertical
	default:
		panic("unreachable")
	}
}

// Axes returns the main and cross axes of d and whether d runs
// against the coordinate direction of its main axis.
func (d Dir) Axes() (main, cross Axis, reversed bool) {
	main = d.Axis()
	return main, main.Other(), d == RTL || d == BTT
}

// CrossDefault returns the cross axis alignment of content that
// specifies none.
func (d Dir) CrossDefault() Alignment {
	return Start
}

// ParseDir parses a direction name: ltr, rtl, ttb or btt.
func ParseDir(s string) (Dir, error) {
	switch strings.ToLower(s) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	case "ttb":
		return TTB, nil
	case "btt":
		return BTT, nil
	}
	return 0, fmt.Errorf("layout: invalid direction %q", s)
}

func (d Dir) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case TTB:
		return "ttb"
	case BTT:
		return "btt"
	default:
		panic("unreachable")
	}
}
