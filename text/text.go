// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text shapes single lines of text into positioned glyphs.

Shaping is done by HarfBuzz through go-text/typesetting. Lengths
cross the boundary as 26.6 fixed point values in points; everything
returned is in unit.Abs.
*/
package text

import (
	"math"

	"golang.org/x/image/math/fixed"

	"gioui.org/typeset/font"
	"gioui.org/typeset/unit"
)

// GlyphID uniquely identifies a glyph within a specific font.
type GlyphID = uint32

// Glyph is a shaped glyph.
type Glyph struct {
	ID GlyphID
	// X is the position of the glyph origin relative to the start
	// of the run.
	X unit.Abs
	// Advance is the distance to the next glyph.
	Advance unit.Abs
	// Cluster is the index of the first rune of the glyph's cluster.
	Cluster int
}

// Run is a shaped line of text in a single face.
type Run struct {
	Font font.Font
	// Face is nil if the shaper had no faces.
	Face font.Face
	Size unit.Abs
	// Text is the source text.
	Text   string
	Glyphs []Glyph
	// Advance is the width of the run.
	Advance unit.Abs
	// Ascent is the height above the baseline.
	Ascent unit.Abs
	// Descent is the depth below the baseline, including the
	// line gap.
	Descent unit.Abs
}

// Height returns the line height of r.
func (r Run) Height() unit.Abs {
	return r.Ascent + r.Descent
}

func fromFixed(v fixed.Int26_6) unit.Abs {
	return unit.Abs(v) / 64
}

func toFixed(a unit.Abs) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(a) * 64))
}
