// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype loads OpenType and TrueType font files for shaping
// and rasterisation.
package opentype

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/go-text/typesetting/font"

	giofont "gioui.org/typeset/font"
)

// Face is a loaded font. The shaping face it hands out is not safe
// for concurrent use; callers serialise access, as text.Shaper does.
type Face struct {
	face    *font.Face
	ttf     []byte
	family  string
	aspect  font.Aspect
	variant string
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (*Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	desc := face.Describe()
	f := &Face{
		face:   face,
		ttf:    src,
		family: desc.Family,
		aspect: desc.Aspect,
	}
	if face.IsMonospace() || strings.Contains(desc.Family, "Mono") {
		f.variant = "Mono"
	}
	return f, nil
}

// Shaping implements font.Face.
func (f *Face) Shaping() *font.Face {
	return f.face
}

// TTF implements font.Face.
func (f *Face) TTF() []byte {
	return f.ttf
}

// Font returns a font.Font with populated font metadata for the
// face.
// BUG: the only Variant that can be detected automatically is "Mono".
func (f *Face) Font() giofont.Font {
	return giofont.Font{
		Typeface: giofont.Typeface(f.family),
		Style:    f.style(),
		Weight:   f.weight(),
		Variant:  giofont.Variant(f.variant),
	}
}

func (f *Face) style() giofont.Style {
	if f.aspect.Style == font.StyleItalic {
		return giofont.Italic
	}
	return giofont.Regular
}

// weight rounds the CSS weight of the face to the nearest hundred.
func (f *Face) weight() giofont.Weight {
	if f.aspect.Weight == 0 {
		return giofont.Normal
	}
	w := giofont.Weight(math.Round(float64(f.aspect.Weight)/100)*100) - 400
	if w < giofont.Thin {
		w = giofont.Thin
	}
	if w > giofont.Black {
		w = giofont.Black
	}
	return w
}
