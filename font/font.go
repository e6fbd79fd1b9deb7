// SPDX-License-Identifier: Unlicense OR MIT

// Package font describes the attributes used to select font faces.
package font

import (
	"fmt"
	"strings"

	"github.com/go-text/typesetting/font"
)

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face Face
}

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface variant, style and weight.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Face is a handle to a loaded typeface.
type Face interface {
	// Shaping returns a face for shaping. The result is not safe
	// for concurrent use.
	Shaping() *font.Face
	// TTF returns the font file the face was loaded from, for
	// rasterisers that parse it themselves.
	TTF() []byte
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

// weightNames are the names of the weights from Thin to Black.
var weightNames = [...]string{
	"Thin", "ExtraLight", "Light", "Normal", "Medium",
	"SemiBold", "Bold", "ExtraBold", "Black",
}

// ParseStyle returns the style named s: regular or italic. Case is
// ignored.
func ParseStyle(s string) (Style, bool) {
	switch strings.ToLower(s) {
	case "regular", "normal":
		return Regular, true
	case "italic":
		return Italic, true
	}
	return 0, false
}

// ParseWeight returns the weight named s, such as bold or light. Case
// is ignored.
func ParseWeight(s string) (Weight, bool) {
	for i, n := range weightNames {
		if strings.EqualFold(n, s) {
			return Thin + Weight(i*100), true
		}
	}
	return 0, false
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// String returns the weight name, or the CSS offset of weights
// between the named ones.
func (w Weight) String() string {
	if w >= Thin && w <= Black && (w-Thin)%100 == 0 {
		return weightNames[(w-Thin)/100]
	}
	return fmt.Sprintf("Weight(%+d)", int(w))
}
