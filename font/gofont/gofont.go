// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as a collection of faces.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/sync/errgroup"

	"gioui.org/typeset/font"
	"gioui.org/typeset/font/opentype"
)

// Typeface is the typeface of every face in the collection.
const Typeface font.Typeface = "Go"

// faces lists the font files by the attributes they are registered
// under. The regular face comes first.
var faces = []struct {
	font font.Font
	ttf  []byte
}{
	{font.Font{}, goregular.TTF},
	{font.Font{Style: font.Italic}, goitalic.TTF},
	{font.Font{Weight: font.Bold}, gobold.TTF},
	{font.Font{Style: font.Italic, Weight: font.Bold}, gobolditalic.TTF},
	{font.Font{Weight: font.Medium}, gomedium.TTF},
	{font.Font{Weight: font.Medium, Style: font.Italic}, gomediumitalic.TTF},
	{font.Font{Variant: "Mono"}, gomono.TTF},
	{font.Font{Variant: "Mono", Weight: font.Bold}, gomonobold.TTF},
	{font.Font{Variant: "Mono", Weight: font.Bold, Style: font.Italic}, gomonobolditalic.TTF},
	{font.Font{Variant: "Mono", Style: font.Italic}, gomonoitalic.TTF},
	{font.Font{Variant: "Smallcaps"}, gosmallcaps.TTF},
	{font.Font{Variant: "Smallcaps", Style: font.Italic}, gosmallcapsitalic.TTF},
}

var (
	once       sync.Once
	collection []font.FontFace
)

// Collection returns all the Go font faces. The fonts are parsed
// concurrently on first use.
func Collection() []font.FontFace {
	once.Do(func() {
		c := make([]font.FontFace, len(faces))
		var g errgroup.Group
		for i, f := range faces {
			g.Go(func() error {
				face, err := opentype.Parse(f.ttf)
				if err != nil {
					return fmt.Errorf("gofont: %d: %w", i, err)
				}
				fnt := f.font
				fnt.Typeface = Typeface
				c[i] = font.FontFace{Font: fnt, Face: face}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			panic(err)
		}
		// Ensure that any outside appends will not reuse the backing store.
		collection = c[:len(c):len(c)]
	})
	return collection
}

// Regular returns a collection of only the Go regular font face.
func Regular() []font.FontFace {
	return Collection()[:1:1]
}
