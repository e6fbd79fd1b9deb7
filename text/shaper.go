// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"go.uber.org/zap"

	"gioui.org/typeset/font"
	"gioui.org/typeset/unit"
)

// oversample is the factor runs are shaped at. HarfBuzz rounds the
// size up to a whole unit, which is too coarse at text sizes.
const oversample = 16

// Shaper shapes text from a collection of faces. It is safe for
// concurrent use; shaping is serialized and its results are cached.
//
// If a font matches no face of its typeface, the Shaper tries the same
// typeface with normal weight and regular style before falling back to
// the typeface of the first face.
type Shaper struct {
	log *zap.Logger

	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
	def    font.Typeface
	faces  map[font.Font]font.Face
	cache  layoutCache
	lang   language.Language
}

// ShaperOption configures a Shaper.
type ShaperOption func(*Shaper)

// WithLogger directs the shaper's diagnostics to l.
func WithLogger(l *zap.Logger) ShaperOption {
	return func(s *Shaper) {
		s.log = l
	}
}

// WithLanguage sets the language runs are shaped in. The default is
// English.
func WithLanguage(tag string) ShaperOption {
	return func(s *Shaper) {
		s.lang = language.NewLanguage(tag)
	}
}

// NewShaper returns a shaper for collection. Later faces with the same
// font as an earlier face are ignored.
func NewShaper(collection []font.FontFace, opts ...ShaperOption) *Shaper {
	s := &Shaper{
		log:   zap.NewNop(),
		faces: make(map[font.Font]font.Face),
		lang:  language.NewLanguage("en"),
	}
	for _, o := range opts {
		o(s)
	}
	for i, f := range collection {
		if i == 0 {
			s.def = f.Font.Typeface
		}
		if _, dup := s.faces[f.Font]; dup {
			s.log.Debug("duplicate face", zap.Stringer("font", fontName(f.Font)))
			continue
		}
		s.faces[f.Font] = f.Face
	}
	return s
}

// Shape lays out str as a single left-to-right line in fnt at size.
func (s *Shaper) Shape(fnt font.Font, size unit.Abs, str string) Run {
	k := layoutKey{size: toFixed(size), str: str, font: fnt}
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.cache.Get(k); ok {
		return r
	}
	r := s.shape(fnt, size, str)
	if s.cache.Put(k, r) {
		s.log.Debug("shaped run evicted", zap.Int("evicted", s.cache.evicted))
	}
	return r
}

func (s *Shaper) shape(fnt font.Font, size unit.Abs, str string) Run {
	r := Run{Font: fnt, Size: size, Text: str}
	face := s.faceForFont(fnt)
	if face == nil {
		s.log.Warn("no face for font", zap.Stringer("font", fontName(fnt)))
		return r
	}
	r.Face = face
	if size <= 0 {
		return r
	}
	runes := []rune(str)
	out := s.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face.Shaping(),
		Size:      toFixed(size * oversample),
		Script:    script(runes),
		Language:  s.lang,
	})
	scale := func(v unit.Abs) unit.Abs { return v / oversample }
	r.Ascent = scale(fromFixed(out.LineBounds.Ascent))
	r.Descent = scale(fromFixed(-out.LineBounds.Descent + out.LineBounds.Gap))
	r.Glyphs = make([]Glyph, len(out.Glyphs))
	var x unit.Abs
	for i, g := range out.Glyphs {
		adv := scale(fromFixed(g.XAdvance))
		r.Glyphs[i] = Glyph{
			ID:      GlyphID(g.GlyphID),
			X:       x + scale(fromFixed(g.XOffset)),
			Advance: adv,
			Cluster: g.ClusterIndex,
		}
		x += adv
	}
	r.Advance = x
	return r
}

func (s *Shaper) faceForStyle(fnt font.Font) font.Face {
	if f := s.faces[fnt]; f != nil {
		return f
	}
	f := fnt
	f.Weight = font.Normal
	if tf := s.faces[f]; tf != nil {
		return tf
	}
	f = fnt
	f.Style = font.Regular
	if tf := s.faces[f]; tf != nil {
		return tf
	}
	f.Weight = font.Normal
	if tf := s.faces[f]; tf != nil {
		return tf
	}
	f.Variant = ""
	return s.faces[f]
}

func (s *Shaper) faceForFont(fnt font.Font) font.Face {
	if f := s.faceForStyle(fnt); f != nil {
		return f
	}
	fnt.Typeface = s.def
	return s.faceForStyle(fnt)
}

// script returns the script of the first rune with a specific one.
func script(runes []rune) language.Script {
	for _, r := range runes {
		switch sc := language.LookupScript(r); sc {
		case language.Common, language.Inherited, language.Unknown:
		default:
			return sc
		}
	}
	return language.Latin
}

type fontName font.Font

func (f fontName) String() string {
	name := string(f.Typeface)
	if name == "" {
		name = "default"
	}
	if f.Variant != "" {
		name += " " + string(f.Variant)
	}
	return name + " " + font.Font(f).Weight.String() + " " + font.Font(f).Style.String()
}
