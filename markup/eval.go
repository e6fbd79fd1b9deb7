// SPDX-License-Identifier: Unlicense OR MIT

package markup

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/exp/slices"

	"gioui.org/typeset/font"
	"gioui.org/typeset/frame"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/unit"
	"gioui.org/typeset/widget"
)

// args gives access to the arguments of a call while it is
// evaluated.
type args struct {
	c *call
	// next is the index of the next positional argument.
	next int
}

func errorAt(pos int, f string, a ...any) {
	panic(parseError{pos: pos, err: fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(f, a...))})
}

func newArgs(c *call, named ...string) *args {
	for _, a := range c.args {
		if a.name != "" && !slices.Contains(named, a.name) {
			errorAt(a.val.pos, "unknown argument %q to %s", a.name, c.name)
		}
	}
	return &args{c: c}
}

// named returns the value of the named argument, if present.
func (a *args) named(name string) (value, bool) {
	i := slices.IndexFunc(a.c.args, func(ar arg) bool { return ar.name == name })
	if i == -1 {
		return value{}, false
	}
	return a.c.args[i].val, true
}

// positional returns the next positional argument, if any.
func (a *args) positional() (value, bool) {
	for ; a.next < len(a.c.args); a.next++ {
		if a.c.args[a.next].name == "" {
			a.next++
			return a.c.args[a.next-1].val, true
		}
	}
	return value{}, false
}

// peekKind reports whether the next positional argument has kind k.
func (a *args) peekKind(k valueKind) bool {
	backup := a.next
	v, ok := a.positional()
	a.next = backup
	return ok && v.kind == k
}

// finish reports arguments left over.
func (a *args) finish() {
	if v, ok := a.positional(); ok {
		errorAt(v.pos, "too many arguments to %s", a.c.name)
	}
}

func (p *Parser) eval(c *call) layout.Layoutable {
	switch c.name {
	case "stack":
		return p.stack(c)
	case "rect":
		return p.rect(c)
	case "box":
		return p.box(c)
	case "align":
		return p.align(c)
	case "pad":
		return p.pad(c)
	case "text":
		return p.text(c)
	case "image":
		return p.image(c)
	case "scale":
		return p.scale(c)
	case "rotate":
		return p.rotate(c)
	default:
		errorAt(c.pos, "invalid layout %q", c.name)
		return nil
	}
}

func (p *Parser) stack(c *call) layout.Layoutable {
	a := newArgs(c, "dir", "spacing")
	s := layout.Stack{Dir: layout.TTB}
	if v, ok := a.named("dir"); ok {
		d, err := layout.ParseDir(p.ident(v))
		if err != nil {
			errorAt(v.pos, "%v", err)
		}
		s.Dir = d
	}
	if v, ok := a.named("spacing"); ok {
		sp := p.spacing(v)
		s.Spacing = &sp
	}
	for {
		v, ok := a.positional()
		if !ok {
			break
		}
		switch v.kind {
		case lengthValue:
			s.Children = append(s.Children, layout.Spaced(p.spacing(v)))
		case callValue:
			s.Children = append(s.Children, layout.Stacked(p.eval(v.call)))
		default:
			errorAt(v.pos, "stack children are layouts or lengths")
		}
	}
	return s
}

func (p *Parser) rect(c *call) layout.Layoutable {
	a := newArgs(c, "fill", "stroke", "thickness")
	r := widget.Rect{Fill: color.NRGBA{A: 0xff}}
	w, ok := a.positional()
	if !ok {
		errorAt(c.pos, "rect needs a width and a height")
	}
	r.Width = p.rel(w)
	h, ok := a.positional()
	if !ok {
		errorAt(c.pos, "rect needs a width and a height")
	}
	r.Height = p.rel(h)
	if v, ok := a.named("fill"); ok {
		r.Fill = p.color(v)
	}
	r.Stroke = p.stroke(a)
	a.finish()
	return r
}

func (p *Parser) box(c *call) layout.Layoutable {
	a := newArgs(c, "width", "height", "fill", "stroke", "thickness", "clip")
	var b layout.Box
	if v, ok := a.named("width"); ok {
		b.Width = p.rel(v)
	}
	if v, ok := a.named("height"); ok {
		b.Height = p.rel(v)
	}
	if v, ok := a.named("fill"); ok {
		col := p.color(v)
		b.Fill = &col
	}
	b.Stroke = p.stroke(a)
	if v, ok := a.named("clip"); ok {
		b.Clip = p.boolean(v)
	}
	if v, ok := a.positional(); ok {
		b.Child = p.child(v)
	}
	a.finish()
	return b
}

func (p *Parser) align(c *call) layout.Layoutable {
	a := newArgs(c)
	var al layout.Align
	var child layout.Layoutable
	for {
		v, ok := a.positional()
		if !ok {
			break
		}
		if v.kind == callValue {
			child = p.eval(v.call)
			break
		}
		next, ok := parseAlign(p.ident(v))
		if !ok {
			errorAt(v.pos, "invalid alignment %q", v.str)
		}
		if (next.HasX && al.HasX) || (next.HasY && al.HasY) {
			errorAt(v.pos, "alignment %q conflicts with %v", v.str, al)
		}
		al = al.Or(next)
	}
	if child == nil {
		errorAt(c.pos, "align needs a child")
	}
	a.finish()
	return layout.Aligned{Align: al, Child: child}
}

func parseAlign(name string) (layout.Align, bool) {
	switch name {
	case "start", "left":
		return layout.AlignX(layout.Start), true
	case "center":
		return layout.AlignX(layout.Middle), true
	case "end", "right":
		return layout.AlignX(layout.End), true
	case "top":
		return layout.AlignY(layout.Start), true
	case "horizon":
		return layout.AlignY(layout.Middle), true
	case "bottom":
		return layout.AlignY(layout.End), true
	}
	return layout.Align{}, false
}

func (p *Parser) pad(c *call) layout.Layoutable {
	a := newArgs(c)
	var vs []unit.Rel
	for a.peekKind(lengthValue) {
		v, _ := a.positional()
		vs = append(vs, p.rel(v))
	}
	var in layout.Inset
	switch len(vs) {
	case 1:
		in = layout.UniformInset(vs[0])
	case 2:
		in = layout.Inset{Top: vs[0], Right: vs[1], Bottom: vs[0], Left: vs[1]}
	case 3:
		in = layout.Inset{Top: vs[0], Right: vs[1], Bottom: vs[2], Left: vs[1]}
	case 4:
		in = layout.Inset{Top: vs[0], Right: vs[1], Bottom: vs[2], Left: vs[3]}
	default:
		errorAt(c.pos, "pad takes one to four insets, got %d", len(vs))
	}
	v, ok := a.positional()
	if !ok {
		errorAt(c.pos, "pad needs a child")
	}
	child := p.child(v)
	a.finish()
	return in.Padded(child)
}

func (p *Parser) text(c *call) layout.Layoutable {
	a := newArgs(c, "size", "font", "weight", "style", "fill")
	if p.Shaper == nil {
		errorAt(c.pos, "text without a shaper")
	}
	l := widget.Label{Shaper: p.Shaper, Color: color.NRGBA{A: 0xff}}
	v, ok := a.positional()
	if !ok || v.kind != stringValue {
		errorAt(c.pos, "text needs a string")
	}
	l.Text = v.str
	if v, ok := a.named("size"); ok {
		l.Size = p.fontSize(v)
	}
	if v, ok := a.named("font"); ok {
		l.Font.Typeface = font.Typeface(p.str(v))
	}
	if v, ok := a.named("weight"); ok {
		w, ok := font.ParseWeight(p.ident(v))
		if !ok {
			errorAt(v.pos, "invalid weight %q", v.str)
		}
		l.Font.Weight = w
	}
	if v, ok := a.named("style"); ok {
		s, ok := font.ParseStyle(p.ident(v))
		if !ok {
			errorAt(v.pos, "invalid style %q", v.str)
		}
		l.Font.Style = s
	}
	if v, ok := a.named("fill"); ok {
		l.Color = p.color(v)
	}
	a.finish()
	return l
}

func (p *Parser) image(c *call) layout.Layoutable {
	a := newArgs(c, "width", "height", "fit")
	v, ok := a.positional()
	if !ok || v.kind != stringValue {
		errorAt(c.pos, "image needs a path")
	}
	if p.FS == nil {
		errorAt(v.pos, "image without a file system")
	}
	src, err := widget.Open(p.FS, v.str)
	if err != nil {
		panic(parseError{pos: v.pos, err: err})
	}
	im := widget.Image{Src: src}
	if v, ok := a.named("width"); ok {
		im.Width = p.rel(v)
	}
	if v, ok := a.named("height"); ok {
		im.Height = p.rel(v)
	}
	if v, ok := a.named("fit"); ok {
		fit, err := widget.ParseFit(p.ident(v))
		if err != nil {
			errorAt(v.pos, "%v", err)
		}
		im.Fit = fit
	}
	a.finish()
	return im
}

func (p *Parser) scale(c *call) layout.Layoutable {
	a := newArgs(c, "x", "y")
	t := layout.Transformed{ScaleX: 1, ScaleY: 1}
	if a.peekKind(lengthValue) {
		v, _ := a.positional()
		t.ScaleX = p.ratio(v)
		t.ScaleY = t.ScaleX
	}
	if v, ok := a.named("x"); ok {
		t.ScaleX = p.ratio(v)
	}
	if v, ok := a.named("y"); ok {
		t.ScaleY = p.ratio(v)
	}
	v, ok := a.positional()
	if !ok {
		errorAt(c.pos, "scale needs a child")
	}
	t.Child = p.child(v)
	a.finish()
	return t
}

func (p *Parser) rotate(c *call) layout.Layoutable {
	a := newArgs(c)
	v, ok := a.positional()
	if !ok || v.kind != lengthValue || !v.length.isAngle {
		errorAt(c.pos, "rotate needs an angle")
	}
	t := layout.Transformed{Rotation: v.length.deg * math.Pi / 180}
	v, ok = a.positional()
	if !ok {
		errorAt(c.pos, "rotate needs a child")
	}
	t.Child = p.child(v)
	a.finish()
	return t
}

func (p *Parser) child(v value) layout.Layoutable {
	if v.kind != callValue {
		errorAt(v.pos, "expected a layout")
	}
	return p.eval(v.call)
}

func (p *Parser) stroke(a *args) *frame.Stroke {
	v, ok := a.named("stroke")
	if !ok {
		if t, ok := a.named("thickness"); ok {
			errorAt(t.pos, "thickness without a stroke")
		}
		return nil
	}
	s := &frame.Stroke{Color: p.color(v), Thickness: 1}
	if t, ok := a.named("thickness"); ok {
		r := p.rel(t)
		if r.IsRelative() {
			errorAt(t.pos, "relative stroke thickness")
		}
		s.Thickness = r.Abs
	}
	return s
}

func (p *Parser) spacing(v value) layout.Spacing {
	if v.kind != lengthValue {
		errorAt(v.pos, "expected a length")
	}
	if v.length.isFr() {
		return layout.FrGap(v.length.fr)
	}
	return layout.Gap(p.rel(v))
}

// rel returns the relative length v with its absolute terms
// resolved.
func (p *Parser) rel(v value) unit.Rel {
	if v.kind != lengthValue {
		errorAt(v.pos, "expected a length")
	}
	if v.length.isAngle {
		errorAt(v.pos, "expected a length, got an angle")
	}
	if v.length.isFr() {
		errorAt(v.pos, "fractional length outside a stack")
	}
	r := v.length.rel
	r.Abs += p.Metric.Abs(unit.Add(p.Metric, v.length.values...))
	return r
}

// fontSize returns the size v. A sum of em terms stays relative to
// the font size in effect during layout; mixed units are folded to
// points.
func (p *Parser) fontSize(v value) unit.Value {
	if p.rel(v).IsRelative() {
		errorAt(v.pos, "relative font size")
	}
	return unit.Add(p.Metric, v.length.values...)
}

// ratio returns the scale factor v, written as a percentage.
func (p *Parser) ratio(v value) float64 {
	if v.kind != lengthValue || v.length.isAngle || v.length.isFr() || len(v.length.values) > 0 {
		errorAt(v.pos, "expected a percentage")
	}
	r := float64(v.length.rel.Ratio)
	if r == 0 {
		errorAt(v.pos, "zero scale")
	}
	return r
}

func (p *Parser) ident(v value) string {
	if v.kind != identValue {
		errorAt(v.pos, "expected a name")
	}
	return v.str
}

func (p *Parser) str(v value) string {
	if v.kind != stringValue {
		errorAt(v.pos, "expected a string")
	}
	return v.str
}

func (p *Parser) color(v value) color.NRGBA {
	if v.kind != colorValue {
		errorAt(v.pos, "expected a color")
	}
	return v.color
}

func (p *Parser) boolean(v value) bool {
	switch p.ident(v) {
	case "true":
		return true
	case "false":
		return false
	}
	errorAt(v.pos, "expected true or false")
	return false
}
