// SPDX-License-Identifier: Unlicense OR MIT

/*
Package markup builds layouts from a small call syntax.

A document is a single call. Calls take positional arguments and
named arguments of the form name: value. Values are calls, lengths,
quoted strings, colors such as #ff8800, and bare names.

For example,

	stack(dir: btt, spacing: 5pt,
		align(end, rect(30pt, 10pt)),
		10%,
		rect(50%, 10pt))

stacks two rectangles from bottom to top with a gap of a tenth of
the available height between them.

Lengths are numbers with a unit: pt, mm, cm, in, em, % or fr. Terms
add up, as in 50% + 5pt. A length is relative if it has a % term; fr
lengths take a share of the space left over in a stack and only
appear as stack gaps.

Available layouts:

	stack(dir: <dir>, spacing: <length>, children...) lays out
	children with a Stack. Dir is one of ltr, rtl, ttb and btt, and
	defaults to ttb. Lengths among the children are explicit gaps.

	rect(<width>, <height>, fill: <color>) is a filled rectangle.

	box(width: <length>, height: <length>, fill: <color>,
	stroke: <color>, thickness: <length>, clip: true, child) is a
	Box around an optional child.

	align(<alignment>..., child) aligns child inside a stack or box.
	Alignments are start, center, end, left and right for the
	horizontal axis, and top, horizon and bottom for the vertical.

	pad(<insets>..., child) applies an Inset to child. One value
	insets all sides; two values are top/bottom and left/right;
	three are top, left/right and bottom; four are top, right,
	bottom and left.

	text("string", size: <length>, font: "typeface",
	weight: <weight>, style: <style>, fill: <color>) is a Label.

	image("path", width: <length>, height: <length>, fit: <fit>)
	is an Image loaded from the parser file system.

	scale(<percentage>, x: <percentage>, y: <percentage>, child)
	scales child about its center, and rotate(<angle>, child)
	turns it clockwise by an angle in degrees such as 90deg. The
	child keeps its place and size in the surrounding layout.

Errors report the position of the failure with a cross, ✗.
*/
package markup

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"gioui.org/typeset/layout"
	"gioui.org/typeset/text"
	"gioui.org/typeset/unit"
)

// ErrSyntax is wrapped by errors for malformed documents.
var ErrSyntax = errors.New("syntax error")

// Error is a failure at a position of a document.
type Error struct {
	// Pos is the byte offset of the failure.
	Pos int
	// Marked is the document with ✗ inserted at Pos.
	Marked string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("markup: %s:%d: %v", e.Marked, e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parser builds layouts from documents.
type Parser struct {
	// Shaper shapes text calls. Documents with text need one.
	Shaper *text.Shaper
	// FS resolves image paths.
	FS fs.FS
	// Metric converts lengths in em to points, except font sizes
	// that resolve during layout.
	Metric unit.Metric
	Log    *zap.Logger
}

// Parse builds the layout described by doc.
func (p *Parser) Parse(doc string) (w layout.Layoutable, err error) {
	st := &parseState{orig: doc, expr: doc}
	defer func() {
		if e := recover(); e != nil {
			perr, ok := e.(parseError)
			if !ok {
				panic(e)
			}
			w = nil
			err = &Error{
				Pos:    perr.pos,
				Marked: doc[:perr.pos] + "✗" + doc[perr.pos:],
				Err:    perr.err,
			}
		}
	}()
	root := parseDocument(st)
	w = p.eval(root)
	p.logger().Debug("document parsed", zap.String("root", root.name), zap.Int("bytes", len(doc)))
	return w, nil
}

// ParseStack is like Parse for documents whose root is a stack.
func (p *Parser) ParseStack(doc string) (layout.Stack, error) {
	w, err := p.Parse(doc)
	if err != nil {
		return layout.Stack{}, err
	}
	s, ok := w.(layout.Stack)
	if !ok {
		return layout.Stack{}, &Error{Marked: "✗" + doc, Err: fmt.Errorf("%w: root is not a stack", ErrSyntax)}
	}
	return s, nil
}

func (p *Parser) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}
