// SPDX-License-Identifier: Unlicense OR MIT

// Package page lays content out on sheets of paper.
package page

import (
	"context"
	"image/color"

	"go.uber.org/zap"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/layout"
)

// Page is a sheet of paper with a body inside its margins.
type Page struct {
	Paper Paper
	// Margins overrides the default margins of the paper class.
	// Relative margins resolve against the page width for left and
	// right and the page height for top and bottom.
	Margins *layout.Inset
	// Fill is the page background. Nil means no background.
	Fill *color.NRGBA
	Body layout.Layoutable
}

// Default returns an A4 page with a white background.
func Default(body layout.Layoutable) Page {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	return Page{Paper: A4, Fill: &white, Body: body}
}

// margins returns the effective margins of p.
func (p Page) margins() layout.Inset {
	if p.Margins != nil {
		return *p.Margins
	}
	return p.Paper.Class.Margins()
}

// Layout lays out the page. The frame is always the size of the
// paper, whatever the constraints; the body sees the area inside
// the margins as its available space. Content larger than that area
// overflows the page.
func (p Page) Layout(gtx layout.Context) frame.Frame {
	size := p.Paper.Size()
	f := frame.New(size)
	if p.Fill != nil {
		f.Push(geom.Point{}, frame.Shape{Size: size, Fill: p.Fill})
	}
	if p.Body == nil {
		return f
	}
	gtx.Constraints = layout.Loose(size)
	body := p.margins().Layout(gtx, p.Body)
	f.PushFrame(geom.Point{}, body)
	gtx.Logger().Debug("page laid out",
		zap.String("paper", p.Paper.Name),
		zap.Stringer("size", size),
		zap.Stringer("content", body.Size()),
	)
	return f
}

// LayoutAll lays out independent pages concurrently.
func LayoutAll(ctx context.Context, gtx layout.Context, pages []Page) ([]frame.Frame, error) {
	ws := make([]layout.Layoutable, len(pages))
	for i, p := range pages {
		ws[i] = p
	}
	return layout.LayoutAll(ctx, gtx, ws)
}
