// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"context"

	"golang.org/x/sync/errgroup"

	"gioui.org/typeset/frame"
)

// LayoutAll lays out independent content concurrently, each with
// the constraints of gtx. The frames are returned in the order of
// children. LayoutAll stops starting new layouts once ctx is done.
func LayoutAll(ctx context.Context, gtx Context, children []Layoutable) ([]frame.Frame, error) {
	frames := make([]frame.Frame, len(children))
	g, ctx := errgroup.WithContext(ctx)
	for i, w := range children {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frames[i] = w.Layout(gtx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}
