// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"go.uber.org/zap"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/unit"
)

// Context carries the state needed by almost all layouts and widgets.
// It is passed by value; a layout changes its copy before handing it
// to its children.
type Context struct {
	// Constraints track the constraints for the active widget or
	// layout.
	Constraints Constraints
	// Metric converts unit values, in particular font relative
	// ones.
	Metric unit.Metric
	// Log receives debug records such as overflow reports. A nil
	// Log discards them.
	Log *zap.Logger
}

var nopLogger = zap.NewNop()

// Logger returns the context logger, never nil.
func (c Context) Logger() *zap.Logger {
	if c.Log == nil {
		return nopLogger
	}
	return c.Log
}

// ctxLayout lays out w with a set of constraints.
func ctxLayout(gtx Context, cs Constraints, w Layoutable) frame.Frame {
	gtx.Constraints = cs
	return w.Layout(gtx)
}
