// SPDX-License-Identifier: Unlicense OR MIT

package frame

import "gioui.org/typeset/unit"

func abs[T int | float64](v T) unit.Abs {
	return unit.Abs(v)
}

func inf() unit.Abs {
	return unit.Inf()
}
