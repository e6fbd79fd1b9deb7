// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the leaf content of a layout: rectangles,
// single lines of text and images.
package widget
