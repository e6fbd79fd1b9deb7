// SPDX-License-Identifier: Unlicense OR MIT

// Command stackview lays out stack markup documents on pages and
// renders them to PNG files.
//
// Usage:
//
//	stackview render [-o out.png] [--page a4] [--dpi 72] FILE...
//	stackview dump [--page a4] FILE
//
// Settings are read from flags, STACKVIEW_* environment variables and
// an optional stackview.yaml in the working directory.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
