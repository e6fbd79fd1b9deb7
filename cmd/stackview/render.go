// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gioui.org/typeset/layout"
	"gioui.org/typeset/page"
	"gioui.org/typeset/render"
)

func (a *app) renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [flags] FILE...",
		Short: "Render documents to PNG images, one page each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args)
		},
	}
	fs := cmd.Flags()
	fs.StringP("out", "o", "", "output file, or directory for several inputs (default FILE.png)")
	fs.Float64("dpi", defaultDPI, "output resolution")
	fs.Int("oversample", 1, "render at a multiple of the resolution and scale down")
	a.bind(fs, "out", "out")
	a.bind(fs, "dpi", "dpi")
	a.bind(fs, "oversample", "oversample")
	return cmd
}

const defaultDPI = 72

func (a *app) render(cmd *cobra.Command, files []string) error {
	paper, err := a.cfg.Paper()
	if err != nil {
		return err
	}
	outs, err := outputs(files, a.cfg.Out)
	if err != nil {
		return err
	}
	pages := make([]page.Page, len(files))
	for i, file := range files {
		body, err := a.load(file)
		if err != nil {
			return err
		}
		pages[i] = page.Default(body)
		pages[i].Paper = paper
	}
	ctx := cmd.Context()
	frames, err := page.LayoutAll(ctx, a.layoutContext(), pages)
	if err != nil {
		return err
	}
	r := render.New(
		render.WithDPI(a.cfg.DPI),
		render.WithOversample(a.cfg.Oversample),
		render.WithLogger(a.log),
	)
	imgs, err := r.RenderAll(ctx, frames)
	if err != nil {
		return err
	}
	var g errgroup.Group
	for i, img := range imgs {
		g.Go(func() error {
			if err := render.SavePNG(outs[i], img); err != nil {
				return err
			}
			a.log.Info("page written",
				zap.String("input", files[i]),
				zap.String("output", outs[i]),
				zap.Stringer("size", img.Bounds().Size()),
			)
			return nil
		})
	}
	return g.Wait()
}

// load parses the document in file.
func (a *app) load(file string) (layout.Layoutable, error) {
	doc, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	w, err := a.parser(filepath.Dir(file)).Parse(string(doc))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return w, nil
}

// outputs returns the image paths for files. Without out, each image
// is written next to its input. With several files, out is a
// directory.
func outputs(files []string, out string) ([]string, error) {
	paths := make([]string, len(files))
	if out != "" && len(files) == 1 {
		paths[0] = out
		return paths, nil
	}
	if out != "" {
		if err := os.MkdirAll(out, 0o755); err != nil {
			return nil, err
		}
	}
	seen := make(map[string]string)
	for i, f := range files {
		name := strings.TrimSuffix(f, filepath.Ext(f)) + ".png"
		if out != "" {
			name = filepath.Join(out, filepath.Base(name))
		}
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%s and %s both render to %s", prev, f, name)
		}
		seen[name] = f
		paths[i] = name
	}
	return paths, nil
}
