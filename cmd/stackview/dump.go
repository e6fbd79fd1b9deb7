// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gioui.org/typeset/frame"
	"gioui.org/typeset/geom"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/page"
)

// arrangement is the YAML form of a stack arrangement. Lengths are
// in points.
type arrangement struct {
	Dir        string      `yaml:"dir" json:"dir"`
	Available  size        `yaml:"available" json:"available"`
	Size       size        `yaml:"size" json:"size"`
	Placements []placement `yaml:"placements" json:"placements"`
}

type size struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

type placement struct {
	Index int     `yaml:"index" json:"index"`
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Main  float64 `yaml:"main" json:"main"`
	Cross float64 `yaml:"cross" json:"cross"`
}

func (a *app) dumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump [flags] FILE",
		Short: "Print the arrangement of a document's root stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.dump(args[0])
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), format, out)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// dump arranges the root stack of file in the body area of the
// configured page.
func (a *app) dump(file string) (arrangement, error) {
	paper, err := a.cfg.Paper()
	if err != nil {
		return arrangement{}, err
	}
	doc, err := os.ReadFile(file)
	if err != nil {
		return arrangement{}, err
	}
	s, err := a.parser(filepath.Dir(file)).ParseStack(string(doc))
	if err != nil {
		return arrangement{}, fmt.Errorf("%s: %w", file, err)
	}
	var (
		arr   layout.Arrangement
		avail geom.Point
	)
	body := layout.Widget(func(gtx layout.Context) frame.Frame {
		avail = gtx.Constraints.Max
		arr = s.Arrange(gtx)
		return frame.New(arr.Size)
	})
	p := page.Default(body)
	p.Paper = paper
	p.Layout(a.layoutContext())

	out := arrangement{
		Dir:       s.Dir.String(),
		Available: toSize(avail),
		Size:      toSize(arr.Size),
	}
	for _, pl := range arr.Placements {
		out.Placements = append(out.Placements, placement{
			Index: pl.Index,
			X:     round(float64(pl.Offset.X)),
			Y:     round(float64(pl.Offset.Y)),
			Main:  round(float64(pl.Main)),
			Cross: round(float64(pl.Cross)),
		})
	}
	return out, nil
}

func toSize(p geom.Point) size {
	return size{Width: round(float64(p.X)), Height: round(float64(p.Y))}
}

// round drops float noise below a thousandth of a point.
func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
