// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gioui.org/typeset/font/gofont"
	"gioui.org/typeset/internal/config"
	"gioui.org/typeset/internal/log"
	"gioui.org/typeset/layout"
	"gioui.org/typeset/markup"
	"gioui.org/typeset/text"
)

// app is the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger

	shaperOnce sync.Once
	shaper     *text.Shaper
}

// run executes the command line args. Failures are logged to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{v: viper.New()}
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	if a.log == nil {
		if err != nil {
			fmt.Fprintln(stderr, "stackview:", err)
		}
		return err
	}
	if err != nil {
		a.log.Error("command failed", zap.Error(err))
	}
	_ = a.log.Sync()
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stackview",
		Short:         "Lay out stack markup documents and render them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./stackview.yaml)")
	pf.String("page", "a4", "paper name (a4, a5, letter, legal) or size such as 100mmx50mm")
	pf.Float64("font-size", config.Default().FontSize, "size of 1em in points")
	pf.String("lang", config.Default().Lang, "language text is shaped in, such as en or de")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", log.FormatConsole, "log format: console or json")
	a.bind(pf, "page", "page")
	a.bind(pf, "font_size", "font-size")
	a.bind(pf, "lang", "lang")
	a.bind(pf, "log.level", "log-level")
	a.bind(pf, "log.format", "log-format")

	root.AddCommand(a.renderCmd(), a.dumpCmd())
	return root
}

func (a *app) bind(fs *pflag.FlagSet, key, flag string) {
	if err := a.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
		panic(err)
	}
}

// init loads the configuration and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	l, err := log.New(cfg.Log, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, l
	a.log.Debug("configuration loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.String("page", cfg.Page),
		zap.Float64("dpi", cfg.DPI),
		zap.String("lang", cfg.Lang),
	)
	return nil
}

func (a *app) textShaper() *text.Shaper {
	a.shaperOnce.Do(func() {
		a.shaper = text.NewShaper(gofont.Collection(),
			text.WithLogger(a.log),
			text.WithLanguage(a.cfg.Lang),
		)
	})
	return a.shaper
}

// parser returns a markup parser resolving images relative to dir.
func (a *app) parser(dir string) *markup.Parser {
	return &markup.Parser{
		Shaper: a.textShaper(),
		FS:     os.DirFS(dir),
		Metric: a.cfg.Metric(),
		Log:    a.log,
	}
}

func (a *app) layoutContext() layout.Context {
	return layout.Context{Metric: a.cfg.Metric(), Log: a.log}
}
