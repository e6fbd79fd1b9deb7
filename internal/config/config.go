// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the settings of the stackview command from
// defaults, an optional stackview.yaml file, STACKVIEW_* environment
// variables and flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"gioui.org/typeset/internal/log"
	"gioui.org/typeset/page"
	"gioui.org/typeset/unit"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "STACKVIEW"

// Config is the command configuration.
type Config struct {
	// Page is a paper name or size, see page.ParsePaper.
	Page string `mapstructure:"page" yaml:"page"`
	// DPI is the output resolution.
	DPI float64 `mapstructure:"dpi" yaml:"dpi"`
	// Oversample renders at a multiple of DPI for smoother edges.
	Oversample int `mapstructure:"oversample" yaml:"oversample"`
	// Out is the output file, or directory for several inputs.
	Out string `mapstructure:"out" yaml:"out"`
	// FontSize is the size of 1em, in points.
	FontSize float64 `mapstructure:"font_size" yaml:"font_size"`
	// Lang is the BCP 47 language text is shaped in.
	Lang string     `mapstructure:"lang" yaml:"lang"`
	Log  log.Config `mapstructure:"log" yaml:"log"`
}

// SetDefaults registers the default values with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("page", "a4")
	v.SetDefault("dpi", 72.0)
	v.SetDefault("oversample", 1)
	v.SetDefault("out", "")
	v.SetDefault("font_size", float64(unit.DefaultFontSize))
	v.SetDefault("lang", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", log.FormatConsole)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
}

// Default returns the default configuration.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: defaults: %v", err))
	}
	return &cfg
}

// Load reads the configuration into v and returns it. An empty file
// searches the working directory, then ~/.config/stackview, for an
// optional stackview.yaml. Paths may start with ~.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	if file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "stackview"))
		}
		v.SetConfigName("stackview")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	for _, p := range []*string{&cfg.Out, &cfg.Log.File} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		*p = expanded
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := c.Paper(); err != nil {
		return fmt.Errorf("config: page: %w", err)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("config: dpi must be positive, got %g", c.DPI)
	}
	if c.Oversample < 1 {
		return fmt.Errorf("config: oversample must be at least 1, got %d", c.Oversample)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("config: font_size must be positive, got %g", c.FontSize)
	}
	if strings.TrimSpace(c.Lang) == "" {
		return errors.New("config: lang must not be empty")
	}
	return nil
}

// Paper returns the configured paper.
func (c *Config) Paper() (page.Paper, error) {
	return page.ParsePaper(c.Page)
}

// Metric returns the unit conversion for the configured font size.
func (c *Config) Metric() unit.Metric {
	return unit.Metric{FontSize: unit.Pt(c.FontSize)}
}
