// SPDX-License-Identifier: Unlicense OR MIT

// Package log builds the zap loggers of the command.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the logger output.
type Config struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" yaml:"format"`
	// File, if set, also receives every record as JSON. The file is
	// rotated when it grows beyond MaxSize megabytes.
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
}

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to w.
func New(cfg Config, w zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("log: level %q: %w", cfg.Level, err)
		}
	}
	enc, err := encoder(cfg.Format)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(enc, w, level)
	if cfg.File != "" {
		fenc := zapcore.NewJSONEncoder(encoderConfig(zapcore.LowercaseLevelEncoder))
		fw := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
		})
		core = zapcore.NewTee(core, zapcore.NewCore(fenc, fw, level))
	}
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("stackview"), nil
}

func encoderConfig(level zapcore.LevelEncoder) zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	ec.EncodeLevel = level
	return ec
}

func encoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "", FormatConsole:
		return zapcore.NewConsoleEncoder(encoderConfig(zapcore.CapitalLevelEncoder)), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(encoderConfig(zapcore.LowercaseLevelEncoder)), nil
	default:
		return nil, fmt.Errorf("log: unknown format %q", format)
	}
}
