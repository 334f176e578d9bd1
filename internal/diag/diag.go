// Package diag builds the zap logger used by the command line tools and
// adapts it to layout.Diagnostics.
package diag

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the [log] table of a profile file.
type Config struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"

	// File enables a rotated JSON log file next to the console output.
	File       string `toml:"file,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb,omitempty"`
	MaxBackups int    `toml:"max_backups,omitempty"`
	MaxAgeDays int    `toml:"max_age_days,omitempty"`
	Compress   bool   `toml:"compress,omitempty"`

	// WarnRate caps warnings per second; 0 disables the limit.
	WarnRate  float64 `toml:"warn_rate"`
	WarnBurst int     `toml:"warn_burst"`
}

// DefaultConfig logs warnings and above to the console.
func DefaultConfig() Config {
	return Config{
		Level:     "warn",
		Format:    "console",
		WarnRate:  5,
		WarnBurst: 10,
	}
}

// New builds a logger writing to console (stderr when nil) and, if
// cfg.File is set, to a lumberjack-rotated file.
func New(cfg Config, console io.Writer) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.WarnLevel)
	}
	if console == nil {
		console = os.Stderr
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(cfg.Format), zapcore.Lock(zapcore.AddSync(console)), level),
	}
	if cfg.File != "" {
		// File output is always JSON.
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(encoder("json"), fileWriter, level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named("stacklayout")
}

func encoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "json" {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}
