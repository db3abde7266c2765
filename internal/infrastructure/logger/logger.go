// Package logger builds the zerolog loggers handed to every component.
// Nothing in the service reads a global logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds the logger configuration options.
//
//	LOG_LEVEL     debug, info, warn, error (unknown values fall back to info)
//	LOG_FORMAT    json or console
//	LOG_CALLER    add file:line to every entry
//	SERVICE_NAME  value of the "service" field
type Config struct {
	Level        string `env:"LOG_LEVEL" envDefault:"info"`
	Format       string `env:"LOG_FORMAT" envDefault:"json"`
	EnableCaller bool   `env:"LOG_CALLER" envDefault:"false"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"journey-search"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Level:       zerolog.InfoLevel.String(),
		Format:      FormatJSON,
		ServiceName: "journey-search",
	}
}

// New creates a logger writing to stdout.
func New(cfg Config) zerolog.Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a logger writing to out.
func NewWithOutput(cfg Config, out io.Writer) zerolog.Logger {
	ctx := zerolog.New(writerFor(cfg.Format, out)).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp()

	if cfg.ServiceName != "" {
		ctx = ctx.Str("service", cfg.ServiceName)
	}
	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Nop returns a disabled logger that produces no output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func writerFor(format string, out io.Writer) io.Writer {
	if format != FormatConsole {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
}
