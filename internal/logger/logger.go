// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatJSON emits one JSON object per line.
	FormatJSON Format = "json"
	// FormatConsole emits human-readable colourised lines.
	FormatConsole Format = "console"
)

// ParseFormat parses a string into a Format. Unknown values fall back
// to the console format.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	default:
		return FormatConsole
	}
}

// Config holds the logger configuration.
type Config struct {
	// Level is the minimum level to emit (debug, info, warn, error).
	Level string
	// Format is the output encoding.
	Format Format
	// Output is the destination writer (default: os.Stdout).
	Output io.Writer
}

var (
	global zerolog.Logger
	once   sync.Once
)

// Setup initialises the global logger. Only the first call takes
// effect; later calls return the already configured logger.
func Setup(cfg Config) zerolog.Logger {
	once.Do(func() {
		global = build(cfg)
	})
	return global
}

// Get returns the global logger, initialising it with defaults when
// Setup was never called.
func Get() zerolog.Logger {
	once.Do(func() {
		global = build(Config{})
	})
	return global
}

func build(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}
	if cfg.Format != FormatJSON {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// RequestLogger returns gin middleware that logs one line per
// completed request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := Get()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Str("ip", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}
