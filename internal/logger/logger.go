// Package logger builds the zap logger used by the command line tool. Logs
// are JSON lines written to stderr unless another writer is configured.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// config holds configuration options for the logger.
type config struct {
	level  string    // the minimum log level (debug, info, warn, error)
	output io.Writer // destination of the JSON lines
}

// Option configures the logger.
type Option func(*config)

// WithLevel sets the minimum log level.
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput sets the writer the logs go to.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// New returns a JSON logger. By default it writes to stderr at the "warn"
// level.
//
// Returns an error if parsing the log level fails.
func New(opts ...Option) (*zap.Logger, error) {
	cfg := config{level: "warn", output: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(cfg.output),
		level,
	)
	return zap.New(core), nil
}
