package cli

import (
	"context"
	"errors"
	"io"

	"github.com/Gobd/formvalidate/internal/logger"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// ErrInvalid is returned by the check command when the record fails
// validation.
var ErrInvalid = errors.New("validation failed")

// Streams are the standard streams the commands read from and write to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run initializes and executes the formvalidate CLI application.
//
// It registers all available commands, including:
//
//   - `check`: Validates a JSON record against a rule set.
//   - `clean`: Sanitizes values.
//   - `schema`: Prints a rule set as an OpenAPI schema.
//
// args are the full command line, program name included.
func Run(ctx context.Context, args []string, s Streams) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "formvalidate",
		Description:           "Validate and sanitize form submissions against declarative rule sets.",
		Usage:                 "formvalidate [command] [flags]",
		Writer:                s.Out,
		ErrWriter:             s.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Minimum log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("FORMVALIDATE_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			checkCommand(s),
			cleanCommand(s),
			schemaCommand(s),
		},
	}

	return app.Run(ctx, args)
}

// newLogger builds the logger for a command from the log-level flag.
func newLogger(c *cli.Command, s Streams) (*zap.Logger, error) {
	return logger.New(
		logger.WithLevel(c.String("log-level")),
		logger.WithOutput(s.Err),
	)
}
