package cli

import (
	"context"
	"errors"
	"fmt"

	fv "github.com/Gobd/formvalidate"

	"github.com/urfave/cli/v3"
)

// cleanCommand returns a CLI command that sanitizes each argument and
// prints the results one per line.
//
// Usage example:
//
//	formvalidate clean --kind int "5a 7"
func cleanCommand(s Streams) *cli.Command {
	return &cli.Command{
		Name:        "clean",
		Description: "Strip characters that are not allowed for a kind of value.",
		Usage:       "Sanitizes values. Kinds: string, int, integer, number, email.",
		ArgsUsage:   "VALUE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kind",
				Usage: "Kind of value (string, int, email)",
				Value: "string",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			values := c.Args().Slice()
			if len(values) == 0 {
				return errors.New("no values given")
			}
			kind := c.String("kind")
			for _, value := range values {
				if _, err := fmt.Fprintln(s.Out, fv.Clean(value, kind)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
