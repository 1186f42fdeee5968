package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	fv "github.com/Gobd/formvalidate"

	"github.com/urfave/cli/v3"
)

// checkCommand returns a CLI command that validates a JSON record against a
// rule set file and prints the resulting messages.
//
// Usage example:
//
//	formvalidate check --rules contact.yaml --data submission.json
func checkCommand(s Streams) *cli.Command {
	return &cli.Command{
		Name:        "check",
		Description: "Validate a JSON object of field values against a YAML or JSON rule set.",
		Usage:       "Validates a record. Exits non-zero when any rule fails.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rules",
				Usage:    "Rule set file (YAML or JSON)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "data",
				Usage: "JSON record file, or - for stdin",
				Value: "-",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format (text, json)",
				Value: "text",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				rulesPath = c.String("rules")
				dataPath  = c.String("data")
				format    = c.String("format")
			)
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q", format)
			}

			log, err := newLogger(c, s)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			rules, err := loadRules(rulesPath)
			if err != nil {
				return err
			}

			in := s.In
			if dataPath != "-" {
				f, err := os.Open(dataPath)
				if err != nil {
					return fmt.Errorf("open record: %w", err)
				}
				defer f.Close()
				in = f
			}

			res, err := fv.DecodeAndValidate(in, rules, fv.WithLogger(log))
			if err != nil {
				return err
			}
			if err := writeResult(s.Out, format, res); err != nil {
				return err
			}

			if res.Valid {
				return nil
			}
			if len(res.Violations) == 0 {
				return fmt.Errorf("%w: %w", ErrInvalid, fv.ErrNoData)
			}
			return fmt.Errorf("%w: %d error(s)", ErrInvalid, len(res.Violations))
		},
	}
}

func loadRules(path string) (fv.RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rule set: %w", err)
	}
	defer f.Close()
	return fv.LoadRuleSet(f)
}

func writeResult(w io.Writer, format string, res fv.Result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Report())
	}
	if res.Valid {
		_, err := fmt.Fprintln(w, "valid")
		return err
	}
	for _, msg := range res.Messages() {
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return err
		}
	}
	return nil
}
