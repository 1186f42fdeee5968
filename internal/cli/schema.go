package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gobd/formvalidate/openapi"

	"github.com/urfave/cli/v3"
)

// schemaCommand returns a CLI command that prints a rule set as an OpenAPI
// object schema, or as a whole document when a path is given.
//
// Usage example:
//
//	formvalidate schema --rules contact.yaml
//	formvalidate schema --rules contact.yaml --path /contact --title "Contact form" --doc-version 2.0.0
func schemaCommand(s Streams) *cli.Command {
	return &cli.Command{
		Name:        "schema",
		Description: "Print the OpenAPI 3 schema described by a rule set.",
		Usage:       "Prints a rule set as JSON schema or as an OpenAPI document.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rules",
				Usage:    "Rule set file (YAML or JSON)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "Document a POST endpoint at this path instead of printing the bare schema",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Document title, used with --path",
				Value: "formvalidate",
			},
			&cli.StringFlag{
				Name:  "doc-version",
				Usage: "Document version, used with --path",
				Value: "1.0.0",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			rules, err := loadRules(c.String("rules"))
			if err != nil {
				return err
			}

			path := c.String("path")
			if path == "" {
				ref, err := rules.Schema()
				if err != nil {
					return err
				}
				enc := json.NewEncoder(s.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(ref.Value)
			}

			if _, err := rules.Schema(); err != nil {
				return err
			}
			doc := openapi.DocBase(c.String("title"), "", c.String("doc-version"))
			openapi.Post(doc, path, "submit", openapi.Endpoint{
				Summary: "Submit the form",
				Form:    rules,
			})
			b, err := openapi.Marshal(ctx, doc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(s.Out, "%s\n", b)
			return err
		},
	}
}
