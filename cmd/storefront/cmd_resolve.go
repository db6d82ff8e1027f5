package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/storefront/internal/api"
)

const formatText = "text"

func newResolveCmd(configPath *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Show the view a path resolves to",
		Long:  "Resolves a URL path against the route table and prints the selected view, pattern and parameters. Exits non-zero when no route matches.",
		Example: `  storefront resolve /detail/42
  storefront resolve --format json "/products?sort=best"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			table, err := loadTable(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			m, err := table.Resolve(args[0])
			if err != nil {
				return err
			}

			return writeResolution(cmd.OutOrStdout(), format, api.NewResolution(args[0], m))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	return cmd
}

func writeResolution(w io.Writer, format string, res api.Resolution) error {
	switch format {
	case formatText:
		fmt.Fprintf(w, "view:    %s\n", res.View)
		fmt.Fprintf(w, "pattern: %s\n", res.Pattern)

		keys := make([]string, 0, len(res.Params))
		for k := range res.Params {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "param:   %s=%s\n", k, res.Params[k])
		}
		return nil
	case formatJSON:
		return writeJSON(w, res)
	case formatYAML:
		return writeYAML(w, res)
	default:
		return fmt.Errorf("unknown format %q (must be text, json or yaml)", format)
	}
}
