package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JaimeStill/storefront/internal/api"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func newRoutesCmd(configPath *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the storefront route table",
		Long:  "Prints every route in registration order with its view, template and ServeMux pattern.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			table, err := loadTable(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return writeRoutes(cmd.OutOrStdout(), format, api.Describe(table))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	return cmd
}

func writeRoutes(w io.Writer, format string, infos []api.RouteInfo) error {
	switch format {
	case formatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PATH\tVIEW\tTEMPLATE\tPATTERN")
		for _, info := range infos {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Path, info.View, info.Template, info.Pattern)
		}
		return tw.Flush()
	case formatJSON:
		return writeJSON(w, infos)
	case formatYAML:
		return writeYAML(w, infos)
	default:
		return fmt.Errorf("unknown format %q (must be table, json or yaml)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
