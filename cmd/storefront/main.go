// Command storefront serves the Kurly storefront pages and inspects its
// route table.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/pkg/logging"
	"github.com/JaimeStill/storefront/pkg/web"
	"github.com/JaimeStill/storefront/web/storefront"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Kurly storefront page server",
		Long:         "Serves the storefront views over HTTP and inspects the route table that binds paths to views.",
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.BaseConfigFile, "path to the base configuration file")

	root.AddCommand(
		newServeCmd(&configPath),
		newRoutesCmd(&configPath),
		newResolveCmd(&configPath),
	)

	return root
}

// loadConfig reads, overlays and finalizes the configuration at path.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("config finalize failed: %w", err)
	}
	return cfg, nil
}

// loadTable builds the storefront route table, logging registration
// warnings to w.
func loadTable(cfg *config.Config, w io.Writer) (*web.Table, error) {
	logger := logging.New(&cfg.Logging, w)
	table, err := web.NewTable(storefront.Entries, cfg.Site.Duplicates, logger)
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}
	return table, nil
}
