// Package cli is the cobra command surface of rocketdoc. Commands are
// package variables wired to the root in init(); dependencies (format
// registry, stores) are resolved inside the run functions so tests can
// point them at temp directories through flags.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rocketdoc-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/formats"
	"github.com/custodia-labs/rocketdoc-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verboseFlag   bool
	configDirFlag string
	dataDirFlag   string
	precisionFlag int
)

// registry holds the built-in formats; tests never need to swap it.
var registry = formats.Default()

var rootCmd = &cobra.Command{
	Use:   "rocketdoc",
	Short: "Rocket design and motor file converter",
	Long: `rocketdoc converts model rocket design and motor files between
formats: OpenRocket designs, RASP and RockSim engine files, SVG
renderings, and rocketdoc's own canonical format. It also keeps a
local motor library.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.rocketdoc)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default ~/.rocketdoc/data)")
	rootCmd.PersistentFlags().IntVar(&precisionFlag, "precision", -1, "decimal places for numeric output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadOptions merges persisted conversion defaults with flag overrides.
func loadOptions() (convert.Options, error) {
	store, err := file.NewConfigStore(configDirFlag)
	if err != nil {
		return convert.Options{}, err
	}
	opts := store.Options()
	if precisionFlag >= 0 {
		opts.Precision = precisionFlag
	}
	return opts, nil
}

// printWarnings reports loader warnings on stderr without failing the
// command. Warnings describe the document, not the conversion.
func printWarnings(cmd *cobra.Command, warnings []domain.Warning) {
	for _, w := range warnings {
		cmd.PrintErrf("warning: %s\n", w)
	}
}
