package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rocketdoc-cli/internal/adapters/driven/config/file"
)

var (
	configSetPrecision    int
	configSetCanvasWidth  int
	configSetCanvasHeight int
	configSetCanvasMargin int
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted conversion defaults",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current conversion defaults",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set conversion defaults",
	RunE:  runConfigSet,
}

func init() {
	configSetCmd.Flags().IntVar(&configSetPrecision, "precision", -1, "decimal places for numeric output")
	configSetCmd.Flags().IntVar(&configSetCanvasWidth, "canvas-width", 0, "SVG canvas width in pixels")
	configSetCmd.Flags().IntVar(&configSetCanvasHeight, "canvas-height", 0, "SVG canvas height in pixels")
	configSetCmd.Flags().IntVar(&configSetCanvasMargin, "canvas-margin", -1, "SVG canvas margin in pixels")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := file.NewConfigStore(configDirFlag)
	if err != nil {
		return err
	}
	opts := store.Options()
	cmd.Printf("precision:     %d\n", opts.Precision)
	cmd.Printf("canvas width:  %d px\n", opts.CanvasWidth)
	cmd.Printf("canvas height: %d px\n", opts.CanvasHeight)
	cmd.Printf("canvas margin: %d px\n", opts.CanvasMargin)
	return nil
}

func runConfigSet(cmd *cobra.Command, _ []string) error {
	store, err := file.NewConfigStore(configDirFlag)
	if err != nil {
		return err
	}

	opts := store.Options()
	if configSetPrecision >= 0 {
		opts.Precision = configSetPrecision
	}
	if configSetCanvasWidth > 0 {
		opts.CanvasWidth = configSetCanvasWidth
	}
	if configSetCanvasHeight > 0 {
		opts.CanvasHeight = configSetCanvasHeight
	}
	if configSetCanvasMargin >= 0 {
		opts.CanvasMargin = configSetCanvasMargin
	}
	if err := store.SetOptions(opts); err != nil {
		return err
	}
	return runConfigShow(cmd, nil)
}
