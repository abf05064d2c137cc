package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/logger"
	"github.com/custodia-labs/rocketdoc-cli/internal/writers/svg"
)

var (
	renderFrom   string
	renderWidth  int
	renderHeight int
	renderMargin int
)

var renderCmd = &cobra.Command{
	Use:   "render <input> <output.svg>",
	Short: "Render a design file as an SVG side view",
	Args:  cobra.ExactArgs(2),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderFrom, "from", "", "input format (default: inferred from extension)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "canvas width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "canvas height in pixels")
	renderCmd.Flags().IntVar(&renderMargin, "margin", -1, "canvas margin in pixels")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(renderFrom, args[0])
	if err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	if renderWidth > 0 {
		opts.CanvasWidth = renderWidth
	}
	if renderHeight > 0 {
		opts.CanvasHeight = renderHeight
	}
	if renderMargin >= 0 {
		opts.CanvasMargin = renderMargin
	}

	if format.RocketLoader == nil {
		return fmt.Errorf("format %s holds no rocket design: %w", format.Name, domain.ErrUnsupported)
	}
	data, err := readInput(args[0])
	if err != nil {
		return err
	}
	result, err := format.RocketLoader.Load(cmd.Context(), data, opts)
	if err != nil {
		return err
	}
	printWarnings(cmd, result.Warnings)

	rendered, err := svg.New().Dump(cmd.Context(), result.Rocket, opts)
	if err != nil {
		return err
	}
	logger.Debug("rendering %q to %s", result.Rocket.Name, args[1])
	return os.WriteFile(args[1], rendered, 0644)
}
