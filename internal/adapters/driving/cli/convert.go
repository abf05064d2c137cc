package cli

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/formats"
	"github.com/custodia-labs/rocketdoc-cli/internal/logger"
)

var (
	convertFrom  string
	convertTo    string
	convertWatch bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a design or engine file between formats",
	Long: `Converts the input file to the output format. Formats are inferred
from file extensions (.ord, .ork, .eng, .rse, .svg) unless set
explicitly with --from and --to.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "input format (default: inferred from extension)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "output format (default: inferred from extension)")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "re-run the conversion whenever the input changes")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	in, err := resolveFormat(convertFrom, input)
	if err != nil {
		return err
	}
	out, err := resolveFormat(convertTo, output)
	if err != nil {
		return err
	}

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	if err := convertOnce(cmd, in, out, input, output, opts); err != nil {
		return err
	}
	if !convertWatch {
		return nil
	}
	return watchAndConvert(cmd, in, out, input, output, opts)
}

// resolveFormat picks a format by explicit name or by file extension.
func resolveFormat(name, path string) (*formats.Format, error) {
	if name != "" {
		return registry.ByName(name)
	}
	return registry.ByExtension(path)
}

func convertOnce(cmd *cobra.Command, in, out *formats.Format, input, output string, opts convert.Options) error {
	logger.Section(fmt.Sprintf("convert %s -> %s", in.Name, out.Name))

	data, err := readInput(input)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	// Prefer the design path; fall back to the engine path when the
	// input turns out to hold an engine (native files can carry either).
	if in.RocketLoader != nil && out.RocketWriter != nil {
		result, err := in.RocketLoader.Load(ctx, data, opts)
		if err == nil {
			printWarnings(cmd, result.Warnings)
			rendered, err := out.RocketWriter.Dump(ctx, result.Rocket, opts)
			if err != nil {
				return err
			}
			logger.Debug("writing %s design to %s", out.Name, output)
			return os.WriteFile(output, rendered, 0644)
		}
		if in.EngineLoader == nil || out.EngineWriter == nil {
			return err
		}
		logger.Debug("not a design document, retrying as engine: %v", err)
	}

	if in.EngineLoader != nil && out.EngineWriter != nil {
		result, err := in.EngineLoader.Load(ctx, data, opts)
		if err != nil {
			return err
		}
		printWarnings(cmd, result.Warnings)
		rendered, err := out.EngineWriter.Dump(ctx, result.Engine, opts)
		if err != nil {
			return err
		}
		logger.Debug("writing %s engine to %s", out.Name, output)
		return os.WriteFile(output, rendered, 0644)
	}

	return fmt.Errorf("cannot convert %s to %s: no shared document kind: %w",
		in.Name, out.Name, domain.ErrUnsupported)
}

// watchAndConvert re-runs the conversion on every change to the input
// file until the command context is cancelled. The parent directory is
// watched because editors replace files by rename.
func watchAndConvert(cmd *cobra.Command, in, out *formats.Format, input, output string, opts convert.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	cmd.PrintErrf("watching %s\n", input)

	target := filepath.Clean(input)
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("input changed (%s), reconverting", event.Op)
			if err := convertOnce(cmd, in, out, input, output, opts); err != nil {
				cmd.PrintErrf("convert: %v\n", err)
				continue
			}
			cmd.PrintErrf("wrote %s\n", output)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch: %v\n", err)
		}
	}
}

// readInput reads the input file, transparently unpacking OpenRocket's
// zip container when present. The design XML is the archive entry named
// *.ork, or the first entry if none matches.
func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		return data, nil
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.Warn("%s: archive signature but not a readable zip, passing bytes through", path)
		return data, nil
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("%s: archive is empty: %w", path, domain.ErrParse)
	}

	entry := r.File[0]
	for _, f := range r.File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".ork") {
			entry = f
			break
		}
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("%s: opening archive entry %s: %w", path, entry.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: reading archive entry %s: %w", path, entry.Name, err)
	}
	return content, nil
}
