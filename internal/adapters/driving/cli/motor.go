package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rocketdoc-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rocketdoc-cli/internal/logger"
)

var motorImportFrom string

var motorCmd = &cobra.Command{
	Use:   "motor",
	Short: "Manage the local motor library",
	Long: `The motor library keeps imported engines in a local database,
indexed by designation, so designs can reference motors without
carrying the original files around.`,
}

var motorImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an engine file into the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runMotorImport,
}

var motorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List motors in the library",
	Args:  cobra.NoArgs,
	RunE:  runMotorList,
}

var motorShowCmd = &cobra.Command{
	Use:   "show <designation>",
	Short: "Show a motor's derived figures",
	Args:  cobra.ExactArgs(1),
	RunE:  runMotorShow,
}

var motorExportCmd = &cobra.Command{
	Use:   "export <designation> <output>",
	Short: "Write a library motor to an engine file",
	Args:  cobra.ExactArgs(2),
	RunE:  runMotorExport,
}

var motorDeleteCmd = &cobra.Command{
	Use:   "delete <designation>",
	Short: "Remove a motor from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runMotorDelete,
}

func init() {
	motorImportCmd.Flags().StringVar(&motorImportFrom, "from", "", "input format (default: inferred from extension)")
	motorCmd.AddCommand(motorImportCmd)
	motorCmd.AddCommand(motorListCmd)
	motorCmd.AddCommand(motorShowCmd)
	motorCmd.AddCommand(motorExportCmd)
	motorCmd.AddCommand(motorDeleteCmd)
	rootCmd.AddCommand(motorCmd)
}

func openMotorStore() (driven.MotorStore, error) {
	return sqlite.NewMotorStore(dataDirFlag)
}

func runMotorImport(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(motorImportFrom, args[0])
	if err != nil {
		return err
	}
	if format.EngineLoader == nil {
		return fmt.Errorf("format %s holds no engine: %w", format.Name, domain.ErrUnsupported)
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	result, err := format.EngineLoader.Load(cmd.Context(), data, opts)
	if err != nil {
		return err
	}
	printWarnings(cmd, result.Warnings)

	store, err := openMotorStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(cmd.Context(), driven.StoredMotor{Engine: result.Engine}); err != nil {
		return err
	}
	logger.Info("imported motor %s", result.Engine.Designation)
	cmd.Printf("imported %s (%s, %.1f N*s)\n",
		result.Engine.Designation, result.Engine.ImpulseClass(), result.Engine.TotalImpulse())
	return nil
}

func runMotorList(cmd *cobra.Command, _ []string) error {
	store, err := openMotorStore()
	if err != nil {
		return err
	}
	defer store.Close()

	motors, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(motors) == 0 {
		cmd.Println("no motors in the library")
		return nil
	}

	cmd.Printf("%-12s %-14s %-6s %10s %8s %8s\n",
		"DESIGNATION", "MANUFACTURER", "CLASS", "IMPULSE", "DIA", "LEN")
	for _, m := range motors {
		cmd.Printf("%-12s %-14s %-6s %8.1f Ns %5.0f mm %5.0f mm\n",
			m.Designation, m.Manufacturer, m.ImpulseClass,
			m.TotalImpulse, m.Diameter*1000, m.Length*1000)
	}
	return nil
}

func runMotorShow(cmd *cobra.Command, args []string) error {
	store, err := openMotorStore()
	if err != nil {
		return err
	}
	defer store.Close()

	motor, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printEngine(cmd, motor.Engine)
	return nil
}

func runMotorExport(cmd *cobra.Command, args []string) error {
	format, err := registry.ByExtension(args[1])
	if err != nil {
		return err
	}
	if format.EngineWriter == nil {
		return fmt.Errorf("format %s cannot write engines: %w", format.Name, domain.ErrUnsupported)
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	store, err := openMotorStore()
	if err != nil {
		return err
	}
	defer store.Close()

	motor, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	rendered, err := format.EngineWriter.Dump(cmd.Context(), motor.Engine, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(args[1], rendered, 0644)
}

func runMotorDelete(cmd *cobra.Command, args []string) error {
	store, err := openMotorStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Printf("deleted %s\n", args[0])
	return nil
}
