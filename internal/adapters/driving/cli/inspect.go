package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/geometry"
)

var inspectFrom string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show derived figures for a design or engine file",
	Long: `Loads the file and prints the quantities derived from it: length,
mass and centre of gravity for designs; impulse, class, burn time and
specific impulse for engines.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFrom, "from", "", "input format (default: inferred from extension)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(inspectFrom, args[0])
	if err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	data, err := readInput(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if format.RocketLoader != nil {
		result, err := format.RocketLoader.Load(ctx, data, opts)
		if err == nil {
			printWarnings(cmd, result.Warnings)
			printRocket(cmd, result.Rocket)
			return nil
		}
		if format.EngineLoader == nil {
			return err
		}
	}
	if format.EngineLoader == nil {
		return fmt.Errorf("format %s cannot be loaded: %w", format.Name, domain.ErrUnsupported)
	}

	result, err := format.EngineLoader.Load(ctx, data, opts)
	if err != nil {
		return err
	}
	printWarnings(cmd, result.Warnings)
	printEngine(cmd, result.Engine)
	return nil
}

func printRocket(cmd *cobra.Command, r domain.Rocket) {
	cmd.Printf("Rocket: %s\n", r.Name)
	if r.Description != "" {
		cmd.Printf("  %s\n", r.Description)
	}
	cmd.Printf("Stages:       %d\n", len(r.Stages))
	cmd.Printf("Length:       %.3f m\n", r.Length())
	cmd.Printf("Max diameter: %.3f m\n", geometry.MaxDiameter(r))
	cmd.Printf("Mass (loaded): %.4f kg\n", geometry.RocketMass(r))
	cmd.Printf("CG from nose: %.3f m\n", geometry.RocketCG(r))

	for i := len(r.Stages) - 1; i >= 0; i-- {
		s := r.Stages[i]
		cmd.Printf("\nStage %q (fires %s)\n", s.Name, fireOrder(i))
		cmd.Printf("  Length: %.3f m  Mass: %.4f kg\n", s.Length(), geometry.StageMass(s))
		for _, c := range s.Components {
			cmd.Printf("  - %s\n", describeComponent(c))
		}
		if s.Motor != nil {
			cmd.Printf("  Motor: %s (%s, %.1f N*s)\n",
				s.Motor.Designation, s.Motor.ImpulseClass(), s.Motor.TotalImpulse())
		}
	}
}

// fireOrder labels a flight-order stage index for humans.
func fireOrder(i int) string {
	switch i {
	case 0:
		return "first"
	case 1:
		return "second"
	case 2:
		return "third"
	}
	return fmt.Sprintf("%dth", i+1)
}

func describeComponent(c domain.Component) string {
	switch v := c.(type) {
	case domain.Nosecone:
		return fmt.Sprintf("nosecone %q: %s, %.3f m x %.3f m, %.4f kg",
			v.Name, v.Shape, v.Length, v.Diameter, geometry.NoseconeMass(v))
	case domain.Bodytube:
		return fmt.Sprintf("bodytube %q: %.3f m x %.3f m, %.4f kg",
			v.Name, v.Length, v.Diameter, geometry.BodytubeMass(v))
	case domain.Mass:
		return fmt.Sprintf("mass %q: %.4f kg at %.3f m", v.Name, v.Mass, v.Position)
	case domain.Fin:
		return fmt.Sprintf("fin %q: %.3f m root chord, %.4f kg", v.Name, v.RootChord, geometry.FinMass(v))
	case domain.Finset:
		return fmt.Sprintf("finset %q: %d fins at %.3f m, %.4f kg",
			v.Name, v.Count, v.Position, geometry.FinsetMass(v))
	}
	return "unknown component"
}

func printEngine(cmd *cobra.Command, e domain.Engine) {
	cmd.Printf("Engine: %s", e.Designation)
	if e.Manufacturer != "" {
		cmd.Printf(" (%s)", e.Manufacturer)
	}
	cmd.Println()
	cmd.Printf("Impulse class:  %s\n", e.ImpulseClass())
	cmd.Printf("Total impulse:  %.2f N*s\n", e.TotalImpulse())
	cmd.Printf("Burn time:      %.2f s\n", e.BurnTime())
	cmd.Printf("Average thrust: %.2f N\n", e.AverageThrust())
	cmd.Printf("Peak thrust:    %.2f N\n", e.PeakThrust())
	cmd.Printf("Diameter:       %.1f mm\n", e.Diameter*1000)
	cmd.Printf("Length:         %.1f mm\n", e.Length*1000)
	cmd.Printf("Total mass:     %.4f kg\n", e.TotalMass())
	cmd.Printf("Propellant:     %.4f kg (%.1f%%)\n", e.PropellantMass, e.MassFraction())
	cmd.Printf("Isp:            %.1f s\n", e.Isp())
	if e.Delays != "" {
		cmd.Printf("Delays:         %s\n", e.Delays)
	}
}
