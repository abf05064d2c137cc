// Package rasp loads RASP engine files (.eng): a line-oriented text
// format with ';' comment lines, one space-delimited header, and a
// (time, thrust) table in seconds and newtons. Header lengths are in
// millimetres, masses in kilograms.
package rasp

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.EngineLoader = (*Loader)(nil)

// headerFields is the positional field count of a RASP header:
// designation, diameter, length, delays, propellant mass, total mass,
// manufacturer.
const headerFields = 7

// Loader parses RASP engine files.
type Loader struct{}

// New creates a RASP engine loader.
func New() *Loader {
	return &Loader{}
}

// Load parses a single RASP engine definition.
func (l *Loader) Load(_ context.Context, data []byte, _ convert.Options) (*driven.EngineResult, error) {
	var (
		engine   domain.Engine
		comments strings.Builder
		inTable  bool
	)

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, ";") {
			// Comment lines before the header belong to the motor.
			if !inTable {
				comments.WriteString(strings.TrimPrefix(line, ";"))
				comments.WriteString("\n")
			}
			continue
		}

		if !inTable {
			if err := parseHeader(&engine, line, i+1); err != nil {
				return nil, err
			}
			inTable = true
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("rasp: line %d: thrust row has %d columns, want 2: %w",
				i+1, len(fields), domain.ErrParse)
		}
		t, err := convert.ParseFloat("time", fields[0])
		if err != nil {
			return nil, fmt.Errorf("rasp: line %d: %v: %w", i+1, err, domain.ErrParse)
		}
		thrust, err := convert.ParseFloat("thrust", fields[1])
		if err != nil {
			return nil, fmt.Errorf("rasp: line %d: %v: %w", i+1, err, domain.ErrParse)
		}
		engine.Curve = append(engine.Curve, domain.ThrustSample{Time: t, Thrust: thrust})
	}

	if !inTable {
		return nil, fmt.Errorf("rasp: no header line found: %w", domain.ErrParse)
	}
	engine.Comments = comments.String()

	// RASP tables conventionally omit the implicit ignition sample.
	if len(engine.Curve) > 0 && engine.Curve[0].Time > 0 {
		engine.Curve = append([]domain.ThrustSample{{Time: 0, Thrust: 0}}, engine.Curve...)
	}

	validated, warnings, err := domain.NewEngine(engine)
	if err != nil {
		return nil, fmt.Errorf("rasp: %w", err)
	}
	warnings = append(warnings, designationWarnings(validated)...)
	return &driven.EngineResult{Engine: validated, Warnings: warnings}, nil
}

// parseHeader decodes the positional header line and derives the
// declared average thrust from the designation grammar, since RASP
// headers carry no explicit thrust figure.
func parseHeader(engine *domain.Engine, line string, lineno int) error {
	fields := strings.Fields(line)
	if len(fields) < headerFields {
		return fmt.Errorf("rasp: line %d: header has %d fields, want %d: %w",
			lineno, len(fields), headerFields, domain.ErrParse)
	}

	engine.Designation = fields[0]
	engine.Delays = fields[3]
	engine.Manufacturer = fields[6]

	diameter, err := convert.ParseFloat("diameter", fields[1])
	if err != nil {
		return fmt.Errorf("rasp: line %d: %v: %w", lineno, err, domain.ErrParse)
	}
	length, err := convert.ParseFloat("length", fields[2])
	if err != nil {
		return fmt.Errorf("rasp: line %d: %v: %w", lineno, err, domain.ErrParse)
	}
	propMass, err := convert.ParseFloat("propellant mass", fields[4])
	if err != nil {
		return fmt.Errorf("rasp: line %d: %v: %w", lineno, err, domain.ErrParse)
	}
	totalMass, err := convert.ParseFloat("total mass", fields[5])
	if err != nil {
		return fmt.Errorf("rasp: line %d: %v: %w", lineno, err, domain.ErrParse)
	}
	if totalMass < propMass {
		return fmt.Errorf("rasp: line %d: total mass %g below propellant mass %g: %w",
			lineno, totalMass, propMass, domain.ErrValidation)
	}

	engine.Diameter = convert.MillimetresToMetres(diameter)
	engine.Length = convert.MillimetresToMetres(length)
	engine.PropellantMass = propMass
	engine.CaseMass = totalMass - propMass

	if d, err := domain.ParseDesignation(engine.Designation); err == nil {
		engine.DeclaredAvgThrust = d.AvgThrust
	}
	return nil
}

// designationWarnings compares the impulse class encoded in the
// designation against the class of the integrated curve.
func designationWarnings(e domain.Engine) []domain.Warning {
	d, err := domain.ParseDesignation(e.Designation)
	if err != nil {
		return nil
	}
	if got := e.ImpulseClass(); got != "" && got != d.Class {
		return []domain.Warning{{
			Kind:    domain.WarnConsistency,
			Field:   "impulse class",
			Message: fmt.Sprintf("designation says %s but curve integrates to class %s", d.Class, got),
		}}
	}
	return nil
}
