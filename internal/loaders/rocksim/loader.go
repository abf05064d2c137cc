// Package rocksim loads RockSim engine interchange files: the same
// header-plus-table shape as RASP but semicolon-delimited, with the
// manufacturer in the second column, masses in grams, and CRLF line
// endings. The loader accepts the exact layout the rocksim writer
// emits.
package rocksim

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

// headerFields is the positional field count: designation,
// manufacturer, diameter, length, propellant mass, total mass, delays.
const headerFields = 7

// Loader parses RockSim engine files.
type Loader struct{}

// New creates a RockSim engine loader.
func New() *Loader {
	return &Loader{}
}

// Load parses a single RockSim engine definition.
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

		fields := strings.Split(line, ";")
		if len(fields) != 2 {
			return nil, fmt.Errorf("rocksim: line %d: thrust row has %d columns, want 2: %w",
				i+1, len(fields), domain.ErrParse)
		}
		t, err := convert.ParseFloat("time", strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("rocksim: line %d: %v: %w", i+1, err, domain.ErrParse)
		}
		thrust, err := convert.ParseFloat("thrust", strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("rocksim: line %d: %v: %w", i+1, err, domain.ErrParse)
		}
		engine.Curve = append(engine.Curve, domain.ThrustSample{Time: t, Thrust: thrust})
	}

	if !inTable {
		return nil, fmt.Errorf("rocksim: no header line found: %w", domain.ErrParse)
	}
	engine.Comments = comments.String()

	if len(engine.Curve) > 0 && engine.Curve[0].Time > 0 {
		engine.Curve = append([]domain.ThrustSample{{Time: 0, Thrust: 0}}, engine.Curve...)
	}

	validated, warnings, err := domain.NewEngine(engine)
	if err != nil {
		return nil, fmt.Errorf("rocksim: %w", err)
	}
	return &driven.EngineResult{Engine: validated, Warnings: warnings}, nil
}

// parseHeader decodes the semicolon-delimited header. Masses arrive in
// grams and are normalised to kilograms here; the model never sees
// source units.
func parseHeader(engine *domain.Engine, line string, lineno int) error {
	fields := strings.Split(line, ";")
	if len(fields) != headerFields {
		return fmt.Errorf("rocksim: line %d: header has %d fields, want %d: %w",
			lineno, len(fields), headerFields, domain.ErrParse)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	engine.Designation = fields[0]
	engine.Manufacturer = fields[1]
	engine.Delays = fields[6]

	diameter, err := convert.ParseFloat("diameter", fields[2])
	if err != nil {
		return fmt.Errorf("rocksim: line %d: %v: %w", lineno, err, domain.ErrParse)
	}
	length, err := convert.ParseFloat("length", fields[3])
	if err != nil {
		return fmt.Errorf("rocksim: line %d: %v: %w", lineno, err, domain.ErrParse)
	}
	propGrams, err := convert.ParseFloat("propellant mass", fields[4])
	if err != nil {
		return fmt.Errorf("rocksim: line %d: %v: %w", lineno, err, domain.ErrParse)
	}
	totalGrams, err := convert.ParseFloat("total mass", fields[5])
	if err != nil {
		return fmt.Errorf("rocksim: line %d: %v: %w", lineno, err, domain.ErrParse)
	}
	if totalGrams < propGrams {
		return fmt.Errorf("rocksim: line %d: total mass %g g below propellant mass %g g: %w",
			lineno, totalGrams, propGrams, domain.ErrValidation)
	}

	engine.Diameter = convert.MillimetresToMetres(diameter)
	engine.Length = convert.MillimetresToMetres(length)
	engine.PropellantMass = convert.GramsToKilograms(propGrams)
	engine.CaseMass = convert.GramsToKilograms(totalGrams - propGrams)

	if d, err := domain.ParseDesignation(engine.Designation); err == nil {
		engine.DeclaredAvgThrust = d.AvgThrust
	}
	return nil
}
