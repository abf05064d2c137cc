// Package rocksim writes RockSim engine interchange files: a
// semicolon-delimited header with masses in grams, thrust rows at four
// decimal places, and CRLF line endings throughout. Output re-loads
// through the rocksim loader to the same engine within that precision.
package rocksim

import (
	"context"
	"strings"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.EngineWriter = (*Writer)(nil)

// tablePrecision is the decimal places RockSim thrust rows use.
const tablePrecision = 4

// Writer serialises engines in RockSim format.
type Writer struct{}

// New creates a RockSim engine writer.
func New() *Writer {
	return &Writer{}
}

// Dump renders the engine. Semicolons inside the designation and
// manufacturer collapse to hyphens so the delimiter stays unambiguous.
func (w *Writer) Dump(_ context.Context, engine domain.Engine, _ convert.Options) ([]byte, error) {
	var b strings.Builder

	delays := engine.Delays
	if delays == "" {
		delays = "0"
	}
	header := []string{
		unambiguous(engine.Designation),
		unambiguous(engine.Manufacturer),
		convert.FormatFixed(convert.MetresToMillimetres(engine.Diameter), 0),
		convert.FormatFixed(convert.MetresToMillimetres(engine.Length), 0),
		convert.FormatFixed(convert.KilogramsToGrams(engine.PropellantMass), tablePrecision),
		convert.FormatFixed(convert.KilogramsToGrams(engine.TotalMass()), tablePrecision),
		delays,
	}
	b.WriteString(strings.Join(header, ";"))
	b.WriteString("\r\n")

	for _, p := range engine.Curve {
		b.WriteString(convert.FormatFixed(p.Time, tablePrecision))
		b.WriteString(";")
		b.WriteString(convert.FormatFixed(p.Thrust, tablePrecision))
		b.WriteString("\r\n")
	}

	return []byte(b.String()), nil
}

func unambiguous(s string) string {
	if s == "" {
		return "unknown"
	}
	return strings.ReplaceAll(s, ";", "-")
}
