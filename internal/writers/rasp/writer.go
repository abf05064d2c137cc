// Package rasp writes RASP engine files (.eng): comment lines, a
// space-delimited header in millimetres and kilograms, and the thrust
// table at three decimal places with newline endings. Output re-loads
// through the rasp loader to the same engine within that precision.
package rasp

import (
	"context"
	"strings"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.EngineWriter = (*Writer)(nil)

// tablePrecision is the decimal places RASP thrust tables use.
const tablePrecision = 3

// Writer serialises engines in RASP format.
type Writer struct{}

// New creates a RASP engine writer.
func New() *Writer {
	return &Writer{}
}

// Dump renders the engine. Spaces inside the designation and
// manufacturer collapse to hyphens: the header is space-delimited.
func (w *Writer) Dump(_ context.Context, engine domain.Engine, _ convert.Options) ([]byte, error) {
	var b strings.Builder

	for _, line := range commentLines(engine.Comments) {
		b.WriteString(";")
		b.WriteString(line)
		b.WriteString("\n")
	}

	delays := engine.Delays
	if delays == "" {
		delays = "0"
	}
	header := []string{
		spaceless(engine.Designation),
		convert.FormatFixed(convert.MetresToMillimetres(engine.Diameter), 0),
		convert.FormatFixed(convert.MetresToMillimetres(engine.Length), 0),
		delays,
		convert.FormatFixed(engine.PropellantMass, 4),
		convert.FormatFixed(engine.TotalMass(), 4),
		spaceless(engine.Manufacturer),
	}
	b.WriteString(strings.Join(header, " "))
	b.WriteString("\n")

	for _, p := range engine.Curve {
		b.WriteString(convert.FormatFixed(p.Time, tablePrecision))
		b.WriteString(" ")
		b.WriteString(convert.FormatFixed(p.Thrust, tablePrecision))
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

// commentLines splits the stored comment block into lines, dropping a
// trailing empty line so round trips do not grow the block.
func commentLines(comments string) []string {
	if comments == "" {
		return nil
	}
	lines := strings.Split(comments, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func spaceless(s string) string {
	if s == "" {
		return "unknown"
	}
	return strings.ReplaceAll(s, " ", "-")
}
