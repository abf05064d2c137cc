// Package native writes rocketdoc's own TOML document format. Its
// output reconstructs the model exactly through the paired native
// loader: dump then load is the identity for every valid document.
package native

import (
	"context"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rocketdoc-cli/internal/nativedoc"
)

// Ensure the writers implement their interfaces.
var (
	_ driven.RocketWriter = (*Writer)(nil)
	_ driven.EngineWriter = (*EngineWriter)(nil)
)

// Writer serialises rocket designs as native TOML.
type Writer struct{}

// New creates a native design writer.
func New() *Writer {
	return &Writer{}
}

// Dump renders the design. Floats are written with the shortest exact
// decimal representation, so precision options do not apply here.
func (w *Writer) Dump(_ context.Context, rocket domain.Rocket, _ convert.Options) ([]byte, error) {
	return nativedoc.EncodeRocket(rocket)
}

// EngineWriter serialises standalone engines as native TOML.
type EngineWriter struct{}

// NewEngine creates a native engine writer.
func NewEngine() *EngineWriter {
	return &EngineWriter{}
}

// Dump renders the engine.
func (w *EngineWriter) Dump(_ context.Context, engine domain.Engine, _ convert.Options) ([]byte, error) {
	return nativedoc.EncodeEngine(engine)
}
