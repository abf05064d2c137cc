package driven

import (
	"context"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
)

// RocketLoader parses raw design-file bytes into the canonical model.
// Implementations are pure: no I/O, no shared state, safe for
// concurrent use. A load either succeeds completely or fails with an
// error wrapping domain.ErrParse or domain.ErrValidation; it never
// returns a partially populated rocket.
type RocketLoader interface {
	// Load parses a complete design document.
	Load(ctx context.Context, data []byte, opts convert.Options) (*RocketResult, error)
}

// RocketResult is a loaded design plus the non-fatal findings raised
// while mapping it.
type RocketResult struct {
	Rocket domain.Rocket

	// Warnings records skipped constructs and consistency findings.
	Warnings []domain.Warning
}

// EngineLoader parses raw engine-file bytes into a canonical Engine.
// Unlike design loads, recognised-but-unsupported constructs are fatal
// here: there is no safe partial result for a motor.
type EngineLoader interface {
	// Load parses a single engine definition.
	Load(ctx context.Context, data []byte, opts convert.Options) (*EngineResult, error)
}

// EngineResult is a loaded engine plus non-fatal findings.
type EngineResult struct {
	Engine domain.Engine

	// Warnings records consistency findings (e.g. declared vs
	// integrated total impulse).
	Warnings []domain.Warning
}
