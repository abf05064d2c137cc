package driven

import (
	"context"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
)

// RocketWriter serialises a canonical rocket design. Writers only read
// the model; they never mutate or validate it beyond what their target
// format requires.
type RocketWriter interface {
	// Dump renders the design in the writer's format.
	Dump(ctx context.Context, rocket domain.Rocket, opts convert.Options) ([]byte, error)
}

// EngineWriter serialises a canonical engine in a target format's unit
// convention, field order and numeric precision.
type EngineWriter interface {
	// Dump renders the engine in the writer's format.
	Dump(ctx context.Context, engine domain.Engine, opts convert.Options) ([]byte, error)
}
