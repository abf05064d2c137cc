// Package native loads rocketdoc's own TOML document format, the
// paired inverse of the native writer. A native file holds either a
// full rocket design or a standalone engine; the two loader types here
// insist on one kind each.
package native

import (
	"context"
	"fmt"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rocketdoc-cli/internal/nativedoc"
)

// Ensure the loaders implement their interfaces.
var (
	_ driven.RocketLoader = (*Loader)(nil)
	_ driven.EngineLoader = (*EngineLoader)(nil)
)

// Loader parses native files holding a rocket design.
type Loader struct{}

// New creates a native design loader.
func New() *Loader {
	return &Loader{}
}

// Load parses a native file that must hold a rocket design.
func (l *Loader) Load(_ context.Context, data []byte, _ convert.Options) (*driven.RocketResult, error) {
	rocket, _, warnings, err := nativedoc.Decode(data)
	if err != nil {
		return nil, err
	}
	if rocket == nil {
		return nil, fmt.Errorf("native: file holds an engine, not a rocket design: %w", domain.ErrParse)
	}
	return &driven.RocketResult{Rocket: *rocket, Warnings: warnings}, nil
}

// EngineLoader parses native files holding a standalone engine.
type EngineLoader struct{}

// NewEngine creates a native engine loader.
func NewEngine() *EngineLoader {
	return &EngineLoader{}
}

// Load parses a native file that must hold a standalone engine.
func (l *EngineLoader) Load(_ context.Context, data []byte, _ convert.Options) (*driven.EngineResult, error) {
	_, engine, warnings, err := nativedoc.Decode(data)
	if err != nil {
		return nil, err
	}
	if engine == nil {
		return nil, fmt.Errorf("native: file holds a rocket design, not an engine: %w", domain.ErrParse)
	}
	return &driven.EngineResult{Engine: *engine, Warnings: warnings}, nil
}
