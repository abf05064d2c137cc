// Package formats is the registry tying file formats to their loader
// and writer implementations. The CLI resolves formats here, by
// explicit name or by file extension, and never constructs a converter
// directly.
package formats

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
	nativeloader "github.com/custodia-labs/rocketdoc-cli/internal/loaders/native"
	openrocketloader "github.com/custodia-labs/rocketdoc-cli/internal/loaders/openrocket"
	rasploader "github.com/custodia-labs/rocketdoc-cli/internal/loaders/rasp"
	rocksimloader "github.com/custodia-labs/rocketdoc-cli/internal/loaders/rocksim"
	nativewriter "github.com/custodia-labs/rocketdoc-cli/internal/writers/native"
	raspwriter "github.com/custodia-labs/rocketdoc-cli/internal/writers/rasp"
	rocksimwriter "github.com/custodia-labs/rocketdoc-cli/internal/writers/rocksim"
	svgwriter "github.com/custodia-labs/rocketdoc-cli/internal/writers/svg"
)

// Format bundles the capabilities of one file format. Nil fields mean
// the direction or document kind is unsupported there.
type Format struct {
	// Name is the registry key, e.g. "rasp".
	Name string

	// Extensions are recognised filename extensions, dot included.
	Extensions []string

	RocketLoader driven.RocketLoader
	EngineLoader driven.EngineLoader
	RocketWriter driven.RocketWriter
	EngineWriter driven.EngineWriter
}

// Registry maps format names and extensions to Format entries.
type Registry struct {
	byName map[string]*Format
	byExt  map[string]*Format
}

// NewRegistry creates an empty format registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Format),
		byExt:  make(map[string]*Format),
	}
}

// Register adds a format. Later registrations win extension conflicts.
func (r *Registry) Register(f *Format) {
	r.byName[f.Name] = f
	for _, ext := range f.Extensions {
		r.byExt[strings.ToLower(ext)] = f
	}
}

// ByName looks a format up by its registry name.
func (r *Registry) ByName(name string) (*Format, error) {
	f, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("format %q: %w", name, domain.ErrUnsupported)
	}
	return f, nil
}

// ByExtension infers the format from a file path's extension.
func (r *Registry) ByExtension(path string) (*Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("no format for extension %q: %w", ext, domain.ErrUnsupported)
	}
	return f, nil
}

// Names returns all registered format names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default builds the registry with every built-in format.
func Default() *Registry {
	r := NewRegistry()
	r.Register(&Format{
		Name:         "native",
		Extensions:   []string{".ord", ".orde"},
		RocketLoader: nativeloader.New(),
		EngineLoader: nativeloader.NewEngine(),
		RocketWriter: nativewriter.New(),
		EngineWriter: nativewriter.NewEngine(),
	})
	r.Register(&Format{
		Name:         "openrocket",
		Extensions:   []string{".ork"},
		RocketLoader: openrocketloader.New(),
	})
	r.Register(&Format{
		Name:         "rasp",
		Extensions:   []string{".eng"},
		EngineLoader: rasploader.New(),
		EngineWriter: raspwriter.New(),
	})
	r.Register(&Format{
		Name:         "rocksim",
		Extensions:   []string{".rse"},
		EngineLoader: rocksimloader.New(),
		EngineWriter: rocksimwriter.New(),
	})
	r.Register(&Format{
		Name:         "svg",
		Extensions:   []string{".svg"},
		RocketWriter: svgwriter.New(),
	})
	return r
}
