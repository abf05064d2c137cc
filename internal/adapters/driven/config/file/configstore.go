// Package file is the TOML-file implementation of the config store.
// Conversion defaults live in config.toml under the rocketdoc config
// directory; unset fields fall back to the built-in defaults.
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileConfig is the on-disk schema. Pointers distinguish unset fields
// from explicit zeroes.
type fileConfig struct {
	Precision    *int `toml:"precision,omitempty"`
	CanvasWidth  *int `toml:"canvas_width,omitempty"`
	CanvasHeight *int `toml:"canvas_height,omitempty"`
	CanvasMargin *int `toml:"canvas_margin,omitempty"`
}

// ConfigStore persists conversion defaults in a TOML file.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	config   fileConfig
}

// NewConfigStore creates a TOML-based config store. An empty configDir
// defaults to ~/.rocketdoc.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".rocketdoc")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}
	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Options returns the stored conversion options, with built-in
// defaults for anything the file does not set.
func (s *ConfigStore) Options() convert.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()

	opts := convert.DefaultOptions()
	if s.config.Precision != nil {
		opts.Precision = *s.config.Precision
	}
	if s.config.CanvasWidth != nil {
		opts.CanvasWidth = *s.config.CanvasWidth
	}
	if s.config.CanvasHeight != nil {
		opts.CanvasHeight = *s.config.CanvasHeight
	}
	if s.config.CanvasMargin != nil {
		opts.CanvasMargin = *s.config.CanvasMargin
	}
	return opts
}

// SetOptions persists conversion options immediately.
func (s *ConfigStore) SetOptions(opts convert.Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = fileConfig{
		Precision:    &opts.Precision,
		CanvasWidth:  &opts.CanvasWidth,
		CanvasHeight: &opts.CanvasHeight,
		CanvasMargin: &opts.CanvasMargin,
	}
	return s.save()
}

// load reads the config file into memory.
func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, &s.config)
}

// save writes the config file atomically via a temp file rename.
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.config)
	if err != nil {
		return err
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}
