// Package memory provides in-memory driven adapters for tests and for
// running without a data directory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
)

var _ driven.MotorStore = (*MotorStore)(nil)

// MotorStore is an in-memory motor library keyed by designation.
type MotorStore struct {
	mu     sync.RWMutex
	motors map[string]driven.StoredMotor
}

// NewMotorStore creates an empty in-memory motor library.
func NewMotorStore() *MotorStore {
	return &MotorStore{motors: make(map[string]driven.StoredMotor)}
}

// Save inserts a motor, deriving the indexed fields from the engine.
func (s *MotorStore) Save(_ context.Context, motor driven.StoredMotor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	designation := motor.Engine.Designation
	if _, exists := s.motors[designation]; exists {
		return fmt.Errorf("motor %q: %w", designation, domain.ErrAlreadyExists)
	}

	if motor.ID == "" {
		motor.ID = uuid.NewString()
	}
	if motor.CreatedAt.IsZero() {
		motor.CreatedAt = time.Now().UTC()
	}
	motor.Designation = designation
	motor.Manufacturer = motor.Engine.Manufacturer
	motor.Diameter = motor.Engine.Diameter
	motor.Length = motor.Engine.Length
	motor.TotalImpulse = motor.Engine.TotalImpulse()
	motor.ImpulseClass = motor.Engine.ImpulseClass()

	s.motors[designation] = motor
	return nil
}

// Get retrieves a motor by designation.
func (s *MotorStore) Get(_ context.Context, designation string) (*driven.StoredMotor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	motor, ok := s.motors[designation]
	if !ok {
		return nil, fmt.Errorf("motor %q: %w", designation, domain.ErrNotFound)
	}
	return &motor, nil
}

// List returns all motors ordered by designation.
func (s *MotorStore) List(_ context.Context) ([]driven.StoredMotor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	motors := make([]driven.StoredMotor, 0, len(s.motors))
	for _, m := range s.motors {
		motors = append(motors, m)
	}
	sort.Slice(motors, func(i, j int) bool {
		return motors[i].Designation < motors[j].Designation
	})
	return motors, nil
}

// Delete removes a motor by designation.
func (s *MotorStore) Delete(_ context.Context, designation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.motors[designation]; !ok {
		return fmt.Errorf("motor %q: %w", designation, domain.ErrNotFound)
	}
	delete(s.motors, designation)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MotorStore) Close() error {
	return nil
}
