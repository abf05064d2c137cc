package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
)

// StoredMotor is a motor-library row: the canonical engine plus the
// indexed columns the store maintains for listing and lookup.
type StoredMotor struct {
	// ID is the store-assigned row identifier.
	ID string

	// Designation is the unique motor code, e.g. "F32T".
	Designation  string
	Manufacturer string

	Diameter     float64 // m
	Length       float64 // m
	TotalImpulse float64 // N*s
	ImpulseClass string

	// Engine is the full canonical motor.
	Engine domain.Engine

	CreatedAt time.Time
}

// MotorStore persists canonical engines in the local motor library.
// Designations are unique; importing a motor that already exists fails
// with domain.ErrAlreadyExists.
type MotorStore interface {
	// Save inserts a motor.
	Save(ctx context.Context, motor StoredMotor) error

	// Get retrieves a motor by designation.
	Get(ctx context.Context, designation string) (*StoredMotor, error)

	// List returns all motors ordered by designation.
	List(ctx context.Context) ([]StoredMotor, error)

	// Delete removes a motor by designation.
	Delete(ctx context.Context, designation string) error

	// Close releases store resources.
	Close() error
}
