// Package domain holds the canonical document model for a sounding-rocket
// design: the Rocket/Stage/Component tree and the Engine with its thrust
// curve. Every loader populates this model and every writer consumes it;
// loaders and writers never talk to each other directly.
//
// All dimensions are SI (metres, kilograms, newtons, seconds). Unit
// conversion happens at format boundaries, never inside the model.
//
// Entities are immutable value aggregates once built through their
// validating constructors. Derived quantities (mass, burn time, impulse)
// are recomputed on demand and never stored.
package domain
