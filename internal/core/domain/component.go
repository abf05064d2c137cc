package domain

import "fmt"

// NoseShape identifies the analytic profile family of a nosecone.
type NoseShape string

const (
	// ShapeConical is a straight linear taper.
	ShapeConical NoseShape = "conical"

	// ShapeOgive is a tangent ogive (circular-arc profile).
	ShapeOgive NoseShape = "ogive"

	// ShapeElliptical is a quarter-ellipse profile (half spheroid solid).
	ShapeElliptical NoseShape = "elliptical"

	// ShapeParabolic is the power-series profile with exponent 1/2.
	ShapeParabolic NoseShape = "parabolic"

	// ShapePower is a power-series profile r(x) = R(x/L)^n with the
	// exponent n carried in Nosecone.ShapeParameter.
	ShapePower NoseShape = "power-series"
)

// knownShapes is the closed set of supported nosecone profiles.
var knownShapes = map[NoseShape]bool{
	ShapeConical:    true,
	ShapeOgive:      true,
	ShapeElliptical: true,
	ShapeParabolic:  true,
	ShapePower:      true,
}

// Component is the closed set of airframe part variants. Dispatch is by
// type switch; the variant set is format-stable, so no open subtype
// hierarchy. Mass and outline computation live in the geometry package to
// keep this model dependency-free.
type Component interface {
	// AxialLength is the extent the component contributes to the
	// sequential stack layout. Mass and Finset components carry explicit
	// positions instead and contribute zero.
	AxialLength() float64

	// Validate rejects physically invalid dimensions.
	Validate() error

	// sealed restricts the variant set to this package.
	sealed()
}

// Compile-time variant checks.
var (
	_ Component = Nosecone{}
	_ Component = Bodytube{}
	_ Component = Mass{}
	_ Component = Fin{}
	_ Component = Finset{}
)

// Nosecone is the nose of the rocket. Wall thickness carves an inner
// solid of the same shape out of the outer one; a MassOverride skips the
// density-based mass entirely.
type Nosecone struct {
	Name string

	// Shape selects the profile function r(x) over [0, Length].
	Shape NoseShape

	// ShapeParameter is the power-series exponent. Ignored for other
	// shapes.
	ShapeParameter float64

	Length    float64 // m, tip to base
	Diameter  float64 // m, at the base
	Thickness float64 // m, wall thickness
	Density   float64 // kg/m^3

	// MassOverride replaces the computed density*volume mass when set.
	MassOverride *float64
}

// AxialLength returns the stacked extent of the nosecone.
func (n Nosecone) AxialLength() float64 { return n.Length }

// Validate rejects unsupported shapes and non-physical dimensions.
func (n Nosecone) Validate() error {
	if !knownShapes[n.Shape] {
		return fmt.Errorf("nosecone %q: shape %q: %w", n.Name, n.Shape, ErrUnsupported)
	}
	if n.Length <= 0 {
		return fmt.Errorf("nosecone %q: length %g: %w", n.Name, n.Length, ErrValidation)
	}
	if n.Diameter <= 0 {
		return fmt.Errorf("nosecone %q: diameter %g: %w", n.Name, n.Diameter, ErrValidation)
	}
	if n.Thickness < 0 || n.Density < 0 {
		return fmt.Errorf("nosecone %q: negative thickness or density: %w", n.Name, ErrValidation)
	}
	if n.Shape == ShapePower && n.ShapeParameter <= 0 {
		return fmt.Errorf("nosecone %q: power-series exponent %g: %w", n.Name, n.ShapeParameter, ErrValidation)
	}
	if n.MassOverride != nil && *n.MassOverride < 0 {
		return fmt.Errorf("nosecone %q: mass override %g: %w", n.Name, *n.MassOverride, ErrValidation)
	}
	return nil
}

func (Nosecone) sealed() {}

// Bodytube is a hollow cylindrical airframe section.
type Bodytube struct {
	Name string

	Length    float64 // m
	Diameter  float64 // m, outer
	Thickness float64 // m, wall thickness
	Density   float64 // kg/m^3

	// MassOverride replaces the computed density*volume mass when set.
	MassOverride *float64
}

// AxialLength returns the stacked extent of the tube.
func (b Bodytube) AxialLength() float64 { return b.Length }

// Validate rejects non-physical dimensions.
func (b Bodytube) Validate() error {
	if b.Length <= 0 {
		return fmt.Errorf("bodytube %q: length %g: %w", b.Name, b.Length, ErrValidation)
	}
	if b.Diameter <= 0 {
		return fmt.Errorf("bodytube %q: diameter %g: %w", b.Name, b.Diameter, ErrValidation)
	}
	if b.Thickness < 0 || b.Thickness*2 >= b.Diameter {
		return fmt.Errorf("bodytube %q: wall thickness %g: %w", b.Name, b.Thickness, ErrValidation)
	}
	if b.Density < 0 {
		return fmt.Errorf("bodytube %q: density %g: %w", b.Name, b.Density, ErrValidation)
	}
	if b.MassOverride != nil && *b.MassOverride < 0 {
		return fmt.Errorf("bodytube %q: mass override %g: %w", b.Name, *b.MassOverride, ErrValidation)
	}
	return nil
}

func (Bodytube) sealed() {}

// Mass is a lumped point mass at an explicit axial position: avionics,
// recovery gear, ballast. It does not advance the stack layout.
type Mass struct {
	Name string

	Position float64 // m, from the front of its stage
	Mass     float64 // kg
	Length   float64 // m, packed length, informational only
}

// AxialLength is zero: point masses sit at explicit positions.
func (Mass) AxialLength() float64 { return 0 }

// Validate rejects negative mass or position.
func (m Mass) Validate() error {
	if m.Mass < 0 {
		return fmt.Errorf("mass %q: value %g: %w", m.Name, m.Mass, ErrValidation)
	}
	if m.Position < 0 || m.Length < 0 {
		return fmt.Errorf("mass %q: negative position or length: %w", m.Name, ErrValidation)
	}
	return nil
}

func (Mass) sealed() {}

// Fin is a single trapezoidal fin.
type Fin struct {
	Name string

	RootChord float64 // m, chord at the body
	TipChord  float64 // m, chord at the tip
	Span      float64 // m, semi-span from body surface
	Sweep     float64 // m, tip leading-edge offset from root leading edge
	Thickness float64 // m
	Density   float64 // kg/m^3
}

// AxialLength is zero: fins are positioned through their Finset.
func (Fin) AxialLength() float64 { return 0 }

// Validate rejects non-physical planform dimensions.
func (f Fin) Validate() error {
	if f.RootChord <= 0 || f.Span <= 0 {
		return fmt.Errorf("fin %q: root chord %g span %g: %w", f.Name, f.RootChord, f.Span, ErrValidation)
	}
	if f.TipChord < 0 || f.Thickness < 0 || f.Density < 0 {
		return fmt.Errorf("fin %q: negative tip chord, thickness or density: %w", f.Name, ErrValidation)
	}
	return nil
}

func (Fin) sealed() {}

// Finset is N identical fins arranged radially at one axial position.
type Finset struct {
	Name string

	Fin      Fin
	Count    int
	Position float64 // m, root leading edge from the front of its stage
}

// AxialLength is zero: the finset carries its own position.
func (Finset) AxialLength() float64 { return 0 }

// Validate rejects empty sets and invalid fins.
func (s Finset) Validate() error {
	if s.Count < 1 {
		return fmt.Errorf("finset %q: count %d: %w", s.Name, s.Count, ErrValidation)
	}
	if s.Position < 0 {
		return fmt.Errorf("finset %q: position %g: %w", s.Name, s.Position, ErrValidation)
	}
	return s.Fin.Validate()
}

func (Finset) sealed() {}
