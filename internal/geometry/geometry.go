// Package geometry computes shape profiles, masses and centres of
// gravity from document-model entities. All functions are pure and
// stateless; the model itself stays dependency-free and stores no
// derived values.
//
// Axial positions are measured from the nose tip. Stages are stored in
// flight order (booster first), so the physical stack runs through the
// stages in reverse.
package geometry

import "github.com/custodia-labs/rocketdoc-cli/internal/core/domain"

// Placement is a component with its resolved axial offset from the
// nose tip. The model does not store absolute positions for body
// components, so the stack layout derives them.
type Placement struct {
	Component domain.Component

	// Offset is the front edge of body components, or the explicit
	// position of Mass and Finset components, from the nose tip.
	Offset float64

	// Stage indexes the owning stage in flight order.
	Stage int
}

// Layout resolves every component's axial offset by walking the
// physical stack nose-first (flight order reversed). Body components
// advance the running offset by their length; positioned components
// resolve against the front of their stage.
func Layout(r domain.Rocket) []Placement {
	var placements []Placement
	offset := 0.0
	for i := len(r.Stages) - 1; i >= 0; i-- {
		stage := r.Stages[i]
		stageFront := offset
		for _, c := range stage.Components {
			switch v := c.(type) {
			case domain.Mass:
				placements = append(placements, Placement{Component: c, Offset: stageFront + v.Position, Stage: i})
			case domain.Finset:
				placements = append(placements, Placement{Component: c, Offset: stageFront + v.Position, Stage: i})
			default:
				placements = append(placements, Placement{Component: c, Offset: offset, Stage: i})
				offset += c.AxialLength()
			}
		}
	}
	return placements
}

// ComponentMass dispatches to the per-variant mass computation.
func ComponentMass(c domain.Component) float64 {
	switch v := c.(type) {
	case domain.Nosecone:
		return NoseconeMass(v)
	case domain.Bodytube:
		return BodytubeMass(v)
	case domain.Mass:
		return v.Mass
	case domain.Fin:
		return FinMass(v)
	case domain.Finset:
		return FinsetMass(v)
	}
	return 0
}

// componentCentre is the component's own centre of gravity relative to
// its placement offset: the midpoint of its axial extent for body
// components, the explicit point for lumped masses, and the root chord
// midpoint for finsets.
func componentCentre(c domain.Component) float64 {
	switch v := c.(type) {
	case domain.Nosecone:
		return v.Length / 2
	case domain.Bodytube:
		return v.Length / 2
	case domain.Finset:
		return v.Fin.RootChord / 2
	}
	return 0
}

// StageMass is the sum of component masses plus the carried motor at
// full propellant load.
func StageMass(s domain.Stage) float64 {
	total := 0.0
	for _, c := range s.Components {
		total += ComponentMass(c)
	}
	if s.Motor != nil {
		total += s.Motor.TotalMass()
	}
	return total
}

// RocketMass is the total mass of all stages, motors fully loaded.
func RocketMass(r domain.Rocket) float64 {
	total := 0.0
	for _, s := range r.Stages {
		total += StageMass(s)
	}
	return total
}

// RocketMassAt is the total mass at burn time t: each motor's
// propellant is reduced by the share burned per its own thrust curve.
func RocketMassAt(r domain.Rocket, t float64) float64 {
	total := 0.0
	for _, s := range r.Stages {
		for _, c := range s.Components {
			total += ComponentMass(c)
		}
		if s.Motor != nil {
			total += s.Motor.CaseMass + s.Motor.PropellantRemaining(t)
		}
	}
	return total
}

// RocketCG is the axial centre of gravity from the nose tip: the
// mass-weighted average of component centres. Motors count as point
// masses at the aft end of their stage.
func RocketCG(r domain.Rocket) float64 {
	totalMass := 0.0
	moment := 0.0

	for _, p := range Layout(r) {
		m := ComponentMass(p.Component)
		totalMass += m
		moment += m * (p.Offset + componentCentre(p.Component))
	}

	// Stage aft ends, walking the stack the same way Layout does.
	offset := 0.0
	for i := len(r.Stages) - 1; i >= 0; i-- {
		stage := r.Stages[i]
		offset += stage.Length()
		if stage.Motor != nil {
			m := stage.Motor.TotalMass()
			totalMass += m
			moment += m * offset
		}
	}

	if totalMass == 0 {
		return 0
	}
	return moment / totalMass
}

// MaxDiameter is the largest body diameter in the design.
func MaxDiameter(r domain.Rocket) float64 {
	max := 0.0
	for _, s := range r.Stages {
		for _, c := range s.Components {
			var d float64
			switch v := c.(type) {
			case domain.Nosecone:
				d = v.Diameter
			case domain.Bodytube:
				d = v.Diameter
			}
			if d > max {
				max = d
			}
		}
	}
	return max
}

// ProfileHeight is the height of the side-view silhouette: the largest
// body diameter, widened by fin spans where a finset sits on the
// airframe.
func ProfileHeight(r domain.Rocket) float64 {
	height := MaxDiameter(r)
	for _, s := range r.Stages {
		for _, c := range s.Components {
			if fs, ok := c.(domain.Finset); ok {
				h := MaxDiameter(r) + 2*fs.Fin.Span
				if h > height {
					height = h
				}
			}
		}
	}
	return height
}
