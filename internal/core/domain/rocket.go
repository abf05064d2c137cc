package domain

import "fmt"

// Stage is an ordered sequence of components stacked along the
// longitudinal axis, front to back, plus the motor it carries (if any).
type Stage struct {
	Name string

	// Components are ordered front to back. Nosecones and bodytubes
	// advance the stack; Mass and Finset components sit at explicit
	// positions measured from the front of the stage.
	Components []Component

	// Motor is the engine carried by this stage, nil for unpowered
	// stages. The stage owns the engine; nothing holds a back-reference.
	Motor *Engine
}

// NewStage validates all components eagerly and rejects positioned
// components that fall outside the stage's body extent.
func NewStage(name string, components []Component, motor *Engine) (Stage, error) {
	s := Stage{Name: name, Components: components, Motor: motor}

	// A stage holds at most one airframe segment: an optional nosecone
	// followed by bodytubes. A second nosecone, or one behind a tube,
	// cannot stack.
	body := 0.0
	sawNose, sawTube := false, false
	for _, c := range s.Components {
		if err := c.Validate(); err != nil {
			return Stage{}, fmt.Errorf("stage %q: %w", name, err)
		}
		switch v := c.(type) {
		case Nosecone:
			if sawNose || sawTube {
				return Stage{}, fmt.Errorf("stage %q: nosecone %q breaks the airframe chain: %w",
					name, v.Name, ErrValidation)
			}
			sawNose = true
		case Bodytube:
			sawTube = true
		}
		body += c.AxialLength()
	}

	// Positioned components must land on the airframe they decorate.
	if body > 0 {
		for _, c := range s.Components {
			switch v := c.(type) {
			case Mass:
				if v.Position > body {
					return Stage{}, fmt.Errorf("stage %q: mass %q at %g m beyond body length %g m: %w",
						name, v.Name, v.Position, body, ErrValidation)
				}
			case Finset:
				if v.Position > body {
					return Stage{}, fmt.Errorf("stage %q: finset %q at %g m beyond body length %g m: %w",
						name, v.Name, v.Position, body, ErrValidation)
				}
			}
		}
	}

	if motor != nil {
		if err := motor.Validate(); err != nil {
			return Stage{}, fmt.Errorf("stage %q: %w", name, err)
		}
	}
	return s, nil
}

// Length is the stacked body extent of the stage.
func (s Stage) Length() float64 {
	total := 0.0
	for _, c := range s.Components {
		total += c.AxialLength()
	}
	return total
}

// Rocket is the root of a design document.
type Rocket struct {
	Name        string
	Description string

	// Stages are ordered by launch sequence: Stages[0] fires first (the
	// booster), the last stage is the one that carries the nosecone.
	// This is flight order, not nose-to-tail stacking order; loaders
	// normalise external conventions to it.
	Stages []Stage
}

// NewRocket builds a rocket from already-validated stages and enforces
// the at-least-one-stage invariant.
func NewRocket(name string, stages ...Stage) (Rocket, error) {
	if len(stages) == 0 {
		return Rocket{}, fmt.Errorf("rocket %q: no stages: %w", name, ErrValidation)
	}
	return Rocket{Name: name, Stages: stages}, nil
}

// Length is the total stacked extent of all stages.
func (r Rocket) Length() float64 {
	total := 0.0
	for _, s := range r.Stages {
		total += s.Length()
	}
	return total
}
