// Package nativedoc defines the canonical on-disk schema of rocketdoc's
// own format: a TOML rendering of the document model, order-preserving
// and exact enough that load(dump(x)) == x. The native loader and
// writer packages are thin wrappers over the Encode/Decode pair here so
// the schema lives in one place.
package nativedoc

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
)

// FormatVersion tags every native file; loaders reject versions they
// do not know.
const FormatVersion = "rocketdoc/1"

// File is the top-level native document: exactly one of Rocket or
// Engine is set.
type File struct {
	Format string     `toml:"format"`
	Rocket *rocketDoc `toml:"rocket,omitempty"`
	Engine *engineDoc `toml:"engine,omitempty"`
}

type rocketDoc struct {
	Name        string     `toml:"name"`
	Description string     `toml:"description,omitempty"`
	Stages      []stageDoc `toml:"stages"`
}

type stageDoc struct {
	Name       string         `toml:"name"`
	Components []componentDoc `toml:"components"`
	Motor      *engineDoc     `toml:"motor,omitempty"`
}

// componentDoc is the tagged-variant encoding: Kind selects which
// fields are meaningful.
type componentDoc struct {
	Kind string `toml:"kind"`
	Name string `toml:"name"`

	Shape          string  `toml:"shape,omitempty"`
	ShapeParameter float64 `toml:"shape_parameter,omitempty"`

	Length    float64 `toml:"length,omitempty"`
	Diameter  float64 `toml:"diameter,omitempty"`
	Thickness float64 `toml:"thickness,omitempty"`
	Density   float64 `toml:"density,omitempty"`

	Position float64 `toml:"position,omitempty"`
	Mass     float64 `toml:"mass,omitempty"`

	RootChord float64 `toml:"root_chord,omitempty"`
	TipChord  float64 `toml:"tip_chord,omitempty"`
	Span      float64 `toml:"span,omitempty"`
	Sweep     float64 `toml:"sweep,omitempty"`
	Count     int     `toml:"count,omitempty"`
	FinName   string  `toml:"fin_name,omitempty"`

	MassOverride *float64 `toml:"mass_override,omitempty"`
}

type engineDoc struct {
	Designation  string `toml:"designation"`
	Manufacturer string `toml:"manufacturer,omitempty"`
	Comments     string `toml:"comments,omitempty"`
	Delays       string `toml:"delays,omitempty"`

	Diameter       float64 `toml:"diameter"`
	Length         float64 `toml:"length"`
	CaseMass       float64 `toml:"case_mass"`
	PropellantMass float64 `toml:"propellant_mass"`

	DeclaredImpulse   float64 `toml:"declared_impulse,omitempty"`
	DeclaredAvgThrust float64 `toml:"declared_avg_thrust,omitempty"`

	// Curve rows are [time, thrust] pairs in seconds and newtons.
	Curve [][]float64 `toml:"curve"`
}

// component kind tags.
const (
	kindNosecone = "nosecone"
	kindBodytube = "bodytube"
	kindMass     = "mass"
	kindFin      = "fin"
	kindFinset   = "finset"
)

// EncodeRocket renders a rocket as native TOML.
func EncodeRocket(r domain.Rocket) ([]byte, error) {
	file := File{Format: FormatVersion, Rocket: fromRocket(r)}
	return toml.Marshal(file)
}

// EncodeEngine renders a standalone engine as native TOML.
func EncodeEngine(e domain.Engine) ([]byte, error) {
	file := File{Format: FormatVersion, Engine: fromEngine(&e)}
	return toml.Marshal(file)
}

// Decode parses a native file and rebuilds the model through the
// validating constructors. Exactly one of the returned pointers is
// non-nil on success.
func Decode(data []byte) (*domain.Rocket, *domain.Engine, []domain.Warning, error) {
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, nil, nil, fmt.Errorf("native: %w: %v", domain.ErrParse, err)
	}
	if file.Format != FormatVersion {
		return nil, nil, nil, fmt.Errorf("native: format %q: %w", file.Format, domain.ErrUnsupported)
	}

	switch {
	case file.Rocket != nil && file.Engine != nil:
		return nil, nil, nil, fmt.Errorf("native: file holds both a rocket and a standalone engine: %w", domain.ErrParse)
	case file.Rocket != nil:
		rocket, warnings, err := toRocket(file.Rocket)
		if err != nil {
			return nil, nil, nil, err
		}
		return rocket, nil, warnings, nil
	case file.Engine != nil:
		engine, warnings, err := toEngine(file.Engine)
		if err != nil {
			return nil, nil, nil, err
		}
		return nil, engine, warnings, nil
	}
	return nil, nil, nil, fmt.Errorf("native: file holds neither a rocket nor an engine: %w", domain.ErrParse)
}

func fromRocket(r domain.Rocket) *rocketDoc {
	doc := &rocketDoc{Name: r.Name, Description: r.Description}
	for _, s := range r.Stages {
		stage := stageDoc{Name: s.Name, Motor: fromEngine(s.Motor)}
		for _, c := range s.Components {
			stage.Components = append(stage.Components, fromComponent(c))
		}
		doc.Stages = append(doc.Stages, stage)
	}
	return doc
}

func fromComponent(c domain.Component) componentDoc {
	switch v := c.(type) {
	case domain.Nosecone:
		return componentDoc{
			Kind: kindNosecone, Name: v.Name,
			Shape: string(v.Shape), ShapeParameter: v.ShapeParameter,
			Length: v.Length, Diameter: v.Diameter,
			Thickness: v.Thickness, Density: v.Density,
			MassOverride: v.MassOverride,
		}
	case domain.Bodytube:
		return componentDoc{
			Kind: kindBodytube, Name: v.Name,
			Length: v.Length, Diameter: v.Diameter,
			Thickness: v.Thickness, Density: v.Density,
			MassOverride: v.MassOverride,
		}
	case domain.Mass:
		return componentDoc{
			Kind: kindMass, Name: v.Name,
			Position: v.Position, Mass: v.Mass, Length: v.Length,
		}
	case domain.Fin:
		return componentDoc{
			Kind: kindFin, Name: v.Name,
			RootChord: v.RootChord, TipChord: v.TipChord,
			Span: v.Span, Sweep: v.Sweep,
			Thickness: v.Thickness, Density: v.Density,
		}
	case domain.Finset:
		fin := fromComponent(v.Fin)
		fin.Kind = kindFinset
		fin.FinName = v.Fin.Name
		fin.Name = v.Name
		fin.Count = v.Count
		fin.Position = v.Position
		return fin
	}
	return componentDoc{}
}

func fromEngine(e *domain.Engine) *engineDoc {
	if e == nil {
		return nil
	}
	doc := &engineDoc{
		Designation:       e.Designation,
		Manufacturer:      e.Manufacturer,
		Comments:          e.Comments,
		Delays:            e.Delays,
		Diameter:          e.Diameter,
		Length:            e.Length,
		CaseMass:          e.CaseMass,
		PropellantMass:    e.PropellantMass,
		DeclaredImpulse:   e.DeclaredImpulse,
		DeclaredAvgThrust: e.DeclaredAvgThrust,
	}
	for _, p := range e.Curve {
		doc.Curve = append(doc.Curve, []float64{p.Time, p.Thrust})
	}
	return doc
}

func toRocket(doc *rocketDoc) (*domain.Rocket, []domain.Warning, error) {
	var warnings []domain.Warning
	var stages []domain.Stage
	for _, sd := range doc.Stages {
		var components []domain.Component
		for _, cd := range sd.Components {
			c, err := toComponent(cd)
			if err != nil {
				return nil, nil, err
			}
			components = append(components, c)
		}

		var motor *domain.Engine
		if sd.Motor != nil {
			engine, w, err := toEngine(sd.Motor)
			if err != nil {
				return nil, nil, err
			}
			warnings = append(warnings, w...)
			motor = engine
		}

		stage, err := domain.NewStage(sd.Name, components, motor)
		if err != nil {
			return nil, nil, fmt.Errorf("native: %w", err)
		}
		stages = append(stages, stage)
	}

	rocket, err := domain.NewRocket(doc.Name, stages...)
	if err != nil {
		return nil, nil, fmt.Errorf("native: %w", err)
	}
	rocket.Description = doc.Description
	return &rocket, warnings, nil
}

func toComponent(doc componentDoc) (domain.Component, error) {
	switch doc.Kind {
	case kindNosecone:
		return domain.Nosecone{
			Name:           doc.Name,
			Shape:          domain.NoseShape(doc.Shape),
			ShapeParameter: doc.ShapeParameter,
			Length:         doc.Length,
			Diameter:       doc.Diameter,
			Thickness:      doc.Thickness,
			Density:        doc.Density,
			MassOverride:   doc.MassOverride,
		}, nil
	case kindBodytube:
		return domain.Bodytube{
			Name:         doc.Name,
			Length:       doc.Length,
			Diameter:     doc.Diameter,
			Thickness:    doc.Thickness,
			Density:      doc.Density,
			MassOverride: doc.MassOverride,
		}, nil
	case kindMass:
		return domain.Mass{
			Name:     doc.Name,
			Position: doc.Position,
			Mass:     doc.Mass,
			Length:   doc.Length,
		}, nil
	case kindFin:
		return toFin(doc), nil
	case kindFinset:
		fin := toFin(doc)
		fin.Name = doc.FinName
		return domain.Finset{
			Name:     doc.Name,
			Fin:      fin,
			Count:    doc.Count,
			Position: doc.Position,
		}, nil
	}
	return nil, fmt.Errorf("native: component kind %q: %w", doc.Kind, domain.ErrParse)
}

func toFin(doc componentDoc) domain.Fin {
	return domain.Fin{
		Name:      doc.Name,
		RootChord: doc.RootChord,
		TipChord:  doc.TipChord,
		Span:      doc.Span,
		Sweep:     doc.Sweep,
		Thickness: doc.Thickness,
		Density:   doc.Density,
	}
}

func toEngine(doc *engineDoc) (*domain.Engine, []domain.Warning, error) {
	e := domain.Engine{
		Designation:       doc.Designation,
		Manufacturer:      doc.Manufacturer,
		Comments:          doc.Comments,
		Delays:            doc.Delays,
		Diameter:          doc.Diameter,
		Length:            doc.Length,
		CaseMass:          doc.CaseMass,
		PropellantMass:    doc.PropellantMass,
		DeclaredImpulse:   doc.DeclaredImpulse,
		DeclaredAvgThrust: doc.DeclaredAvgThrust,
	}
	for i, row := range doc.Curve {
		if len(row) != 2 {
			return nil, nil, fmt.Errorf("native: engine %q: curve row %d has %d values, want 2: %w",
				doc.Designation, i, len(row), domain.ErrParse)
		}
		e.Curve = append(e.Curve, domain.ThrustSample{Time: row[0], Thrust: row[1]})
	}

	engine, warnings, err := domain.NewEngine(e)
	if err != nil {
		return nil, nil, fmt.Errorf("native: %w", err)
	}
	return &engine, warnings, nil
}
