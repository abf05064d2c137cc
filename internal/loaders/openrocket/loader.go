// Package openrocket loads OpenRocket design documents. The input is
// the design XML itself; unzipping the .ork archive is the caller's
// job (the CLI adapter does it), so this loader stays a pure
// bytes-to-model conversion.
//
// OpenRocket stores stages nose-to-tail; the loader reverses them into
// flight order. Lengths are metric by default; elements may carry a
// unit="in" attribute, converted at this boundary. Recognised but
// unsupported parts are skipped with a warning, missing required
// dimensions abort the load.
package openrocket

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.RocketLoader = (*Loader)(nil)

// Loader parses OpenRocket design XML.
type Loader struct{}

// New creates an OpenRocket design loader.
func New() *Loader {
	return &Loader{}
}

// node is a generic XML element; the document is walked as a tree
// rather than decoded into fixed structs because component elements
// share most of their vocabulary and unknown parts must be observable.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
	Text     string     `xml:",chardata"`
}

// attr returns the named attribute value.
func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// child returns the first child element with the given tag.
func (n *node) child(tag string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == tag {
			return &n.Children[i]
		}
	}
	return nil
}

// text returns the trimmed character data of the named child, with a
// presence flag so missing fields are distinguishable from empty ones.
func (n *node) text(tag string) (string, bool) {
	c := n.child(tag)
	if c == nil {
		return "", false
	}
	return strings.TrimSpace(c.Text), true
}

// walker carries load state: OpenRocket writes most radii as "auto",
// so the last explicit radius is carried forward across components.
type walker struct {
	radius   float64
	haveR    bool
	warnings []domain.Warning
}

// Load parses a complete OpenRocket design document.
func (l *Loader) Load(_ context.Context, data []byte, _ convert.Options) (*driven.RocketResult, error) {
	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("openrocket: %w: %v", domain.ErrParse, err)
	}
	if root.XMLName.Local != "openrocket" {
		return nil, fmt.Errorf("openrocket: root element is %q, want openrocket: %w",
			root.XMLName.Local, domain.ErrParse)
	}
	rocketNode := root.child("rocket")
	if rocketNode == nil {
		return nil, fmt.Errorf("openrocket: document has no rocket element: %w", domain.ErrParse)
	}

	w := &walker{}

	name := "Imported OpenRocket design"
	if n, ok := rocketNode.text("name"); ok && n != "" {
		name = n
	}

	var stages []domain.Stage
	if subs := rocketNode.child("subcomponents"); subs != nil {
		for i := range subs.Children {
			stageNode := &subs.Children[i]
			if stageNode.XMLName.Local != "stage" {
				continue
			}
			stage, err := w.loadStage(stageNode, len(stages))
			if err != nil {
				return nil, err
			}
			stages = append(stages, stage)
		}
	}

	// The file lists stages nose-to-tail; the model wants flight order,
	// where the lowest stage fires first.
	for i, j := 0, len(stages)-1; i < j; i, j = i+1, j-1 {
		stages[i], stages[j] = stages[j], stages[i]
	}

	rocket, err := domain.NewRocket(name, stages...)
	if err != nil {
		return nil, fmt.Errorf("openrocket: %w", err)
	}
	return &driven.RocketResult{Rocket: rocket, Warnings: w.warnings}, nil
}

func (w *walker) loadStage(stageNode *node, index int) (domain.Stage, error) {
	name := fmt.Sprintf("stage %d", index)
	if n, ok := stageNode.text("name"); ok && n != "" {
		name = n
	}

	var components []domain.Component
	if subs := stageNode.child("subcomponents"); subs != nil {
		loaded, err := w.loadComponents(subs)
		if err != nil {
			return domain.Stage{}, err
		}
		components = loaded
	}

	stage, err := domain.NewStage(name, components, nil)
	if err != nil {
		return domain.Stage{}, fmt.Errorf("openrocket: %w", err)
	}
	return stage, nil
}

// loadComponents maps the recognised part vocabulary, recursing into
// nested subcomponents the way OpenRocket nests fins under tubes.
func (w *walker) loadComponents(parent *node) ([]domain.Component, error) {
	var components []domain.Component
	for i := range parent.Children {
		part := &parent.Children[i]
		var (
			c   domain.Component
			err error
		)
		switch part.XMLName.Local {
		case "nosecone":
			c, err = w.loadNosecone(part)
		case "bodytube":
			c, err = w.loadBodytube(part)
		case "masscomponent", "parachute", "streamer", "shockcord":
			// All of these carry mass; recovery gear maps to a lumped
			// mass rather than being dropped.
			c, err = w.loadMass(part)
		case "trapezoidfinset":
			c, err = w.loadFinset(part)
		case "subcomponents":
			nested, nerr := w.loadComponents(part)
			if nerr != nil {
				return nil, nerr
			}
			components = append(components, nested...)
			continue
		default:
			w.warnings = append(w.warnings, domain.Warning{
				Kind:    domain.WarnSkipped,
				Field:   part.XMLName.Local,
				Message: "unsupported component type skipped",
			})
			continue
		}
		if err != nil {
			return nil, err
		}
		components = append(components, c)

		// Recognised parts can nest further components too.
		if subs := part.child("subcomponents"); subs != nil {
			nested, err := w.loadComponents(subs)
			if err != nil {
				return nil, err
			}
			components = append(components, nested...)
		}
	}
	return components, nil
}

// length reads a required dimension, applying the element's unit
// attribute. Missing required dimensions are fatal: no defaulting.
func (w *walker) length(part *node, tag string) (float64, error) {
	c := part.child(tag)
	if c == nil {
		return 0, fmt.Errorf("openrocket: %s is missing required field %s: %w",
			part.XMLName.Local, tag, domain.ErrValidation)
	}
	return w.lengthOf(c, tag)
}

// optionalLength reads a dimension that may be absent, returning 0.
func (w *walker) optionalLength(part *node, tag string) (float64, error) {
	c := part.child(tag)
	if c == nil {
		return 0, nil
	}
	return w.lengthOf(c, tag)
}

func (w *walker) lengthOf(c *node, tag string) (float64, error) {
	raw := strings.TrimSpace(c.Text)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("openrocket: field %s: %q is not a number: %w", tag, raw, domain.ErrParse)
	}
	if c.attr("unit") == "in" {
		v = convert.InchesToMetres(v)
	}
	return v, nil
}

// trackRadius updates the carried radius from a radius-bearing element
// unless it says "auto".
func (w *walker) trackRadius(part *node, tag string) error {
	c := part.child(tag)
	if c == nil {
		return nil
	}
	raw := strings.TrimSpace(c.Text)
	if strings.Contains(raw, "auto") {
		return nil
	}
	v, err := w.lengthOf(c, tag)
	if err != nil {
		return err
	}
	w.radius = v
	w.haveR = true
	return nil
}

// density reads the density attribute off the material element.
func (w *walker) density(part *node) float64 {
	m := part.child("material")
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m.attr("density"), 64)
	if err != nil {
		return 0
	}
	return v
}

func (w *walker) loadNosecone(part *node) (domain.Component, error) {
	length, err := w.length(part, "length")
	if err != nil {
		return nil, err
	}
	if err := w.trackRadius(part, "aftradius"); err != nil {
		return nil, err
	}
	if !w.haveR {
		return nil, fmt.Errorf("openrocket: nosecone has no resolvable radius: %w", domain.ErrValidation)
	}
	thickness, err := w.optionalLength(part, "thickness")
	if err != nil {
		return nil, err
	}

	nose := domain.Nosecone{
		Name:      "Nosecone",
		Shape:     domain.ShapeConical,
		Length:    length,
		Diameter:  w.radius * 2,
		Thickness: thickness,
		Density:   w.density(part),
	}
	if n, ok := part.text("name"); ok && n != "" {
		nose.Name = n
	}
	if s, ok := part.text("shape"); ok {
		nose.Shape = mapShape(s)
	}
	if p, ok := part.text("shapeparameter"); ok {
		if v, err := strconv.ParseFloat(p, 64); err == nil {
			nose.ShapeParameter = v
		}
	}
	if nose.Shape == domain.ShapePower && nose.ShapeParameter == 0 {
		// OpenRocket encodes a straight cone as power series n=1.
		nose.ShapeParameter = 1
	}

	if err := nose.Validate(); err != nil {
		return nil, fmt.Errorf("openrocket: %w", err)
	}
	return nose, nil
}

// mapShape translates OpenRocket shape names to the canonical enum.
func mapShape(s string) domain.NoseShape {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "ogive"):
		return domain.ShapeOgive
	case strings.Contains(s, "ellips"):
		return domain.ShapeElliptical
	case strings.Contains(s, "parabol"):
		return domain.ShapeParabolic
	case strings.Contains(s, "power"):
		return domain.ShapePower
	default:
		return domain.ShapeConical
	}
}

func (w *walker) loadBodytube(part *node) (domain.Component, error) {
	length, err := w.length(part, "length")
	if err != nil {
		return nil, err
	}
	if err := w.trackRadius(part, "radius"); err != nil {
		return nil, err
	}
	if !w.haveR {
		return nil, fmt.Errorf("openrocket: bodytube has no resolvable radius: %w", domain.ErrValidation)
	}
	thickness, err := w.optionalLength(part, "thickness")
	if err != nil {
		return nil, err
	}

	tube := domain.Bodytube{
		Name:      "Bodytube",
		Length:    length,
		Diameter:  w.radius * 2,
		Thickness: thickness,
		Density:   w.density(part),
	}
	if n, ok := part.text("name"); ok && n != "" {
		tube.Name = n
	}

	if err := tube.Validate(); err != nil {
		return nil, fmt.Errorf("openrocket: %w", err)
	}
	return tube, nil
}

func (w *walker) loadMass(part *node) (domain.Component, error) {
	mass := domain.Mass{Name: part.XMLName.Local}
	if n, ok := part.text("name"); ok && n != "" {
		mass.Name = n
	}

	if v, ok := part.text("mass"); ok {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("openrocket: field mass: %q is not a number: %w", v, domain.ErrParse)
		}
		mass.Mass = m
	}
	pos, err := w.optionalLength(part, "position")
	if err != nil {
		return nil, err
	}
	if pos < 0 {
		// Positions measured from the bottom come out negative; the
		// model wants a top-referenced offset, so clamp.
		pos = 0
	}
	mass.Position = pos
	if v, err := w.optionalLength(part, "packedlength"); err == nil {
		mass.Length = v
	}

	if err := mass.Validate(); err != nil {
		return nil, fmt.Errorf("openrocket: %w", err)
	}
	return mass, nil
}

func (w *walker) loadFinset(part *node) (domain.Component, error) {
	root, err := w.length(part, "rootchord")
	if err != nil {
		return nil, err
	}
	span, err := w.length(part, "height")
	if err != nil {
		return nil, err
	}
	tip, err := w.optionalLength(part, "tipchord")
	if err != nil {
		return nil, err
	}
	sweep, err := w.optionalLength(part, "sweeplength")
	if err != nil {
		return nil, err
	}
	thickness, err := w.optionalLength(part, "thickness")
	if err != nil {
		return nil, err
	}
	pos, err := w.optionalLength(part, "position")
	if err != nil {
		return nil, err
	}
	if pos < 0 {
		pos = 0
	}

	count := 3
	if v, ok := part.text("fincount"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("openrocket: field fincount: %q is not a number: %w", v, domain.ErrParse)
		}
		count = n
	}

	name := "Finset"
	if n, ok := part.text("name"); ok && n != "" {
		name = n
	}

	set := domain.Finset{
		Name: name,
		Fin: domain.Fin{
			Name:      "Fin",
			RootChord: root,
			TipChord:  tip,
			Span:      span,
			Sweep:     sweep,
			Thickness: thickness,
			Density:   w.density(part),
		},
		Count:    count,
		Position: pos,
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("openrocket: %w", err)
	}
	return set, nil
}
