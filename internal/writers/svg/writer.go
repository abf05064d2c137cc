// Package svg renders a rocket design as a side-view SVG drawing. The
// silhouette is laid out nose-first: nosecone profile as a sampled
// path, body tubes as rectangles, and the two outermost fins of each
// finset as polygons. The drawing is deterministic for a given design
// and options; rendering the same input twice yields identical bytes.
package svg

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rocketdoc-cli/internal/geometry"
)

// Ensure Writer implements the interface.
var _ driven.RocketWriter = (*Writer)(nil)

// profileSamples is the number of segments used to trace one half of
// the nosecone profile.
const profileSamples = 32

const (
	strokeColour = "black"
	strokeWidth  = "1"
	fillColour   = "none"
)

type document struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Title   string   `xml:"title"`
	Shapes  []any
}

type path struct {
	XMLName     xml.Name `xml:"path"`
	D           string   `xml:"d,attr"`
	Fill        string   `xml:"fill,attr"`
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth string   `xml:"stroke-width,attr"`
}

type rect struct {
	XMLName     xml.Name `xml:"rect"`
	X           string   `xml:"x,attr"`
	Y           string   `xml:"y,attr"`
	Width       string   `xml:"width,attr"`
	Height      string   `xml:"height,attr"`
	Fill        string   `xml:"fill,attr"`
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth string   `xml:"stroke-width,attr"`
}

type polygon struct {
	XMLName     xml.Name `xml:"polygon"`
	Points      string   `xml:"points,attr"`
	Fill        string   `xml:"fill,attr"`
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth string   `xml:"stroke-width,attr"`
}

// Writer renders rocket designs as SVG.
type Writer struct{}

// New creates an SVG writer.
func New() *Writer {
	return &Writer{}
}

// canvas maps model coordinates (metres from the nose tip and from the
// body axis) onto the SVG pixel grid. One scale serves both axes so the
// drawing keeps its aspect ratio.
type canvas struct {
	scale     float64
	originX   float64
	centreY   float64
	precision int
}

func newCanvas(r domain.Rocket, opts convert.Options) (canvas, error) {
	length := r.Length()
	height := geometry.ProfileHeight(r)
	if length <= 0 || height <= 0 {
		return canvas{}, fmt.Errorf("svg: design has no drawable extent: %w", domain.ErrValidation)
	}

	usableW := float64(opts.CanvasWidth - 2*opts.CanvasMargin)
	usableH := float64(opts.CanvasHeight - 2*opts.CanvasMargin)
	if usableW <= 0 || usableH <= 0 {
		return canvas{}, fmt.Errorf("svg: canvas %dx%d too small for margin %d: %w",
			opts.CanvasWidth, opts.CanvasHeight, opts.CanvasMargin, domain.ErrValidation)
	}

	scale := usableW / length
	if s := usableH / height; s < scale {
		scale = s
	}
	return canvas{
		scale:     scale,
		originX:   float64(opts.CanvasMargin),
		centreY:   float64(opts.CanvasHeight) / 2,
		precision: opts.Precision,
	}, nil
}

// x maps an axial position to a pixel column.
func (c canvas) x(axial float64) float64 {
	return c.originX + axial*c.scale
}

// y maps a radial offset (positive above the axis) to a pixel row.
// SVG rows grow downward, so positive offsets subtract.
func (c canvas) y(radial float64) float64 {
	return c.centreY - radial*c.scale
}

func (c canvas) fmt(v float64) string {
	return convert.FormatFixed(v, c.precision)
}

func (c canvas) point(axial, radial float64) string {
	return c.fmt(c.x(axial)) + "," + c.fmt(c.y(radial))
}

// Dump renders the design.
func (w *Writer) Dump(_ context.Context, rocket domain.Rocket, opts convert.Options) ([]byte, error) {
	cv, err := newCanvas(rocket, opts)
	if err != nil {
		return nil, err
	}

	doc := document{
		Xmlns:   "http://www.w3.org/2000/svg",
		Width:   fmt.Sprintf("%d", opts.CanvasWidth),
		Height:  fmt.Sprintf("%d", opts.CanvasHeight),
		ViewBox: fmt.Sprintf("0 0 %d %d", opts.CanvasWidth, opts.CanvasHeight),
		Title:   rocket.Name,
	}

	for _, p := range geometry.Layout(rocket) {
		switch v := p.Component.(type) {
		case domain.Nosecone:
			doc.Shapes = append(doc.Shapes, noseconePath(cv, v, p.Offset))
		case domain.Bodytube:
			doc.Shapes = append(doc.Shapes, bodytubeRect(cv, v, p.Offset))
		case domain.Finset:
			radius := bodyRadiusOfStage(rocket, p.Stage)
			doc.Shapes = append(doc.Shapes, finPolygons(cv, v.Fin, p.Offset, radius)...)
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("svg: marshal: %w", err)
	}
	var b strings.Builder
	b.WriteString(xml.Header)
	b.Write(out)
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// noseconePath traces the mirrored profile: along the top from the tip
// to the base, down the base line, back along the bottom to the tip.
func noseconePath(cv canvas, n domain.Nosecone, offset float64) path {
	var d strings.Builder
	d.WriteString("M ")
	d.WriteString(cv.point(offset, 0))

	step := n.Length / profileSamples
	for i := 1; i <= profileSamples; i++ {
		x := step * float64(i)
		r := geometry.NoseconeRadius(n, x)
		d.WriteString(" L ")
		d.WriteString(cv.point(offset+x, r))
	}
	for i := profileSamples; i >= 1; i-- {
		x := step * float64(i)
		r := geometry.NoseconeRadius(n, x)
		d.WriteString(" L ")
		d.WriteString(cv.point(offset+x, -r))
	}
	d.WriteString(" Z")

	return path{D: d.String(), Fill: fillColour, Stroke: strokeColour, StrokeWidth: strokeWidth}
}

func bodytubeRect(cv canvas, t domain.Bodytube, offset float64) rect {
	radius := t.Diameter / 2
	return rect{
		X:           cv.fmt(cv.x(offset)),
		Y:           cv.fmt(cv.y(radius)),
		Width:       cv.fmt(t.Length * cv.scale),
		Height:      cv.fmt(t.Diameter * cv.scale),
		Fill:        fillColour,
		Stroke:      strokeColour,
		StrokeWidth: strokeWidth,
	}
}

// finPolygons draws the two outermost fins of a set, one above and one
// below the airframe. Fins at other roll angles project inside these
// two and are omitted from the side view.
func finPolygons(cv canvas, f domain.Fin, offset, bodyRadius float64) []any {
	outline := geometry.FinOutline(f)

	var top, bottom []string
	for _, corner := range outline {
		top = append(top, cv.point(offset+corner[0], bodyRadius+corner[1]))
		bottom = append(bottom, cv.point(offset+corner[0], -bodyRadius-corner[1]))
	}

	return []any{
		polygon{Points: strings.Join(top, " "), Fill: fillColour, Stroke: strokeColour, StrokeWidth: strokeWidth},
		polygon{Points: strings.Join(bottom, " "), Fill: fillColour, Stroke: strokeColour, StrokeWidth: strokeWidth},
	}
}

// bodyRadiusOfStage is the airframe radius the stage's fins attach to:
// the widest body component in that stage.
func bodyRadiusOfStage(r domain.Rocket, stage int) float64 {
	if stage < 0 || stage >= len(r.Stages) {
		return 0
	}
	max := 0.0
	for _, c := range r.Stages[stage].Components {
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
	return max / 2
}
