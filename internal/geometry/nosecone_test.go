package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
)

func nose(shape domain.NoseShape) domain.Nosecone {
	return domain.Nosecone{
		Name:     "nose",
		Shape:    shape,
		Length:   0.3,
		Diameter: 0.05,
		Density:  1200,
	}
}

func TestNoseconeVolume_Conical(t *testing.T) {
	n := nose(domain.ShapeConical)
	r := n.Diameter / 2

	want := math.Pi * r * r * n.Length / 3
	assert.InDelta(t, want, NoseconeVolume(n), 1e-15)
}

func TestNoseconeVolume_ShapesDiffer(t *testing.T) {
	// Same length and base diameter, different profiles: the volumes
	// must not collapse to a single value.
	cone := NoseconeVolume(nose(domain.ShapeConical))
	ogive := NoseconeVolume(nose(domain.ShapeOgive))
	ellipse := NoseconeVolume(nose(domain.ShapeElliptical))
	parabola := NoseconeVolume(nose(domain.ShapeParabolic))

	assert.NotEqual(t, cone, ogive)
	assert.NotEqual(t, cone, ellipse)
	assert.NotEqual(t, ogive, ellipse)

	// The ogive bulges outward past the straight taper.
	assert.Greater(t, ogive, cone)
	// Parabolic (power n=1/2) encloses pi r^2 l / 2.
	r := 0.025
	assert.InDelta(t, math.Pi*r*r*0.3/2, parabola, 1e-15)
}

func TestNoseconeVolume_OgiveHemisphereLimit(t *testing.T) {
	// With length equal to base radius the tangent ogive degenerates to
	// a hemisphere of volume 2/3 pi R^3.
	n := domain.Nosecone{Shape: domain.ShapeOgive, Length: 0.025, Diameter: 0.05}
	assert.InDelta(t, 2.0/3.0*math.Pi*math.Pow(0.025, 3), NoseconeVolume(n), 1e-12)
}

func TestNoseconeVolume_PowerSeries(t *testing.T) {
	n := nose(domain.ShapePower)
	n.ShapeParameter = 1 // degenerates to a cone

	assert.InDelta(t, NoseconeVolume(nose(domain.ShapeConical)), NoseconeVolume(n), 1e-15)
}

func TestNoseconeRadius_Endpoints(t *testing.T) {
	for _, shape := range []domain.NoseShape{
		domain.ShapeConical,
		domain.ShapeOgive,
		domain.ShapeElliptical,
		domain.ShapeParabolic,
	} {
		n := nose(shape)
		assert.InDelta(t, 0, NoseconeRadius(n, 0), 1e-12, "%s at tip", shape)
		assert.InDelta(t, n.Diameter/2, NoseconeRadius(n, n.Length), 1e-12, "%s at base", shape)

		mid := NoseconeRadius(n, n.Length/2)
		assert.Greater(t, mid, 0.0, "%s midpoint", shape)
		assert.Less(t, mid, n.Diameter/2, "%s midpoint", shape)
	}
}

func TestNoseconeMass_Override(t *testing.T) {
	n := nose(domain.ShapeConical)
	override := 0.7
	n.MassOverride = &override

	assert.Equal(t, 0.7, NoseconeMass(n))
}

func TestNoseconeMass_Shell(t *testing.T) {
	solid := nose(domain.ShapeConical)
	shell := nose(domain.ShapeConical)
	shell.Thickness = 0.002

	// A shell holds less material than the solid piece.
	assert.Less(t, NoseconeMass(shell), NoseconeMass(solid))
	assert.Greater(t, NoseconeMass(shell), 0.0)
}
