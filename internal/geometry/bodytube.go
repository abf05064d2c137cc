package geometry

import (
	"math"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
)

// BodytubeVolume is the material volume of a hollow cylinder with the
// tube's wall thickness.
func BodytubeVolume(b domain.Bodytube) float64 {
	outer := b.Diameter / 2
	inner := outer - b.Thickness
	return math.Pi * b.Length * (outer*outer - inner*inner)
}

// BodytubeMass derives the mass from density and geometry unless an
// explicit override is present.
func BodytubeMass(b domain.Bodytube) float64 {
	if b.MassOverride != nil {
		return *b.MassOverride
	}
	return b.Density * BodytubeVolume(b)
}
