package geometry

import "github.com/custodia-labs/rocketdoc-cli/internal/core/domain"

// FinPlanformArea is the trapezoid area defined by root chord, tip
// chord and span. The sweep shifts the outline but not its area.
func FinPlanformArea(f domain.Fin) float64 {
	return (f.RootChord + f.TipChord) / 2 * f.Span
}

// FinVolume is the planform area extruded by the fin thickness.
func FinVolume(f domain.Fin) float64 {
	return FinPlanformArea(f) * f.Thickness
}

// FinMass derives a single fin's mass from density and volume.
func FinMass(f domain.Fin) float64 {
	return f.Density * FinVolume(f)
}

// FinsetMass is the mass of all fins in the set.
func FinsetMass(s domain.Finset) float64 {
	return float64(s.Count) * FinMass(s.Fin)
}

// FinOutline is the fin's trapezoid as four (x, y) corners relative to
// the root leading edge, x along the body axis, y outward from the
// body surface. Used for SVG rendering.
func FinOutline(f domain.Fin) [4][2]float64 {
	return [4][2]float64{
		{0, 0},
		{f.Sweep, f.Span},
		{f.Sweep + f.TipChord, f.Span},
		{f.RootChord, 0},
	}
}
