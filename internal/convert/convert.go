// Package convert holds the stateless unit-conversion and numeric
// formatting helpers shared by every loader and writer, plus the
// explicit Options object passed into each conversion call. Format
// handlers consume this package instead of inheriting behaviour; there
// are no module-level mutable defaults.
package convert

import (
	"fmt"
	"strconv"
)

// Conversion factors between external conventions and the canonical SI
// units (metres, kilograms, newtons, seconds).
const (
	// MillimetresPerMetre converts m -> mm and back.
	MillimetresPerMetre = 1000.0

	// GramsPerKilogram converts kg -> g and back.
	GramsPerKilogram = 1000.0

	// MetresPerInch converts imperial lengths to metres.
	MetresPerInch = 0.0254

	// KilogramsPerPound converts imperial masses to kilograms.
	KilogramsPerPound = 0.45359237

	// NewtonsPerPoundForce converts imperial thrust to newtons.
	NewtonsPerPoundForce = 4.4482216153
)

// MillimetresToMetres converts a millimetre value to metres.
func MillimetresToMetres(mm float64) float64 { return mm / MillimetresPerMetre }

// MetresToMillimetres converts a metre value to millimetres.
func MetresToMillimetres(m float64) float64 { return m * MillimetresPerMetre }

// GramsToKilograms converts a gram value to kilograms.
func GramsToKilograms(g float64) float64 { return g / GramsPerKilogram }

// KilogramsToGrams converts a kilogram value to grams.
func KilogramsToGrams(kg float64) float64 { return kg * GramsPerKilogram }

// InchesToMetres converts an imperial length to metres.
func InchesToMetres(in float64) float64 { return in * MetresPerInch }

// PoundsToKilograms converts an imperial mass to kilograms.
func PoundsToKilograms(lb float64) float64 { return lb * KilogramsPerPound }

// FormatFixed renders a value with a fixed number of decimal places, the
// precision rule engine-file formats expect.
func FormatFixed(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

// ParseFloat parses a decimal field, reporting the field name on
// failure so loaders can attach context without reimplementing this.
func ParseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %q is not a number", field, s)
	}
	return v, nil
}
