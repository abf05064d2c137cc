package geometry

import (
	"math"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
)

// ogiveRho is the radius of the tangent-ogive arc for a nosecone of
// base radius r and length l.
func ogiveRho(r, l float64) float64 {
	return (r*r + l*l) / (2 * r)
}

// NoseconeRadius is the profile function r(x) for a nosecone, with x
// measured from the tip (x=0) to the base (x=Length). Every supported
// shape has a closed form; none are numerically approximated.
func NoseconeRadius(n domain.Nosecone, x float64) float64 {
	if x <= 0 {
		return 0
	}
	l := n.Length
	r := n.Diameter / 2
	if x >= l {
		return r
	}

	switch n.Shape {
	case domain.ShapeConical:
		return r * x / l
	case domain.ShapeOgive:
		rho := ogiveRho(r, l)
		return math.Sqrt(rho*rho-(l-x)*(l-x)) + r - rho
	case domain.ShapeElliptical:
		// quarter ellipse: r(x) = R*sqrt(1 - ((L-x)/L)^2)
		u := (l - x) / l
		return r * math.Sqrt(1-u*u)
	case domain.ShapeParabolic:
		return r * math.Sqrt(x/l)
	case domain.ShapePower:
		return r * math.Pow(x/l, n.ShapeParameter)
	}
	return 0
}

// noseconeSolidVolume is the closed-form volume of the solid of
// revolution of the profile, for base radius r and length l.
func noseconeSolidVolume(shape domain.NoseShape, param, r, l float64) float64 {
	if r <= 0 || l <= 0 {
		return 0
	}
	switch shape {
	case domain.ShapeConical:
		return math.Pi * r * r * l / 3
	case domain.ShapeOgive:
		// V = pi * (rho^2 L - L^3/3 - (rho-R) rho^2 asin(L/rho))
		rho := ogiveRho(r, l)
		return math.Pi * (rho*rho*l - l*l*l/3 - (rho-r)*rho*rho*math.Asin(l/rho))
	case domain.ShapeElliptical:
		// half spheroid
		return 2 * math.Pi * r * r * l / 3
	case domain.ShapeParabolic:
		// power series with n = 1/2
		return math.Pi * r * r * l / 2
	case domain.ShapePower:
		// r(x) = R (x/L)^n  =>  V = pi R^2 L / (2n + 1)
		return math.Pi * r * r * l / (2*param + 1)
	}
	return 0
}

// NoseconeVolume is the solid-of-revolution volume of the nosecone's
// outer profile.
func NoseconeVolume(n domain.Nosecone) float64 {
	return noseconeSolidVolume(n.Shape, n.ShapeParameter, n.Diameter/2, n.Length)
}

// NoseconeMass derives the mass from density and geometry unless an
// explicit override is present. A positive wall thickness models the
// cone as a shell: the outer solid minus an inner solid of the same
// shape inset by the wall. Zero thickness means a solid piece.
func NoseconeMass(n domain.Nosecone) float64 {
	if n.MassOverride != nil {
		return *n.MassOverride
	}
	outer := NoseconeVolume(n)
	if n.Thickness <= 0 {
		return n.Density * outer
	}
	innerR := n.Diameter/2 - n.Thickness
	innerL := n.Length - n.Thickness
	inner := noseconeSolidVolume(n.Shape, n.ShapeParameter, innerR, innerL)
	return n.Density * (outer - inner)
}
