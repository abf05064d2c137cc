package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// g0 is standard gravity, used for specific impulse.
const g0 = 9.80665

// impulseTolerance is the allowed relative disagreement between a
// declared total impulse and the integrated thrust curve before a
// consistency warning is raised.
const impulseTolerance = 0.05

// ThrustSample is one (time, thrust) point of a thrust curve.
type ThrustSample struct {
	Time   float64 // s, from ignition
	Thrust float64 // N
}

// Engine is a solid rocket motor: casing geometry, masses, and the
// measured thrust curve. All derived quantities are recomputed from the
// curve on demand.
type Engine struct {
	// Designation is the motor code, e.g. "F32T". Its grammar encodes
	// the impulse class letter and the average thrust in newtons.
	Designation  string
	Manufacturer string
	Comments     string

	// Delays is the ejection delay code string from the header, e.g.
	// "6-10-14" or "0". Carried verbatim for round trips.
	Delays string

	Diameter float64 // m
	Length   float64 // m

	CaseMass       float64 // kg, dry casing
	PropellantMass float64 // kg

	// DeclaredImpulse and DeclaredAvgThrust are header values from the
	// source file, zero when absent. They are checked against the curve,
	// never trusted over it.
	DeclaredImpulse   float64 // N*s
	DeclaredAvgThrust float64 // N

	// Curve is the thrust curve: time strictly increasing from 0,
	// thrust non-negative, at least two samples.
	Curve []ThrustSample
}

// NewEngine validates the engine and reports consistency warnings.
// A declared total impulse disagreeing with the integrated curve beyond
// tolerance is reported, not corrected.
func NewEngine(e Engine) (Engine, []Warning, error) {
	if err := e.Validate(); err != nil {
		return Engine{}, nil, err
	}

	var warnings []Warning
	if e.DeclaredImpulse > 0 {
		got := e.TotalImpulse()
		if got > 0 && math.Abs(e.DeclaredImpulse-got)/got > impulseTolerance {
			warnings = append(warnings, Warning{
				Kind:  WarnConsistency,
				Field: "total impulse",
				Message: fmt.Sprintf("declared %.2f N*s but curve integrates to %.2f N*s",
					e.DeclaredImpulse, got),
			})
		}
	}
	return e, warnings, nil
}

// Validate enforces the thrust-curve invariants.
func (e Engine) Validate() error {
	if e.Diameter < 0 || e.Length < 0 {
		return fmt.Errorf("engine %q: negative diameter or length: %w", e.Designation, ErrValidation)
	}
	if e.CaseMass < 0 || e.PropellantMass < 0 {
		return fmt.Errorf("engine %q: negative mass: %w", e.Designation, ErrValidation)
	}
	if len(e.Curve) < 2 {
		return fmt.Errorf("engine %q: thrust curve has %d samples, need at least 2: %w",
			e.Designation, len(e.Curve), ErrValidation)
	}
	if e.Curve[0].Time != 0 {
		return fmt.Errorf("engine %q: thrust curve starts at t=%g, must start at 0: %w",
			e.Designation, e.Curve[0].Time, ErrValidation)
	}
	for i, p := range e.Curve {
		if p.Thrust < 0 {
			return fmt.Errorf("engine %q: negative thrust %g at sample %d: %w",
				e.Designation, p.Thrust, i, ErrValidation)
		}
		if i > 0 && p.Time <= e.Curve[i-1].Time {
			return fmt.Errorf("engine %q: thrust curve time not increasing at sample %d (t=%g after t=%g): %w",
				e.Designation, i, p.Time, e.Curve[i-1].Time, ErrValidation)
		}
	}
	return nil
}

// TotalImpulse is the trapezoidal integral of the thrust curve.
func (e Engine) TotalImpulse() float64 {
	total := 0.0
	for i := 1; i < len(e.Curve); i++ {
		dt := e.Curve[i].Time - e.Curve[i-1].Time
		total += dt * (e.Curve[i].Thrust + e.Curve[i-1].Thrust) / 2
	}
	return total
}

// BurnTime is the last thrust-curve timestamp.
func (e Engine) BurnTime() float64 {
	if len(e.Curve) == 0 {
		return 0
	}
	return e.Curve[len(e.Curve)-1].Time
}

// AverageThrust is total impulse over burn time.
func (e Engine) AverageThrust() float64 {
	t := e.BurnTime()
	if t == 0 {
		return 0
	}
	return e.TotalImpulse() / t
}

// PeakThrust is the maximum sampled thrust.
func (e Engine) PeakThrust() float64 {
	peak := 0.0
	for _, p := range e.Curve {
		if p.Thrust > peak {
			peak = p.Thrust
		}
	}
	return peak
}

// TotalMass is the loaded mass: casing plus full propellant.
func (e Engine) TotalMass() float64 {
	return e.CaseMass + e.PropellantMass
}

// Isp is the specific impulse in seconds.
func (e Engine) Isp() float64 {
	if e.PropellantMass == 0 {
		return 0
	}
	return e.TotalImpulse() / (e.PropellantMass * g0)
}

// MassFraction is the propellant share of the loaded mass, in percent.
func (e Engine) MassFraction() float64 {
	total := e.TotalMass()
	if total == 0 {
		return 0
	}
	return e.PropellantMass / total * 100
}

// PropellantRemaining is the unburned propellant mass at time t,
// assuming burn rate proportional to thrust.
func (e Engine) PropellantRemaining(t float64) float64 {
	total := e.TotalImpulse()
	if total == 0 {
		return e.PropellantMass
	}
	if t <= 0 {
		return e.PropellantMass
	}
	burned := 0.0
	for i := 1; i < len(e.Curve); i++ {
		a, b := e.Curve[i-1], e.Curve[i]
		if t >= b.Time {
			burned += (b.Time - a.Time) * (a.Thrust + b.Thrust) / 2
			continue
		}
		if t > a.Time {
			// interpolate the partial segment
			frac := (t - a.Time) / (b.Time - a.Time)
			thrustAtT := a.Thrust + frac*(b.Thrust-a.Thrust)
			burned += (t - a.Time) * (a.Thrust + thrustAtT) / 2
		}
		break
	}
	return e.PropellantMass * (1 - burned/total)
}

// ImpulseClass is the letter classification of the integrated total
// impulse: class A tops out at 2.5 N*s, each following class doubles.
func (e Engine) ImpulseClass() string {
	return ImpulseClass(e.TotalImpulse())
}

// ImpulseClass returns the letter class for a total impulse in N*s.
// Returns "" for non-positive impulse or beyond class O.
func ImpulseClass(impulse float64) string {
	if impulse <= 0 {
		return ""
	}
	max := 2.5
	for c := 'A'; c <= 'O'; c++ {
		if impulse <= max {
			return string(c)
		}
		max *= 2
	}
	return ""
}

// designationRe captures the motor designation grammar: one impulse
// class letter, average thrust in newtons, optional delay code.
var designationRe = regexp.MustCompile(`^([A-O])([0-9]+(?:\.[0-9]+)?)(?:[- ]?([0-9A-Za-z-]+))?$`)

// Designation is the decoded form of a motor code like "F32T".
type Designation struct {
	Class     string  // impulse class letter
	AvgThrust float64 // N, as encoded in the code
	Delay     string  // trailing delay code, may be empty
}

// ParseDesignation decodes a motor designation string. Used when an
// engine header omits the average thrust or impulse class explicitly.
func ParseDesignation(s string) (Designation, error) {
	m := designationRe.FindStringSubmatch(s)
	if m == nil {
		return Designation{}, fmt.Errorf("designation %q does not match class+thrust grammar: %w", s, ErrParse)
	}
	thrust, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Designation{}, fmt.Errorf("designation %q: thrust digits: %w", s, ErrParse)
	}
	return Designation{Class: m[1], AvgThrust: thrust, Delay: m[3]}, nil
}
