package domain

import "fmt"

// WarningKind classifies non-fatal findings raised during a load.
type WarningKind string

const (
	// WarnConsistency flags a declared quantity that disagrees with the
	// value derived from the data (e.g. total impulse vs the integrated
	// thrust curve) beyond tolerance. Reported, never corrected.
	WarnConsistency WarningKind = "consistency"

	// WarnSkipped flags a recognised but unsupported construct that was
	// dropped from a design load.
	WarnSkipped WarningKind = "skipped"
)

// Warning is a non-fatal finding attached to a load result.
// Warnings never abort a conversion; they travel alongside the
// loaded document so callers can surface them.
type Warning struct {
	// Kind classifies the finding.
	Kind WarningKind

	// Field names the offending element or field.
	Field string

	// Message is the human-readable description.
	Message string
}

func (w Warning) String() string {
	if w.Field == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", w.Kind, w.Field, w.Message)
}
