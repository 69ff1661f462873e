package model

// Severity — damage state of a body part or tissue layer.
// Ordered: comparisons use the ordinal (SeverityBroken > SeverityMinor).
type Severity int32

const (
	SeverityNone Severity = iota
	SeverityMinor
	SeverityInhibited
	SeverityDisabled
	SeverityBroken
	SeverityMissing
)

// String returns human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "None"
	case SeverityMinor:
		return "Minor"
	case SeverityInhibited:
		return "Inhibited"
	case SeverityDisabled:
		return "Disabled"
	case SeverityBroken:
		return "Broken"
	case SeverityMissing:
		return "Missing"
	default:
		return "Unknown"
	}
}

// ToIntegrity maps severity to a functional-capacity multiplier.
// Monotonic: None=1.0 down to Missing=0.0.
func (s Severity) ToIntegrity() float64 {
	switch s {
	case SeverityNone:
		return 1.0
	case SeverityMinor:
		return 0.9
	case SeverityInhibited:
		return 0.6
	case SeverityDisabled:
		return 0.3
	case SeverityBroken:
		return 0.1
	case SeverityMissing:
		return 0.0
	default:
		return 0.0
	}
}

// Worse returns the more severe of two severities.
func (s Severity) Worse(other Severity) Severity {
	if other > s {
		return other
	}
	return s
}

// StepUp increases severity by n steps, clamped to SeverityMissing.
func (s Severity) StepUp(n int32) Severity {
	v := int32(s) + n
	if v > int32(SeverityMissing) {
		return SeverityMissing
	}
	return Severity(v)
}

// StepDown decreases severity by n steps, clamped to SeverityNone.
func (s Severity) StepDown(n int32) Severity {
	v := int32(s) - n
	if v < int32(SeverityNone) {
		return SeverityNone
	}
	return Severity(v)
}
