package model

import "testing"

func TestSeverity_ToIntegrity_Monotonic(t *testing.T) {
	all := []Severity{SeverityNone, SeverityMinor, SeverityInhibited, SeverityDisabled, SeverityBroken, SeverityMissing}

	for i := 1; i < len(all); i++ {
		lo, hi := all[i-1], all[i]
		if hi.ToIntegrity() > lo.ToIntegrity() {
			t.Errorf("ToIntegrity not monotonic: %s=%.2f > %s=%.2f",
				hi, hi.ToIntegrity(), lo, lo.ToIntegrity())
		}
	}
}

func TestSeverity_ToIntegrity_Bounds(t *testing.T) {
	if got := SeverityNone.ToIntegrity(); got != 1.0 {
		t.Errorf("None integrity = %.2f, want 1.0", got)
	}
	if got := SeverityMissing.ToIntegrity(); got != 0.0 {
		t.Errorf("Missing integrity = %.2f, want 0.0", got)
	}
}

func TestSeverity_Ordering(t *testing.T) {
	if SeverityBroken <= SeverityMinor {
		t.Error("expected Broken > Minor by ordinal")
	}
	if SeverityNone.Worse(SeverityDisabled) != SeverityDisabled {
		t.Error("Worse(None, Disabled) should be Disabled")
	}
	if SeverityBroken.Worse(SeverityMinor) != SeverityBroken {
		t.Error("Worse(Broken, Minor) should be Broken")
	}
}

func TestSeverity_StepClamps(t *testing.T) {
	if got := SeverityBroken.StepUp(3); got != SeverityMissing {
		t.Errorf("Broken.StepUp(3) = %s, want Missing", got)
	}
	if got := SeverityMinor.StepDown(4); got != SeverityNone {
		t.Errorf("Minor.StepDown(4) = %s, want None", got)
	}
	if got := SeverityInhibited.StepUp(1); got != SeverityDisabled {
		t.Errorf("Inhibited.StepUp(1) = %s, want Disabled", got)
	}
	if got := SeverityDisabled.StepDown(1); got != SeverityInhibited {
		t.Errorf("Disabled.StepDown(1) = %s, want Inhibited", got)
	}
}
