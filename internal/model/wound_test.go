package model

import "testing"

func TestWound_AddLayer_SkipsNone(t *testing.T) {
	var w Wound
	w.AddLayer("skin", SeverityNone)

	if !w.IsEmpty() {
		t.Error("adding a None severity layer should leave the wound empty")
	}
}

func TestWound_AddLayer_OnePerMaterial(t *testing.T) {
	var w Wound
	w.AddLayer("skin", SeverityMinor)
	w.AddLayer("skin", SeverityDisabled)
	w.AddLayer("skin", SeverityInhibited)

	if len(w.Layers) != 1 {
		t.Fatalf("len(Layers) = %d, want 1", len(w.Layers))
	}
	if got := w.LayerSeverity("skin"); got != SeverityDisabled {
		t.Errorf("LayerSeverity(skin) = %s, want Disabled (keeps worst)", got)
	}
}

func TestWound_AddLayer_Bounded(t *testing.T) {
	var w Wound
	materials := []string{"skin", "fat", "muscle", "tendon", "cartilage", "bone", "organ", "brain"}
	for _, m := range materials {
		w.AddLayer(m, SeverityMinor)
	}

	if len(w.Layers) != MaxWoundLayers {
		t.Errorf("len(Layers) = %d, want capped at %d", len(w.Layers), MaxWoundLayers)
	}
}

func TestWound_Worst(t *testing.T) {
	var w Wound
	if got := w.Worst(); got != SeverityNone {
		t.Errorf("empty wound Worst() = %s, want None", got)
	}

	w.AddLayer("skin", SeverityMinor)
	w.AddLayer("muscle", SeverityBroken)
	w.AddLayer("bone", SeverityInhibited)

	if got := w.Worst(); got != SeverityBroken {
		t.Errorf("Worst() = %s, want Broken", got)
	}
}

func TestWound_LayerSeverity_Unknown(t *testing.T) {
	var w Wound
	w.AddLayer("skin", SeverityMinor)

	if got := w.LayerSeverity("bone"); got != SeverityNone {
		t.Errorf("LayerSeverity(bone) = %s, want None", got)
	}
}
