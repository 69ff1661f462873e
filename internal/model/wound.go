package model

// MaxWoundLayers — upper bound on distinct tissue layers recorded per wound.
// Matches the deepest builtin tissue stack (skin→fat→muscle→bone plus extras).
const MaxWoundLayers = 6

// WoundLayer — severity recorded for one tissue layer of a wound.
type WoundLayer struct {
	Material string // tissue material id ("skin", "muscle", "bone", ...)
	Severity Severity
}

// Wound — result of one damage packet applied to one body part.
// At most one entry per tissue material; entries exist only for layers
// where computed severity is above None.
type Wound struct {
	Kind     DamageKind
	Layers   []WoundLayer
	Bleeding float64 // blood volume lost per tick
}

// IsEmpty reports whether the wound recorded no tissue damage.
func (w Wound) IsEmpty() bool {
	return len(w.Layers) == 0
}

// AddLayer records severity for a tissue material. Severity None is ignored;
// a repeated material keeps the worse severity. Silently drops entries past
// MaxWoundLayers (cannot happen with well-formed tissue stacks).
func (w *Wound) AddLayer(material string, sev Severity) {
	if sev == SeverityNone {
		return
	}
	for i := range w.Layers {
		if w.Layers[i].Material == material {
			w.Layers[i].Severity = w.Layers[i].Severity.Worse(sev)
			return
		}
	}
	if len(w.Layers) >= MaxWoundLayers {
		return
	}
	w.Layers = append(w.Layers, WoundLayer{Material: material, Severity: sev})
}

// LayerSeverity returns the recorded severity for a tissue material,
// or SeverityNone if the layer is undamaged.
func (w Wound) LayerSeverity(material string) Severity {
	for _, l := range w.Layers {
		if l.Material == material {
			return l.Severity
		}
	}
	return SeverityNone
}

// Worst returns the most severe layer entry of the wound.
func (w Wound) Worst() Severity {
	worst := SeverityNone
	for _, l := range w.Layers {
		worst = worst.Worse(l.Severity)
	}
	return worst
}
