package combat

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
)

// minResidualEnergy — below this the packet has no force left to damage
// deeper layers and iteration stops.
const minResidualEnergy = 0.05

// Fixed severity thresholds for the volume channel
// (energy excess + half the rigidity excess).
var volumeThresholds = [...]float64{0.5, 1.5, 3.0, 5.0, 8.0}

// Fixed severity thresholds for the depth channel (geometry excess).
// One entry shorter: penetration without force never removes material,
// so depth alone tops out at Broken.
var depthThresholds = [...]float64{0.5, 1.5, 3.0, 5.0}

// severityFromVolume maps a volume-channel value to severity.
func severityFromVolume(v float64) model.Severity {
	sev := model.SeverityNone
	for i, t := range volumeThresholds {
		if v >= t {
			sev = model.Severity(i + 1)
		}
	}
	return sev
}

// severityFromDepth maps a depth-channel value to severity. Caps at Broken.
func severityFromDepth(v float64) model.Severity {
	sev := model.SeverityNone
	for i, t := range depthThresholds {
		if v >= t {
			sev = model.Severity(i + 1)
		}
	}
	return sev
}

// computeLayerSeverity combines the volume and depth channels for one layer.
//
// Structural layers (bone, cartilage): volume dominates; a deep channel only
// nudges the result one step up. Non-structural layers take the worse of the
// two channels but cap at Disabled — soft tissue alone cannot imply removal.
func computeLayerSeverity(geoExcess, energyExcess, rigidityExcess float64, structural bool) model.Severity {
	volume := severityFromVolume(energyExcess + 0.5*rigidityExcess)
	depth := severityFromDepth(geoExcess)

	if structural {
		sev := volume
		if depth >= model.SeverityInhibited {
			sev = sev.StepUp(1)
		}
		return sev
	}

	sev := volume.Worse(depth)
	if sev > model.SeverityDisabled {
		sev = model.SeverityDisabled
	}
	return sev
}

// GenerateWound runs a damage packet through a tissue template outer→inner
// and returns the per-layer wound.
//
// Non-physical kinds bypass the tissue model entirely. An unknown template
// means "no tissue to damage" (abstract constructs, incomplete content) and
// yields an empty wound rather than an error.
//
// Per layer: shielding first shaves the three axes, susceptibility of the
// layer then reads the post-shielding values; the penetration budget (cm)
// drops by the layer's share of the part thickness. Pierce and slash stop
// when the budget runs out; bludgeon transfers force without needing a
// penetrating channel and continues.
func GenerateWound(packet model.DamagePacket, tissueTemplateID string, geom model.PartGeometry) model.Wound {
	wound := model.Wound{Kind: packet.Kind}
	if !packet.Kind.IsPhysical() {
		return wound
	}

	stack := data.GetTissueStack(tissueTemplateID)
	if stack == nil {
		return wound
	}

	geo := packet.GeometryAxis()
	energy := packet.EnergyAxis()
	rigidity := packet.RigidityAxis()
	budget := packet.Penetration

	for _, layer := range stack {
		if energy < minResidualEnergy {
			break
		}

		geo *= 1 - layer.Deflection
		energy *= 1 - layer.Absorption
		rigidity *= 1 - layer.Dispersion

		budget -= layer.ThicknessRatio * geom.ThicknessCm

		geoExcess := excess(geo, layer.GeometryThreshold, layer.GeometryRatio)
		energyExcess := excess(energy, layer.EnergyThreshold, layer.EnergyRatio)
		rigidityExcess := excess(rigidity, layer.RigidityThreshold, layer.RigidityRatio)

		sev := computeLayerSeverity(geoExcess, energyExcess, rigidityExcess, layer.Structural)
		wound.AddLayer(layer.MaterialID, sev)

		if budget <= 0 && needsChannel(packet.Kind) {
			break
		}
	}

	return wound
}

// excess converts an axis value's overshoot past a threshold into a
// severity-driving value.
func excess(value, threshold, ratio float64) float64 {
	if value <= threshold {
		return 0
	}
	return (value - threshold) * ratio
}

// needsChannel reports whether the kind requires an open penetrating
// channel to reach deeper layers.
func needsChannel(kind model.DamageKind) bool {
	return kind == model.DamagePierce || kind == model.DamageSlash
}
