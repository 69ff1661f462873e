package combat

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
)

// ArteryMultiplier — bleeding scale when a major artery is opened.
const ArteryMultiplier = 5.0

// baseBleedRate — blood volume per tick for a factor-1 wound.
const baseBleedRate = 0.1

// DamageResult — outcome of one packet applied directly to a body part.
type DamageResult struct {
	Wound          model.Wound
	Severed        bool
	HitMajorArtery bool
}

// bleedSeverityFactor maps the worst wound layer to a bleeding multiplier.
func bleedSeverityFactor(sev model.Severity) float64 {
	switch sev {
	case model.SeverityMinor:
		return 0.5
	case model.SeverityInhibited:
		return 1.0
	case model.SeverityDisabled:
		return 2.0
	case model.SeverityBroken:
		return 3.0
	case model.SeverityMissing:
		return 4.0
	default:
		return 0.0
	}
}

// ApplyDamageToPart resolves a packet against one body part: generates the
// wound, evaluates severing, derives bleeding (with the artery multiplier
// when a major vessel is opened), records the wound and recomputes the
// part's aggregate severity.
//
// Out-of-range indices yield an empty result — the caller aimed at nothing.
func ApplyDamageToPart(body *model.Body, idx model.PartIndex, packet model.DamagePacket) DamageResult {
	part := body.Part(idx)
	if part == nil || packet.IsZero() {
		return DamageResult{}
	}

	wound := GenerateWound(scaleByTrauma(packet, part.TraumaMult), part.TissueTemplate, part.Geometry)

	severed := CheckSevering(part, wound)
	if severed {
		part.IsSevered = true
	}

	arteryHit := part.HasMajorArtery &&
		(wound.LayerSeverity("muscle") >= model.SeverityInhibited ||
			wound.LayerSeverity("fat") >= model.SeverityDisabled)

	if !wound.IsEmpty() {
		rate := baseBleedRate * packet.Kind.BleedTypeFactor() * bleedSeverityFactor(wound.Worst())
		if arteryHit {
			rate *= ArteryMultiplier
		}
		wound.Bleeding = rate
		part.AddWound(wound)
		part.Severity = aggregateSeverity(part)
	}

	return DamageResult{Wound: wound, Severed: severed, HitMajorArtery: arteryHit}
}

// scaleByTrauma applies the part's trauma multiplier to the force channels.
// Geometry (sharpness) is a property of the weapon, not the target, and
// stays untouched.
func scaleByTrauma(p model.DamagePacket, mult float64) model.DamagePacket {
	if mult == 1.0 || mult <= 0 {
		return p
	}
	p.Amount *= mult
	if p.Energy > 0 {
		p.Energy *= mult
	}
	if p.Rigidity > 0 {
		p.Rigidity *= mult
	}
	return p
}

// aggregateSeverity recomputes the part's reported severity from all its
// wounds. Structural damage speaks for itself; soft-tissue damage alone
// cannot imply a state more than two steps past what the structural layers
// justify.
func aggregateSeverity(part *model.Part) model.Severity {
	structuralByMaterial := map[string]bool{}
	for _, layer := range data.GetTissueStack(part.TissueTemplate) {
		if layer.Structural {
			structuralByMaterial[layer.MaterialID] = true
		}
	}

	worstStructural := model.SeverityNone
	worstAny := model.SeverityNone
	for _, w := range part.Wounds {
		for _, l := range w.Layers {
			worstAny = worstAny.Worse(l.Severity)
			if structuralByMaterial[l.Material] {
				worstStructural = worstStructural.Worse(l.Severity)
			}
		}
	}

	if worstStructural >= worstAny {
		return worstStructural
	}
	capped := worstStructural.StepUp(2)
	if worstAny > capped {
		return capped
	}
	return worstAny
}
