package combat

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
)

// structuralMaterial returns the material id of the part's structural layer:
// bone if present, else cartilage. Parts with neither (organs) cannot sever.
func structuralMaterial(tissueTemplateID string) string {
	stack := data.GetTissueStack(tissueTemplateID)
	var cartilage string
	for _, layer := range stack {
		if !layer.Structural {
			continue
		}
		if layer.MaterialID == "bone" {
			return "bone"
		}
		cartilage = layer.MaterialID
	}
	return cartilage
}

// CheckSevering decides whether a wound detaches the part.
//
// Small parts (area under 30 cm²) get every relaxable threshold lowered one
// severity step — fingers and ears come off far more easily than torsos.
// Pierce never qualifies for relaxation: a narrow channel essentially never
// cleanly severs, whatever the part size.
func CheckSevering(part *model.Part, wound model.Wound) bool {
	if part.IsSevered {
		return false
	}
	structural := structuralMaterial(part.TissueTemplate)
	if structural == "" {
		return false
	}

	structuralSev := wound.LayerSeverity(structural)
	relax := int32(0)
	if part.Geometry.IsSmall() {
		relax = 1
	}

	switch wound.Kind {
	case model.DamageSlash:
		if structuralSev >= model.SeverityMissing {
			return true
		}
		softCut := wound.LayerSeverity("muscle") >= model.SeverityDisabled.StepDown(relax) ||
			wound.LayerSeverity("tendon") >= model.SeverityDisabled.StepDown(relax)
		return structuralSev >= model.SeverityBroken.StepDown(relax) && softCut
	case model.DamagePierce:
		return structuralSev >= model.SeverityMissing
	case model.DamageBludgeon, model.DamageCrush, model.DamageShatter:
		return structuralSev >= model.SeverityMissing.StepDown(relax)
	default:
		return false
	}
}
