package data

import (
	"fmt"
	"strings"

	"github.com/udisondev/skirmish/internal/model"
)

// Parse helpers for enum names in yaml catalog files. Matching is
// case-insensitive; unknown names return an error so authoring typos
// surface at load time, not as silent no-ops mid-combat.

// ParseDamageKind converts a yaml damage kind name to model.DamageKind.
func ParseDamageKind(s string) (model.DamageKind, error) {
	switch strings.ToLower(s) {
	case "slash":
		return model.DamageSlash, nil
	case "pierce":
		return model.DamagePierce, nil
	case "bludgeon":
		return model.DamageBludgeon, nil
	case "crush":
		return model.DamageCrush, nil
	case "shatter":
		return model.DamageShatter, nil
	case "burn":
		return model.DamageBurn, nil
	case "shock":
		return model.DamageShock, nil
	case "poison":
		return model.DamagePoison, nil
	case "frost":
		return model.DamageFrost, nil
	default:
		return 0, fmt.Errorf("unknown damage kind %q", s)
	}
}

// ParsePartTag converts a yaml part tag name to model.PartTag.
func ParsePartTag(s string) (model.PartTag, error) {
	switch strings.ToLower(s) {
	case "torso":
		return model.PartTorso, nil
	case "head":
		return model.PartHead, nil
	case "neck":
		return model.PartNeck, nil
	case "eye":
		return model.PartEye, nil
	case "ear":
		return model.PartEar, nil
	case "nose":
		return model.PartNose, nil
	case "jaw":
		return model.PartJaw, nil
	case "arm":
		return model.PartArm, nil
	case "hand":
		return model.PartHand, nil
	case "finger":
		return model.PartFinger, nil
	case "leg":
		return model.PartLeg, nil
	case "foot":
		return model.PartFoot, nil
	case "toe":
		return model.PartToe, nil
	case "heart":
		return model.PartHeart, nil
	case "lung":
		return model.PartLung, nil
	case "gut":
		return model.PartGut, nil
	case "brain":
		return model.PartBrain, nil
	case "tail":
		return model.PartTail, nil
	case "wing":
		return model.PartWing, nil
	default:
		return 0, fmt.Errorf("unknown part tag %q", s)
	}
}

// ParseSide converts a yaml side name to model.Side. Empty means SideNone.
func ParseSide(s string) (model.Side, error) {
	switch strings.ToLower(s) {
	case "", "none", "center":
		return model.SideNone, nil
	case "left":
		return model.SideLeft, nil
	case "right":
		return model.SideRight, nil
	default:
		return 0, fmt.Errorf("unknown side %q", s)
	}
}

// ParseClothingLayer converts a yaml layer name to model.ClothingLayer.
func ParseClothingLayer(s string) (model.ClothingLayer, error) {
	switch strings.ToLower(s) {
	case "skin":
		return model.LayerSkin, nil
	case "underwear":
		return model.LayerUnderwear, nil
	case "shirt":
		return model.LayerShirt, nil
	case "padding":
		return model.LayerPadding, nil
	case "mail":
		return model.LayerMail, nil
	case "plate":
		return model.LayerPlate, nil
	case "surcoat":
		return model.LayerSurcoat, nil
	case "overcoat":
		return model.LayerOvercoat, nil
	case "cloak":
		return model.LayerCloak, nil
	default:
		return 0, fmt.Errorf("unknown clothing layer %q", s)
	}
}

// ParseTotality converts a yaml totality name to model.Totality.
// Empty defaults to frontal, matching the original data tables.
func ParseTotality(s string) (model.Totality, error) {
	switch strings.ToLower(s) {
	case "total":
		return model.TotalityTotal, nil
	case "full":
		return model.TotalityFull, nil
	case "", "frontal":
		return model.TotalityFrontal, nil
	case "half":
		return model.TotalityHalf, nil
	case "minimal":
		return model.TotalityMinimal, nil
	default:
		return 0, fmt.Errorf("unknown totality %q", s)
	}
}
