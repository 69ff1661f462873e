package model

// ClothingLayer — the nine stacked protection slots per body part,
// innermost (Skin) to outermost (Cloak). Armour resolution iterates
// these outer→inner.
type ClothingLayer int32

const (
	LayerSkin ClothingLayer = iota
	LayerUnderwear
	LayerShirt
	LayerPadding
	LayerMail
	LayerPlate
	LayerSurcoat
	LayerOvercoat
	LayerCloak
	ClothingLayerCount = 9
)

// String returns human-readable clothing layer name.
func (l ClothingLayer) String() string {
	switch l {
	case LayerSkin:
		return "Skin"
	case LayerUnderwear:
		return "Underwear"
	case LayerShirt:
		return "Shirt"
	case LayerPadding:
		return "Padding"
	case LayerMail:
		return "Mail"
	case LayerPlate:
		return "Plate"
	case LayerSurcoat:
		return "Surcoat"
	case LayerOvercoat:
		return "Overcoat"
	case LayerCloak:
		return "Cloak"
	default:
		return "Unknown"
	}
}

// Totality — how completely a coverage entry wraps its body part.
// The complement is the chance an attack slips through an unarmoured gap.
type Totality int32

const (
	TotalityTotal Totality = iota
	TotalityFull
	TotalityFrontal
	TotalityHalf
	TotalityMinimal
)

// GapChance returns the probability that an attack bypasses this
// coverage entirely.
func (t Totality) GapChance() float64 {
	switch t {
	case TotalityTotal:
		return 0.0
	case TotalityFull:
		return 0.05
	case TotalityFrontal:
		return 0.2
	case TotalityHalf:
		return 0.35
	case TotalityMinimal:
		return 0.5
	default:
		return 0.5
	}
}

// String returns human-readable totality name.
func (t Totality) String() string {
	switch t {
	case TotalityTotal:
		return "Total"
	case TotalityFull:
		return "Full"
	case TotalityFrontal:
		return "Frontal"
	case TotalityHalf:
		return "Half"
	case TotalityMinimal:
		return "Minimal"
	default:
		return "Unknown"
	}
}

// Resistance — absorption response of an armour material to one damage kind.
// Damage below Threshold is fully absorbed; the excess passes through
// scaled by Ratio.
type Resistance struct {
	Threshold float64 `yaml:"threshold"`
	Ratio     float64 `yaml:"ratio"`
}

// ArmorMaterial — physical properties of an armour substance.
type ArmorMaterial struct {
	Name       string                    `yaml:"name"`
	Hardness   float64                   `yaml:"hardness"`  // deflection probability, 0–1
	Thickness  float64                   `yaml:"thickness"` // penetration cost, cm
	Durability float64                   `yaml:"durability"`
	Resists    map[DamageKind]Resistance `yaml:"-"`
}

// Resistance returns the material's response to a damage kind.
// Unknown kinds pass through unchanged (zero threshold, ratio 1).
func (m *ArmorMaterial) Resistance(kind DamageKind) Resistance {
	if r, ok := m.Resists[kind]; ok {
		return r
	}
	return Resistance{Threshold: 0, Ratio: 1.0}
}

// CoverageEntry — one (part, layer) cell of an armour piece's pattern.
type CoverageEntry struct {
	Tag      PartTag
	Side     Side // SideNone in a sided template: resolved from the instance
	Layer    ClothingLayer
	Totality Totality
}

// ArmorTemplate — a wearable piece: material plus coverage pattern.
// Sided templates (a single gauntlet, a single boot) take their side
// from the equipped instance.
type ArmorTemplate struct {
	ID       string
	Name     string
	Material *ArmorMaterial
	Sided    bool
	Coverage []CoverageEntry
}

// ArmorInstance — one equipped piece. Integrity is per coverage entry and
// lives here: the stack's lookup table references back into this slice, so
// wear applied during resolution survives stack rebuilds and is visible to
// the equipment owner.
type ArmorInstance struct {
	Template  *ArmorTemplate
	Side      Side
	Integrity []float64 // parallel to Template.Coverage
}

// NewArmorInstance creates an equipped piece at full material durability.
func NewArmorInstance(tpl *ArmorTemplate, side Side) *ArmorInstance {
	integ := make([]float64, len(tpl.Coverage))
	for i := range integ {
		integ[i] = tpl.Material.Durability
	}
	return &ArmorInstance{Template: tpl, Side: side, Integrity: integ}
}

// coverageSide resolves the effective side of a coverage entry.
func (a *ArmorInstance) coverageSide(e CoverageEntry) Side {
	if a.Template.Sided && e.Side == SideNone {
		return a.Side
	}
	return e.Side
}

// LayerProtection — back-reference from a stack slot into the owning
// instance's coverage and integrity storage. Kept as (instance, index)
// rather than a raw *float64 so the sharing stays explicit.
type LayerProtection struct {
	Instance *ArmorInstance
	Coverage int
}

// Material returns the protecting material.
func (lp LayerProtection) Material() *ArmorMaterial {
	return lp.Instance.Template.Material
}

// Totality returns the coverage completeness of this slot.
func (lp LayerProtection) Totality() Totality {
	return lp.Instance.Template.Coverage[lp.Coverage].Totality
}

// CurrentIntegrity reads the shared integrity value.
func (lp LayerProtection) CurrentIntegrity() float64 {
	return lp.Instance.Integrity[lp.Coverage]
}

// Wear reduces the shared integrity value, clamped at zero.
// Returns true when this call drove it to zero (layer destroyed).
func (lp LayerProtection) Wear(amount float64) bool {
	cur := lp.Instance.Integrity[lp.Coverage]
	if cur <= 0 {
		return false
	}
	next := cur - amount
	if next < 0 {
		next = 0
	}
	lp.Instance.Integrity[lp.Coverage] = next
	return next == 0
}

// ArmorStack — per-body protection table: PartIndex → nine optional layer
// slots. Rebuilt from scratch whenever the equipped-item set changes;
// integrity is not stored here, only referenced, so rebuilds lose nothing.
type ArmorStack struct {
	slots map[PartIndex]*[ClothingLayerCount]*LayerProtection
}

// NewArmorStack creates an empty stack.
func NewArmorStack() *ArmorStack {
	return &ArmorStack{slots: make(map[PartIndex]*[ClothingLayerCount]*LayerProtection)}
}

// Rebuild repopulates the stack from the equipped instances. Coverage
// entries whose (tag, side) match no part of the body silently yield no
// protection; an already-occupied slot keeps its first occupant.
func (s *ArmorStack) Rebuild(body *Body, equipped []*ArmorInstance) {
	s.slots = make(map[PartIndex]*[ClothingLayerCount]*LayerProtection)
	for _, inst := range equipped {
		for ci, entry := range inst.Template.Coverage {
			idx := body.FindPart(entry.Tag, inst.coverageSide(entry))
			if idx == NoPart {
				continue
			}
			row := s.slots[idx]
			if row == nil {
				row = &[ClothingLayerCount]*LayerProtection{}
				s.slots[idx] = row
			}
			if row[entry.Layer] != nil {
				continue
			}
			row[entry.Layer] = &LayerProtection{Instance: inst, Coverage: ci}
		}
	}
}

// LayerAt returns the protection occupying (part, layer), or nil.
func (s *ArmorStack) LayerAt(idx PartIndex, layer ClothingLayer) *LayerProtection {
	row := s.slots[idx]
	if row == nil || layer < 0 || layer >= ClothingLayerCount {
		return nil
	}
	return row[layer]
}

// CoveredLayers returns how many slots are occupied for a part.
func (s *ArmorStack) CoveredLayers(idx PartIndex) int {
	row := s.slots[idx]
	if row == nil {
		return 0
	}
	n := 0
	for _, lp := range row {
		if lp != nil {
			n++
		}
	}
	return n
}
