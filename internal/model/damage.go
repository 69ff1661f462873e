package model

// DamageKind — closed set of attack damage types.
// Physical kinds run through the tissue-layer wound model; the rest
// (burn/shock/poison/frost) are resolved by status effects and bypass it.
type DamageKind int32

const (
	DamageSlash DamageKind = iota
	DamagePierce
	DamageBludgeon
	DamageCrush
	DamageShatter
	DamageBurn
	DamageShock
	DamagePoison
	DamageFrost
)

// String returns human-readable damage kind name.
func (k DamageKind) String() string {
	switch k {
	case DamageSlash:
		return "Slash"
	case DamagePierce:
		return "Pierce"
	case DamageBludgeon:
		return "Bludgeon"
	case DamageCrush:
		return "Crush"
	case DamageShatter:
		return "Shatter"
	case DamageBurn:
		return "Burn"
	case DamageShock:
		return "Shock"
	case DamagePoison:
		return "Poison"
	case DamageFrost:
		return "Frost"
	default:
		return "Unknown"
	}
}

// IsPhysical reports whether the kind is resolved by the tissue wound model.
func (k DamageKind) IsPhysical() bool {
	switch k {
	case DamageSlash, DamagePierce, DamageBludgeon, DamageCrush, DamageShatter:
		return true
	default:
		return false
	}
}

// BleedTypeFactor returns the per-kind bleeding multiplier.
// Slashing wounds bleed freely, blunt trauma mostly does not.
func (k DamageKind) BleedTypeFactor() float64 {
	switch k {
	case DamageSlash:
		return 1.5
	case DamagePierce:
		return 1.0
	case DamageShatter:
		return 0.75
	case DamageCrush:
		return 0.5
	case DamageBludgeon:
		return 0.25
	default:
		return 0.0
	}
}

// DamagePacket — one resolved attack's worth of incoming damage.
//
// Amount and Penetration are the legacy scalar channel (still what the armour
// stage and older weapon data operate on). Geometry/Energy/Rigidity are the
// physics axes of the tissue model; when an axis is zero the corresponding
// accessor falls back to the legacy scalars.
type DamagePacket struct {
	Kind        DamageKind
	Amount      float64 // raw damage magnitude
	Penetration float64 // penetrating channel depth, cm

	Geometry float64 // sharpness / penetrating profile
	Energy   float64 // raw force, volume-destruction potential
	Rigidity float64 // concentration of force
}

// GeometryAxis returns the geometry axis, falling back to legacy Penetration.
func (p DamagePacket) GeometryAxis() float64 {
	if p.Geometry > 0 {
		return p.Geometry
	}
	return p.Penetration
}

// EnergyAxis returns the energy axis, falling back to legacy Amount.
func (p DamagePacket) EnergyAxis() float64 {
	if p.Energy > 0 {
		return p.Energy
	}
	return p.Amount
}

// RigidityAxis returns the rigidity axis, falling back to a kind-derived
// fraction of Amount (blunt kinds concentrate force, cutting kinds spread it).
func (p DamagePacket) RigidityAxis() float64 {
	if p.Rigidity > 0 {
		return p.Rigidity
	}
	switch p.Kind {
	case DamageBludgeon:
		return p.Amount * 0.5
	case DamageCrush:
		return p.Amount * 0.6
	case DamageShatter:
		return p.Amount * 0.7
	case DamageSlash:
		return p.Amount * 0.2
	case DamagePierce:
		return p.Amount * 0.1
	default:
		return 0
	}
}

// IsZero reports whether the packet carries no magnitude on any channel.
func (p DamagePacket) IsZero() bool {
	return p.Amount <= 0 && p.Geometry <= 0 && p.Energy <= 0 && p.Rigidity <= 0
}
