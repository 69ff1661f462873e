package model

// PartIndex — stable identity of a body part within its Body.
// Indexes into the body's flat part storage; never reused for the lifetime
// of the body, so severing only flags, never frees.
type PartIndex int32

// NoPart marks an absent parent/enclosing reference.
const NoPart PartIndex = -1

// PartTag — anatomical category of a body part.
type PartTag int32

const (
	PartTorso PartTag = iota
	PartHead
	PartNeck
	PartEye
	PartEar
	PartNose
	PartJaw
	PartArm
	PartHand
	PartFinger
	PartLeg
	PartFoot
	PartToe
	PartHeart
	PartLung
	PartGut
	PartBrain
	PartTail
	PartWing
)

// String returns human-readable part tag name.
func (t PartTag) String() string {
	switch t {
	case PartTorso:
		return "Torso"
	case PartHead:
		return "Head"
	case PartNeck:
		return "Neck"
	case PartEye:
		return "Eye"
	case PartEar:
		return "Ear"
	case PartNose:
		return "Nose"
	case PartJaw:
		return "Jaw"
	case PartArm:
		return "Arm"
	case PartHand:
		return "Hand"
	case PartFinger:
		return "Finger"
	case PartLeg:
		return "Leg"
	case PartFoot:
		return "Foot"
	case PartToe:
		return "Toe"
	case PartHeart:
		return "Heart"
	case PartLung:
		return "Lung"
	case PartGut:
		return "Gut"
	case PartBrain:
		return "Brain"
	case PartTail:
		return "Tail"
	case PartWing:
		return "Wing"
	default:
		return "Unknown"
	}
}

// Side — lateral position of a part (or of a sided armour piece).
type Side int32

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns human-readable side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// PartGeometry — physical dimensions used by the wound and armour models.
type PartGeometry struct {
	ThicknessCm float64 // outer surface to core, path length for penetration
	LengthCm    float64
	AreaCm2     float64 // presented surface, drives small-part severing
}

// SmallPartAreaCm2 — parts under this area sever a full severity step
// more easily (digits, ears vs torsos).
const SmallPartAreaCm2 = 30.0

// IsSmall reports whether the part qualifies for relaxed severing thresholds.
func (g PartGeometry) IsSmall() bool {
	return g.AreaCm2 < SmallPartAreaCm2
}

// Part — one node of a body's anatomical graph.
//
// Parent is the attachment link (severing the parent detaches the subtree).
// Enclosing is containment only: the heart is enclosed by the torso but not
// attached to it, so a severed torso does not "sever" the heart — containment
// never participates in the ancestor walk.
type Part struct {
	Tag       PartTag
	Side      Side
	Parent    PartIndex // NoPart for the root
	Enclosing PartIndex // NoPart when not enclosed

	Vital    bool // losing it is lethal
	Internal bool // not directly targetable from outside
	CanGrasp bool
	CanStand bool
	CanSee   bool
	CanHear  bool

	TissueTemplate string // key into the tissue catalog
	HasMajorArtery bool
	TraumaMult     float64 // incoming-damage scale, 1.0 = neutral

	Geometry PartGeometry

	Severity  Severity
	Wounds    []Wound
	IsSevered bool
}

// AddWound appends a wound to the part. Wounds are never removed.
func (p *Part) AddWound(w Wound) {
	p.Wounds = append(p.Wounds, w)
}

// BleedingRate returns the summed bleeding of all wounds on this part.
func (p *Part) BleedingRate() float64 {
	total := 0.0
	for _, w := range p.Wounds {
		total += w.Bleeding
	}
	return total
}
