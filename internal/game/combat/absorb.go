package combat

import "github.com/udisondev/skirmish/internal/model"

// Roller — injected randomness for gap and deflection rolls.
// *rand.Rand (math/rand/v2) satisfies it; tests inject scripted sequences.
type Roller interface {
	Float64() float64
}

// Wear fractions per armour outcome.
const (
	deflectWearFraction = 0.10 // deflected: 10% of current amount
	absorbWearFraction  = 0.05 // fully absorbed below threshold: 5%
	passWearFraction    = 0.50 // partial absorption: half the absorbed amount
)

// AbsorptionResult — what the armour stack did to an incoming packet.
type AbsorptionResult struct {
	Remaining model.DamagePacket

	// LayersHit counts occupied layers the attack actually engaged.
	// Zero with armour present means the attack slipped through a gap
	// and reached the body untouched.
	LayersHit int

	Deflected      bool
	DeflectedLayer model.ClothingLayer

	// LayersDestroyed counts layers whose integrity crossed zero this call.
	LayersDestroyed int
}

// ResolveThroughArmour runs a packet through the target part's nine
// protection slots outer (Cloak) → inner (Skin) and returns what remains.
//
// Per occupied, intact layer: a totality gap roll may skip it entirely;
// a hardness roll may deflect the attack outright; otherwise the material's
// per-kind resistance absorbs up to its threshold and passes the scaled
// excess inward, wearing the layer's shared integrity and costing the
// packet penetration equal to the material thickness. Pierce and slash die
// when penetration runs out; bludgeon keeps transferring force.
func ResolveThroughArmour(stack *model.ArmorStack, idx model.PartIndex, packet model.DamagePacket, rng Roller) AbsorptionResult {
	return resolveThroughArmour(stack, idx, packet, rng, nil)
}

func resolveThroughArmour(stack *model.ArmorStack, idx model.PartIndex, packet model.DamagePacket, rng Roller, sink EventSink) AbsorptionResult {
	res := AbsorptionResult{Remaining: packet, DeflectedLayer: -1}

	origAmount := packet.Amount
	origPen := packet.Penetration
	amount := packet.Amount
	pen := packet.Penetration

	for layer := model.LayerCloak; layer >= model.LayerSkin; layer-- {
		if amount <= 0 {
			break
		}
		lp := stack.LayerAt(idx, layer)
		if lp == nil || lp.CurrentIntegrity() <= 0 {
			continue
		}

		if rng.Float64() < lp.Totality().GapChance() {
			emit(sink, Event{Type: EventArmourGap, Part: idx, Layer: layer})
			continue
		}
		res.LayersHit++

		mat := lp.Material()
		if rng.Float64() < mat.Hardness {
			if lp.Wear(deflectWearFraction * amount) {
				res.LayersDestroyed++
				emit(sink, Event{Type: EventArmourDestroyed, Part: idx, Layer: layer})
			}
			amount = 0
			res.Deflected = true
			res.DeflectedLayer = layer
			emit(sink, Event{Type: EventArmourDeflected, Part: idx, Layer: layer})
			break
		}

		r := mat.Resistance(packet.Kind)
		if amount < r.Threshold {
			if lp.Wear(absorbWearFraction * amount) {
				res.LayersDestroyed++
				emit(sink, Event{Type: EventArmourDestroyed, Part: idx, Layer: layer})
			}
			amount = 0
			break
		}

		effective := (amount - r.Threshold) * r.Ratio
		absorbed := amount - effective
		if lp.Wear(passWearFraction * absorbed) {
			res.LayersDestroyed++
			emit(sink, Event{Type: EventArmourDestroyed, Part: idx, Layer: layer})
		}
		pen -= mat.Thickness
		amount = effective

		if pen <= 0 && needsChannel(packet.Kind) {
			amount = 0
			break
		}
	}

	res.Remaining = rescalePacket(packet, origAmount, origPen, amount, pen)
	return res
}

// rescalePacket writes the post-armour scalars back into the packet and
// scales the physics axes in proportion: energy and rigidity follow the
// amount, geometry follows the surviving penetration.
func rescalePacket(p model.DamagePacket, origAmount, origPen, amount, pen float64) model.DamagePacket {
	if pen < 0 {
		pen = 0
	}
	if origAmount > 0 && p.Amount != amount {
		factor := amount / origAmount
		p.Energy *= factor
		p.Rigidity *= factor
	}
	if origPen > 0 && p.Penetration != pen {
		p.Geometry *= pen / origPen
	}
	p.Amount = amount
	p.Penetration = pen
	return p
}
