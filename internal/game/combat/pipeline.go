package combat

import "github.com/udisondev/skirmish/internal/model"

// AttackResult — combined outcome of the absorption→wound pipeline.
type AttackResult struct {
	Absorption AbsorptionResult
	Damage     DamageResult
}

// ResolveAttack runs the full pipeline for one attack: the armour stack
// resolves first, and whatever packet survives it is applied to the body
// part. A nil stack means an unarmoured target.
func ResolveAttack(body *model.Body, stack *model.ArmorStack, idx model.PartIndex, packet model.DamagePacket, rng Roller) AttackResult {
	return resolveAttack(body, stack, idx, packet, rng, nil)
}

// ResolveAttackEvents is ResolveAttack with occurrence reporting: armour
// gaps, deflections and destroyed layers, plus wound, severing and
// artery-hit outcomes, are emitted to the sink in resolution order.
func ResolveAttackEvents(body *model.Body, stack *model.ArmorStack, idx model.PartIndex, packet model.DamagePacket, rng Roller, sink EventSink) AttackResult {
	return resolveAttack(body, stack, idx, packet, rng, sink)
}

func resolveAttack(body *model.Body, stack *model.ArmorStack, idx model.PartIndex, packet model.DamagePacket, rng Roller, sink EventSink) AttackResult {
	var res AttackResult

	remaining := packet
	if stack != nil {
		res.Absorption = resolveThroughArmour(stack, idx, packet, rng, sink)
		remaining = res.Absorption.Remaining
	} else {
		res.Absorption = AbsorptionResult{Remaining: packet, DeflectedLayer: -1}
	}

	res.Damage = ApplyDamageToPart(body, idx, remaining)

	if !res.Damage.Wound.IsEmpty() {
		emit(sink, Event{Type: EventWound, Part: idx, Severity: res.Damage.Wound.Worst()})
	}
	if res.Damage.Severed {
		emit(sink, Event{Type: EventSevered, Part: idx})
	}
	if res.Damage.HitMajorArtery {
		emit(sink, Event{Type: EventArteryHit, Part: idx})
	}

	return res
}
