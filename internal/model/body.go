package model

import "fmt"

// Body — full anatomical graph of one combatant.
//
// Parts live in a flat slice indexed by PartIndex (arena-by-index: no pointer
// chasing, no ownership cycles between enclosing/enclosed parts). Storage
// order is topological — every parent's index is less than its children's —
// which makes effective-integrity propagation a single forward pass.
type Body struct {
	Name  string
	parts []Part
}

// NewBody creates an empty body.
func NewBody(name string) *Body {
	return &Body{Name: name}
}

// AddPart appends a part and returns its index.
// Enforces the topological-order invariant: parent and enclosing references
// must point at already-stored parts.
func (b *Body) AddPart(p Part) (PartIndex, error) {
	idx := PartIndex(len(b.parts))
	if p.Parent != NoPart && (p.Parent < 0 || p.Parent >= idx) {
		return NoPart, fmt.Errorf("part %s: parent index %d must precede part index %d", p.Tag, p.Parent, idx)
	}
	if p.Enclosing != NoPart && (p.Enclosing < 0 || p.Enclosing >= idx) {
		return NoPart, fmt.Errorf("part %s: enclosing index %d must precede part index %d", p.Tag, p.Enclosing, idx)
	}
	if p.TraumaMult <= 0 {
		p.TraumaMult = 1.0
	}
	b.parts = append(b.parts, p)
	return idx, nil
}

// PartCount returns the number of stored parts (severed parts included).
func (b *Body) PartCount() int {
	return len(b.parts)
}

// Part returns the part at idx, or nil when out of range.
func (b *Body) Part(idx PartIndex) *Part {
	if idx < 0 || int(idx) >= len(b.parts) {
		return nil
	}
	return &b.parts[idx]
}

// FindPart returns the index of the first part matching tag and side,
// or NoPart when the body has no such part.
func (b *Body) FindPart(tag PartTag, side Side) PartIndex {
	for i := range b.parts {
		if b.parts[i].Tag == tag && b.parts[i].Side == side {
			return PartIndex(i)
		}
	}
	return NoPart
}

// IsEffectivelySevered walks the parent chain and reports whether the part
// or any attachment ancestor carries the severed flag. This is the single
// source of truth for "still connected" — parts are never removed from
// storage, so a severed shoulder implies a severed hand without touching
// the hand's own flag.
func (b *Body) IsEffectivelySevered(idx PartIndex) bool {
	for idx != NoPart {
		p := b.Part(idx)
		if p == nil {
			return false
		}
		if p.IsSevered {
			return true
		}
		idx = p.Parent
	}
	return false
}

// ComputeEffectiveIntegrities returns per-part effective integrity in one
// forward pass over the topologically ordered storage. A part's effective
// integrity is its own severity integrity times its parent's effective
// integrity; a severed part contributes 0 regardless of severity, which is
// how shoulder damage propagates down the arm→hand→finger chain.
func (b *Body) ComputeEffectiveIntegrities() []float64 {
	out := make([]float64, len(b.parts))
	for i := range b.parts {
		p := &b.parts[i]
		if p.IsSevered {
			out[i] = 0
			continue
		}
		eff := p.Severity.ToIntegrity()
		if p.Parent != NoPart {
			eff *= out[p.Parent]
		}
		out[i] = eff
	}
	return out
}

// GraspStrength aggregates effective integrity over grasping parts (0–1),
// weighting each by the fraction of its functional children — a hand with
// three severed fingers grips worse than its own palm integrity suggests.
func (b *Body) GraspStrength() float64 {
	eff := b.ComputeEffectiveIntegrities()
	sum, n := 0.0, 0
	for i := range b.parts {
		if !b.parts[i].CanGrasp {
			continue
		}
		score := eff[i]
		if total, functional := b.childFunctionalRatio(PartIndex(i), eff); total > 0 {
			score *= 0.5 + 0.5*functional
		}
		sum += score
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// childFunctionalRatio returns the number of direct children and the fraction
// of them still functional (connected and above disabled).
func (b *Body) childFunctionalRatio(parent PartIndex, eff []float64) (int, float64) {
	total, functional := 0, 0
	for i := range b.parts {
		if b.parts[i].Parent != parent {
			continue
		}
		total++
		if eff[i] > 0 && b.parts[i].Severity < SeverityDisabled {
			functional++
		}
	}
	if total == 0 {
		return 0, 0
	}
	return total, float64(functional) / float64(total)
}

// MobilityScore aggregates effective integrity over standing parts (0–1).
func (b *Body) MobilityScore() float64 {
	return b.averageOver(func(p *Part) bool { return p.CanStand })
}

// VisionScore aggregates effective integrity over seeing parts (0–1).
func (b *Body) VisionScore() float64 {
	return b.averageOver(func(p *Part) bool { return p.CanSee })
}

// HearingScore aggregates effective integrity over hearing parts (0–1).
func (b *Body) HearingScore() float64 {
	return b.averageOver(func(p *Part) bool { return p.CanHear })
}

// BleedingRate sums blood loss per tick over every wounded part.
func (b *Body) BleedingRate() float64 {
	total := 0.0
	for i := range b.parts {
		total += b.parts[i].BleedingRate()
	}
	return total
}

func (b *Body) averageOver(match func(p *Part) bool) float64 {
	eff := b.ComputeEffectiveIntegrities()
	sum, n := 0.0, 0
	for i := range b.parts {
		if !match(&b.parts[i]) {
			continue
		}
		sum += eff[i]
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
