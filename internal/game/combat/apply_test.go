package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/model"
)

// newNeckBody builds a torso+neck pair; artery controls the neck's
// major-artery flag.
func newNeckBody(t *testing.T, artery bool) (*model.Body, model.PartIndex) {
	t.Helper()
	body := model.NewBody("dummy")
	torso, err := body.AddPart(model.Part{
		Tag: model.PartTorso, Parent: model.NoPart, Enclosing: model.NoPart,
		TissueTemplate: "core",
		Geometry:       model.PartGeometry{ThicknessCm: 22, AreaCm2: 2600},
	})
	require.NoError(t, err)
	neck, err := body.AddPart(model.Part{
		Tag: model.PartNeck, Parent: torso, Enclosing: model.NoPart,
		TissueTemplate: "throat", HasMajorArtery: artery,
		Geometry: model.PartGeometry{ThicknessCm: 11, AreaCm2: 160},
	})
	require.NoError(t, err)
	return body, neck
}

func TestApplyDamageToPart_ArteryBleeding(t *testing.T) {
	packet := model.DamagePacket{Kind: model.DamageSlash, Amount: 10, Penetration: 3}

	arteryBody, arteryNeck := newNeckBody(t, true)
	plainBody, plainNeck := newNeckBody(t, false)

	arteryRes := ApplyDamageToPart(arteryBody, arteryNeck, packet)
	plainRes := ApplyDamageToPart(plainBody, plainNeck, packet)

	require.GreaterOrEqual(t, arteryRes.Wound.LayerSeverity("muscle"), model.SeverityInhibited,
		"the cut must reach muscle for the artery check to trigger")
	assert.True(t, arteryRes.HitMajorArtery)
	assert.False(t, plainRes.HitMajorArtery)

	sevFactor := bleedSeverityFactor(arteryRes.Wound.Worst())
	minRate := 0.1 * packet.Kind.BleedTypeFactor() * sevFactor * ArteryMultiplier
	assert.GreaterOrEqual(t, arteryRes.Wound.Bleeding, minRate)
	assert.Greater(t, arteryRes.Wound.Bleeding, plainRes.Wound.Bleeding,
		"artery hit must bleed strictly more than the identical non-artery wound")
}

func TestApplyDamageToPart_AppendsWound(t *testing.T) {
	body, neck := newNeckBody(t, false)
	packet := model.DamagePacket{Kind: model.DamageSlash, Amount: 10, Penetration: 3}

	ApplyDamageToPart(body, neck, packet)
	ApplyDamageToPart(body, neck, packet)

	assert.Len(t, body.Part(neck).Wounds, 2, "wounds accumulate, never merge")
}

func TestApplyDamageToPart_ZeroPacketNoWound(t *testing.T) {
	body, neck := newNeckBody(t, true)

	res := ApplyDamageToPart(body, neck, model.DamagePacket{Kind: model.DamageSlash})

	assert.True(t, res.Wound.IsEmpty())
	assert.False(t, res.Severed)
	assert.False(t, res.HitMajorArtery)
	assert.Empty(t, body.Part(neck).Wounds)
	assert.Equal(t, model.SeverityNone, body.Part(neck).Severity)
}

func TestApplyDamageToPart_OutOfRange(t *testing.T) {
	body, _ := newNeckBody(t, false)
	res := ApplyDamageToPart(body, 99, model.DamagePacket{Kind: model.DamageSlash, Amount: 50})
	assert.True(t, res.Wound.IsEmpty())
}

// Soft tissue damage alone cannot report an aggregate severity more than
// two steps past what the structural layers justify.
func TestApplyDamageToPart_AggregateSeverityCap(t *testing.T) {
	body := model.NewBody("dummy")
	arm, err := body.AddPart(model.Part{
		Tag: model.PartArm, Parent: model.NoPart, Enclosing: model.NoPart,
		TissueTemplate: "limb", Geometry: limbGeometry,
	})
	require.NoError(t, err)

	// Shallow but forceful slash: skin reaches Disabled, bone untouched.
	res := ApplyDamageToPart(body, arm, model.DamagePacket{Kind: model.DamageSlash, Amount: 10, Penetration: 0.5})

	require.GreaterOrEqual(t, res.Wound.LayerSeverity("skin"), model.SeverityDisabled)
	require.Equal(t, model.SeverityNone, res.Wound.LayerSeverity("bone"))
	assert.Equal(t, model.SeverityInhibited, body.Part(arm).Severity,
		"any-layer Disabled capped at structural None + 2 steps")
}

func TestApplyDamageToPart_StructuralDominates(t *testing.T) {
	body := model.NewBody("dummy")
	arm, err := body.AddPart(model.Part{
		Tag: model.PartArm, Parent: model.NoPart, Enclosing: model.NoPart,
		TissueTemplate: "limb", Geometry: limbGeometry,
	})
	require.NoError(t, err)

	res := ApplyDamageToPart(body, arm, model.DamagePacket{
		Kind: model.DamageBludgeon, Amount: 100, Energy: 150, Rigidity: 80, Penetration: 50,
	})

	require.Equal(t, model.SeverityMissing, res.Wound.LayerSeverity("bone"))
	assert.True(t, res.Severed, "pulverised bone detaches the limb")
	assert.True(t, body.Part(arm).IsSevered)
	assert.Equal(t, model.SeverityMissing, body.Part(arm).Severity)
}

func TestApplyDamageToPart_TraumaMultiplier(t *testing.T) {
	packet := model.DamagePacket{Kind: model.DamageBludgeon, Amount: 12, Penetration: 1}

	plain := model.NewBody("plain")
	head1, err := plain.AddPart(model.Part{
		Tag: model.PartHead, Parent: model.NoPart, Enclosing: model.NoPart,
		TissueTemplate: "cranial", TraumaMult: 1.0,
		Geometry: model.PartGeometry{ThicknessCm: 17, AreaCm2: 550},
	})
	require.NoError(t, err)

	tender := model.NewBody("tender")
	head2, err := tender.AddPart(model.Part{
		Tag: model.PartHead, Parent: model.NoPart, Enclosing: model.NoPart,
		TissueTemplate: "cranial", TraumaMult: 2.0,
		Geometry: model.PartGeometry{ThicknessCm: 17, AreaCm2: 550},
	})
	require.NoError(t, err)

	resPlain := ApplyDamageToPart(plain, head1, packet)
	resTender := ApplyDamageToPart(tender, head2, packet)

	assert.Greater(t, resTender.Wound.LayerSeverity("bone"), resPlain.Wound.LayerSeverity("bone"),
		"trauma multiplier must worsen the same packet")
}
