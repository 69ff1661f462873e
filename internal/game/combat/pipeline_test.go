package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
)

func eventTypes(list EventList) []EventType {
	types := make([]EventType, 0, len(list.Events))
	for _, e := range list.Events {
		types = append(types, e.Type)
	}
	return types
}

func TestResolveAttack_ArmourThenBody(t *testing.T) {
	body, err := data.BuildBody("defender", "humanoid")
	require.NoError(t, err)

	hauberk := data.GetArmorTemplate("mail_hauberk")
	require.NotNil(t, hauberk)
	inst := model.NewArmorInstance(hauberk, model.SideNone)
	stack := model.NewArmorStack()
	stack.Rebuild(body, []*model.ArmorInstance{inst})

	arm := body.FindPart(model.PartArm, model.SideLeft)
	require.NotEqual(t, model.NoPart, arm)

	packet := model.DamagePacket{Kind: model.DamageSlash, Amount: 25, Penetration: 3}
	res := ResolveAttack(body, stack, arm, packet, fixedRoller(0.99))

	assert.Equal(t, 1, res.Absorption.LayersHit)
	assert.Less(t, res.Absorption.Remaining.Amount, packet.Amount,
		"mail must absorb part of the blow")
	assert.False(t, res.Damage.Wound.IsEmpty(),
		"what passes the mail still cuts the arm")
	assert.Len(t, body.Part(arm).Wounds, 1)
}

func TestResolveAttack_NilStackIsUnarmoured(t *testing.T) {
	body, err := data.BuildBody("defender", "humanoid")
	require.NoError(t, err)

	arm := body.FindPart(model.PartArm, model.SideLeft)
	packet := model.DamagePacket{Kind: model.DamageSlash, Amount: 10, Penetration: 0.5}

	res := ResolveAttack(body, nil, arm, packet, fixedRoller(0.99))

	assert.Equal(t, packet, res.Absorption.Remaining)
	assert.Zero(t, res.Absorption.LayersHit)
	assert.False(t, res.Damage.Wound.IsEmpty())
}

func TestResolveAttackEvents_WoundAndArtery(t *testing.T) {
	body, err := data.BuildBody("defender", "humanoid")
	require.NoError(t, err)

	neck := body.FindPart(model.PartNeck, model.SideNone)
	require.NotEqual(t, model.NoPart, neck)

	var sink EventList
	packet := model.DamagePacket{Kind: model.DamageSlash, Amount: 10, Penetration: 3}
	res := ResolveAttackEvents(body, nil, neck, packet, fixedRoller(0.99), &sink)

	require.True(t, res.Damage.HitMajorArtery)
	types := eventTypes(sink)
	assert.Contains(t, types, EventWound)
	assert.Contains(t, types, EventArteryHit)
	assert.NotContains(t, types, EventSevered)
}

func TestResolveAttackEvents_GapReported(t *testing.T) {
	mat := &model.ArmorMaterial{
		Name: "test_scraps", Hardness: 0, Thickness: 0.2, Durability: 30,
		Resists: map[model.DamageKind]model.Resistance{
			model.DamageSlash: {Threshold: 2, Ratio: 0.6},
		},
	}
	body, torso, _, stack := newArmoredTorso(t, mat, model.LayerMail, model.TotalityMinimal)

	var sink EventList
	packet := model.DamagePacket{Kind: model.DamageSlash, Amount: 10, Penetration: 3}
	// First roll 0.1 < 0.5 gap chance: the attack slips straight through.
	res := ResolveAttackEvents(body, stack, torso, packet, &seqRoller{vals: []float64{0.1, 0.99, 0.99}}, &sink)

	assert.Zero(t, res.Absorption.LayersHit)
	assert.Equal(t, packet.Amount, res.Absorption.Remaining.Amount)
	assert.Contains(t, eventTypes(sink), EventArmourGap)
}

func TestResolveAttackEvents_SeverReported(t *testing.T) {
	body, err := data.BuildBody("defender", "humanoid")
	require.NoError(t, err)

	finger := body.FindPart(model.PartFinger, model.SideLeft)
	require.NotEqual(t, model.NoPart, finger)

	var sink EventList
	packet := model.DamagePacket{Kind: model.DamageSlash, Amount: 40, Penetration: 5, Energy: 60, Rigidity: 30, Geometry: 8}
	res := ResolveAttackEvents(body, nil, finger, packet, fixedRoller(0.99), &sink)

	require.True(t, res.Damage.Severed, "a heavy slash takes a finger off")
	assert.True(t, body.IsEffectivelySevered(finger))
	assert.Contains(t, eventTypes(sink), EventSevered)
}
