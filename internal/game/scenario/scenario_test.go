package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/util"
)

func TestMain(m *testing.M) {
	if err := data.LoadTissueTemplates(); err != nil {
		os.Exit(1)
	}
	if err := data.LoadArmorCatalog(); err != nil {
		os.Exit(1)
	}
	if err := data.LoadBodyPlans(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

const fixtureYAML = `scenarios:
  - name: sword_vs_mail
    body_plan: humanoid
    seed: 7
    armour:
      - id: mail_hauberk
      - id: plate_gauntlet
        side: left
    attacks:
      - kind: slash
        amount: 25
        penetration: 3
        target_part: arm
        target_side: left
      - kind: pierce
        amount: 12
        penetration: 6
        target_part: torso
  - name: unarmoured_neck
    body_plan: humanoid
    attacks:
      - kind: slash
        amount: 10
        penetration: 3
        target_part: neck
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	scenarios, err := Load(writeFixture(t))
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, "sword_vs_mail", scenarios[0].Name)
	assert.Equal(t, uint64(7), scenarios[0].Seed)
	assert.Len(t, scenarios[0].Armour, 2)
	assert.Equal(t, "left", scenarios[0].Armour[1].Side)
	assert.Len(t, scenarios[0].Attacks, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	scenarios, err := Load(writeFixture(t))
	require.NoError(t, err)

	report, err := Run(scenarios[0], util.NewRand(scenarios[0].Seed, 0))
	require.NoError(t, err)

	assert.Equal(t, "sword_vs_mail", report.Scenario)
	require.Len(t, report.Results, 2)
	assert.NotNil(t, report.Body)
	assert.GreaterOrEqual(t, report.GraspStrength, 0.0)
	assert.LessOrEqual(t, report.GraspStrength, 1.0)
}

func TestRun_UnarmouredAlwaysWounds(t *testing.T) {
	scenarios, err := Load(writeFixture(t))
	require.NoError(t, err)

	report, err := Run(scenarios[1], util.NewRand(1, 0))
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	res := report.Results[0]
	assert.False(t, res.Damage.Wound.IsEmpty())
	assert.True(t, res.Damage.HitMajorArtery, "an open neck slash finds the artery")
	assert.Greater(t, report.BleedingRate, 0.0, "an open wound bleeds")
}

func TestRun_UnknownArmour(t *testing.T) {
	s := Scenario{Name: "bad", BodyPlan: "humanoid", Armour: []ArmourRef{{ID: "dragon_scale"}}}
	_, err := Run(s, util.NewRand(1, 0))
	assert.Error(t, err)
}

func TestRun_UnknownPlan(t *testing.T) {
	s := Scenario{Name: "bad", BodyPlan: "arachnid"}
	_, err := Run(s, util.NewRand(1, 0))
	assert.Error(t, err)
}

func TestRun_UnknownTargetPart(t *testing.T) {
	s := Scenario{
		Name: "bad", BodyPlan: "humanoid",
		Attacks: []Attack{{Kind: "slash", Amount: 5, TargetPart: "tail"}},
	}
	_, err := Run(s, util.NewRand(1, 0))
	assert.Error(t, err)
}

func TestRun_Deterministic(t *testing.T) {
	scenarios, err := Load(writeFixture(t))
	require.NoError(t, err)

	a, err := Run(scenarios[0], util.NewRand(99, 3))
	require.NoError(t, err)
	b, err := Run(scenarios[0], util.NewRand(99, 3))
	require.NoError(t, err)

	require.Len(t, b.Results, len(a.Results))
	for i := range a.Results {
		assert.Equal(t, a.Results[i].Absorption.LayersHit, b.Results[i].Absorption.LayersHit, "attack %d", i)
		assert.Equal(t, a.Results[i].Damage.Wound, b.Results[i].Damage.Wound, "attack %d", i)
	}
}
