package combat

import (
	"os"
	"testing"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
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

// fixedRoller always returns the same value. 0.99 engages every layer
// without deflecting (for sub-unity hardness); 0.0 takes every gap that
// exists and deflects on any nonzero hardness.
type fixedRoller float64

func (r fixedRoller) Float64() float64 { return float64(r) }

// seqRoller replays a scripted sequence, then zeroes.
type seqRoller struct {
	vals []float64
	i    int
}

func (r *seqRoller) Float64() float64 {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i]
	r.i++
	return v
}

// limbGeometry — an arm-sized part for wound generation tests.
var limbGeometry = model.PartGeometry{ThicknessCm: 9, LengthCm: 60, AreaCm2: 900}

// newArmoredTorso builds a minimal body (torso + left arm) with a single
// custom-material layer over the torso, for armour resolution tests.
func newArmoredTorso(t *testing.T, mat *model.ArmorMaterial, layer model.ClothingLayer, totality model.Totality) (*model.Body, model.PartIndex, *model.ArmorInstance, *model.ArmorStack) {
	t.Helper()

	body := model.NewBody("dummy")
	torso, err := body.AddPart(model.Part{
		Tag: model.PartTorso, Parent: model.NoPart, Enclosing: model.NoPart,
		TissueTemplate: "core",
		Geometry:       model.PartGeometry{ThicknessCm: 22, AreaCm2: 2600},
	})
	if err != nil {
		t.Fatalf("AddPart(torso): %v", err)
	}
	if _, err := body.AddPart(model.Part{
		Tag: model.PartArm, Side: model.SideLeft, Parent: torso, Enclosing: model.NoPart,
		TissueTemplate: "limb",
		Geometry:       limbGeometry,
	}); err != nil {
		t.Fatalf("AddPart(arm): %v", err)
	}

	tpl := &model.ArmorTemplate{
		ID: "test_piece", Material: mat,
		Coverage: []model.CoverageEntry{
			{Tag: model.PartTorso, Layer: layer, Totality: totality},
		},
	}
	inst := model.NewArmorInstance(tpl, model.SideNone)
	stack := model.NewArmorStack()
	stack.Rebuild(body, []*model.ArmorInstance{inst})
	return body, torso, inst, stack
}
