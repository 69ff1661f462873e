package data

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/skirmish/internal/model"
)

// PartDef — one part of a body plan. Parent and Enclosing reference earlier
// parts by plan-local id, so plans stay declarative and the topological
// storage order falls out of the list order.
type PartDef struct {
	ID        string
	Tag       model.PartTag
	Side      model.Side
	Parent    string
	Enclosing string

	Vital    bool
	Internal bool
	CanGrasp bool
	CanStand bool
	CanSee   bool
	CanHear  bool

	TissueTemplate string
	HasMajorArtery bool
	TraumaMult     float64

	ThicknessCm float64
	LengthCm    float64
	AreaCm2     float64
}

// BodyPlanTable — глобальный registry всех body plans.
// map[planID] → ordered part definition list.
var BodyPlanTable map[string][]PartDef

// GetBodyPlan возвращает plan по ID. Returns nil если не найден.
func GetBodyPlan(planID string) []PartDef {
	if BodyPlanTable == nil {
		return nil
	}
	return BodyPlanTable[planID]
}

// LoadBodyPlans строит BodyPlanTable из Go-литералов (bodyPlanDefs).
func LoadBodyPlans() error {
	BodyPlanTable = make(map[string][]PartDef, len(bodyPlanDefs))
	for id, parts := range bodyPlanDefs {
		BodyPlanTable[id] = parts
	}

	slog.Info("loaded body plans", "count", len(BodyPlanTable))
	return nil
}

// BuildBody instantiates a body from a named plan. The plan must list
// parents before children; a forward or unknown reference is a data-authoring
// error and fails the build.
func BuildBody(name, planID string) (*model.Body, error) {
	plan := GetBodyPlan(planID)
	if plan == nil {
		return nil, fmt.Errorf("unknown body plan %q", planID)
	}

	body := model.NewBody(name)
	indexByID := make(map[string]model.PartIndex, len(plan))

	for _, def := range plan {
		parent := model.NoPart
		if def.Parent != "" {
			idx, ok := indexByID[def.Parent]
			if !ok {
				return nil, fmt.Errorf("plan %q part %q: unknown parent %q", planID, def.ID, def.Parent)
			}
			parent = idx
		}
		enclosing := model.NoPart
		if def.Enclosing != "" {
			idx, ok := indexByID[def.Enclosing]
			if !ok {
				return nil, fmt.Errorf("plan %q part %q: unknown enclosing %q", planID, def.ID, def.Enclosing)
			}
			enclosing = idx
		}

		idx, err := body.AddPart(model.Part{
			Tag:            def.Tag,
			Side:           def.Side,
			Parent:         parent,
			Enclosing:      enclosing,
			Vital:          def.Vital,
			Internal:       def.Internal,
			CanGrasp:       def.CanGrasp,
			CanStand:       def.CanStand,
			CanSee:         def.CanSee,
			CanHear:        def.CanHear,
			TissueTemplate: def.TissueTemplate,
			HasMajorArtery: def.HasMajorArtery,
			TraumaMult:     def.TraumaMult,
			Geometry: model.PartGeometry{
				ThicknessCm: def.ThicknessCm,
				LengthCm:    def.LengthCm,
				AreaCm2:     def.AreaCm2,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("plan %q: %w", planID, err)
		}
		indexByID[def.ID] = idx
	}

	return body, nil
}

// bodyPlanDefs — builtin body plans.
var bodyPlanDefs = map[string][]PartDef{
	"humanoid": humanoidPlan,
}

var humanoidPlan = []PartDef{
	{ID: "torso", Tag: model.PartTorso, TissueTemplate: "core", Vital: true,
		TraumaMult: 1.0, ThicknessCm: 22, LengthCm: 55, AreaCm2: 2600},
	{ID: "neck", Tag: model.PartNeck, Parent: "torso", TissueTemplate: "throat",
		Vital: true, HasMajorArtery: true,
		TraumaMult: 1.5, ThicknessCm: 11, LengthCm: 10, AreaCm2: 160},
	{ID: "head", Tag: model.PartHead, Parent: "neck", TissueTemplate: "cranial",
		Vital: true, TraumaMult: 2.0, ThicknessCm: 17, LengthCm: 22, AreaCm2: 550},
	{ID: "brain", Tag: model.PartBrain, Enclosing: "head", TissueTemplate: "organ",
		Vital: true, Internal: true,
		TraumaMult: 3.0, ThicknessCm: 12, LengthCm: 15, AreaCm2: 180},
	{ID: "eye_l", Tag: model.PartEye, Side: model.SideLeft, Parent: "head",
		TissueTemplate: "organ", CanSee: true,
		TraumaMult: 2.0, ThicknessCm: 2.4, LengthCm: 2.4, AreaCm2: 4},
	{ID: "eye_r", Tag: model.PartEye, Side: model.SideRight, Parent: "head",
		TissueTemplate: "organ", CanSee: true,
		TraumaMult: 2.0, ThicknessCm: 2.4, LengthCm: 2.4, AreaCm2: 4},
	{ID: "ear_l", Tag: model.PartEar, Side: model.SideLeft, Parent: "head",
		TissueTemplate: "facial", CanHear: true,
		TraumaMult: 1.0, ThicknessCm: 0.8, LengthCm: 6, AreaCm2: 18},
	{ID: "ear_r", Tag: model.PartEar, Side: model.SideRight, Parent: "head",
		TissueTemplate: "facial", CanHear: true,
		TraumaMult: 1.0, ThicknessCm: 0.8, LengthCm: 6, AreaCm2: 18},
	{ID: "nose", Tag: model.PartNose, Parent: "head", TissueTemplate: "facial",
		TraumaMult: 1.2, ThicknessCm: 2.5, LengthCm: 5, AreaCm2: 14},
	{ID: "heart", Tag: model.PartHeart, Enclosing: "torso", TissueTemplate: "organ",
		Vital: true, Internal: true, HasMajorArtery: true,
		TraumaMult: 3.0, ThicknessCm: 9, LengthCm: 12, AreaCm2: 80},
	{ID: "lung_l", Tag: model.PartLung, Side: model.SideLeft, Enclosing: "torso",
		TissueTemplate: "organ", Vital: true, Internal: true,
		TraumaMult: 2.0, ThicknessCm: 12, LengthCm: 24, AreaCm2: 230},
	{ID: "lung_r", Tag: model.PartLung, Side: model.SideRight, Enclosing: "torso",
		TissueTemplate: "organ", Vital: true, Internal: true,
		TraumaMult: 2.0, ThicknessCm: 12, LengthCm: 24, AreaCm2: 230},
	{ID: "gut", Tag: model.PartGut, Enclosing: "torso", TissueTemplate: "organ",
		Internal: true, TraumaMult: 1.5, ThicknessCm: 18, LengthCm: 30, AreaCm2: 500},
	{ID: "arm_l", Tag: model.PartArm, Side: model.SideLeft, Parent: "torso",
		TissueTemplate: "limb", HasMajorArtery: true,
		TraumaMult: 1.0, ThicknessCm: 9, LengthCm: 60, AreaCm2: 900},
	{ID: "arm_r", Tag: model.PartArm, Side: model.SideRight, Parent: "torso",
		TissueTemplate: "limb", HasMajorArtery: true,
		TraumaMult: 1.0, ThicknessCm: 9, LengthCm: 60, AreaCm2: 900},
	{ID: "hand_l", Tag: model.PartHand, Side: model.SideLeft, Parent: "arm_l",
		TissueTemplate: "limb", CanGrasp: true,
		TraumaMult: 1.0, ThicknessCm: 3.5, LengthCm: 18, AreaCm2: 150},
	{ID: "hand_r", Tag: model.PartHand, Side: model.SideRight, Parent: "arm_r",
		TissueTemplate: "limb", CanGrasp: true,
		TraumaMult: 1.0, ThicknessCm: 3.5, LengthCm: 18, AreaCm2: 150},
	{ID: "finger_l1", Tag: model.PartFinger, Side: model.SideLeft, Parent: "hand_l",
		TissueTemplate: "digit",
		TraumaMult: 1.0, ThicknessCm: 1.6, LengthCm: 8, AreaCm2: 12},
	{ID: "finger_l2", Tag: model.PartFinger, Side: model.SideLeft, Parent: "hand_l",
		TissueTemplate: "digit",
		TraumaMult: 1.0, ThicknessCm: 1.6, LengthCm: 8, AreaCm2: 12},
	{ID: "finger_l3", Tag: model.PartFinger, Side: model.SideLeft, Parent: "hand_l",
		TissueTemplate: "digit",
		TraumaMult: 1.0, ThicknessCm: 1.6, LengthCm: 8, AreaCm2: 12},
	{ID: "finger_r1", Tag: model.PartFinger, Side: model.SideRight, Parent: "hand_r",
		TissueTemplate: "digit",
		TraumaMult: 1.0, ThicknessCm: 1.6, LengthCm: 8, AreaCm2: 12},
	{ID: "finger_r2", Tag: model.PartFinger, Side: model.SideRight, Parent: "hand_r",
		TissueTemplate: "digit",
		TraumaMult: 1.0, ThicknessCm: 1.6, LengthCm: 8, AreaCm2: 12},
	{ID: "finger_r3", Tag: model.PartFinger, Side: model.SideRight, Parent: "hand_r",
		TissueTemplate: "digit",
		TraumaMult: 1.0, ThicknessCm: 1.6, LengthCm: 8, AreaCm2: 12},
	{ID: "leg_l", Tag: model.PartLeg, Side: model.SideLeft, Parent: "torso",
		TissueTemplate: "limb", CanStand: true, HasMajorArtery: true,
		TraumaMult: 1.0, ThicknessCm: 13, LengthCm: 85, AreaCm2: 1500},
	{ID: "leg_r", Tag: model.PartLeg, Side: model.SideRight, Parent: "torso",
		TissueTemplate: "limb", CanStand: true, HasMajorArtery: true,
		TraumaMult: 1.0, ThicknessCm: 13, LengthCm: 85, AreaCm2: 1500},
	{ID: "foot_l", Tag: model.PartFoot, Side: model.SideLeft, Parent: "leg_l",
		TissueTemplate: "limb", CanStand: true,
		TraumaMult: 1.0, ThicknessCm: 4, LengthCm: 26, AreaCm2: 180},
	{ID: "foot_r", Tag: model.PartFoot, Side: model.SideRight, Parent: "leg_r",
		TissueTemplate: "limb", CanStand: true,
		TraumaMult: 1.0, ThicknessCm: 4, LengthCm: 26, AreaCm2: 180},
}
