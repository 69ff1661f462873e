package data

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/model"
)

// yaml schema for catalog override files. Builtin Go-literal tables cover
// the default content; campaigns override or extend them from yaml without
// recompiling.

type tissueFileLayer struct {
	Material       string  `yaml:"material"`
	ThicknessRatio float64 `yaml:"thickness_ratio"`
	Shielding      struct {
		Deflection float64 `yaml:"deflection"`
		Absorption float64 `yaml:"absorption"`
		Dispersion float64 `yaml:"dispersion"`
	} `yaml:"shielding"`
	Susceptibility struct {
		GeometryThreshold float64 `yaml:"geometry_threshold"`
		GeometryRatio     float64 `yaml:"geometry_ratio"`
		EnergyThreshold   float64 `yaml:"energy_threshold"`
		EnergyRatio       float64 `yaml:"energy_ratio"`
		RigidityThreshold float64 `yaml:"rigidity_threshold"`
		RigidityRatio     float64 `yaml:"rigidity_ratio"`
	} `yaml:"susceptibility"`
	Structural bool `yaml:"structural"`
}

type tissueFile struct {
	TissueTemplates map[string][]tissueFileLayer `yaml:"tissue_templates"`
}

// LoadTissueTemplatesFile merges yaml tissue templates over the builtin
// table. LoadTissueTemplates must run first.
func LoadTissueTemplatesFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading tissue templates: %w", err)
	}
	var f tissueFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parsing tissue templates: %w", err)
	}

	for id, layers := range f.TissueTemplates {
		if len(layers) > model.MaxWoundLayers {
			return fmt.Errorf("tissue template %q: %d layers exceeds limit %d",
				id, len(layers), model.MaxWoundLayers)
		}
		stack := make([]TissueLayerDef, 0, len(layers))
		for _, l := range layers {
			stack = append(stack, TissueLayerDef{
				MaterialID:        l.Material,
				ThicknessRatio:    l.ThicknessRatio,
				Deflection:        l.Shielding.Deflection,
				Absorption:        l.Shielding.Absorption,
				Dispersion:        l.Shielding.Dispersion,
				GeometryThreshold: l.Susceptibility.GeometryThreshold,
				GeometryRatio:     l.Susceptibility.GeometryRatio,
				EnergyThreshold:   l.Susceptibility.EnergyThreshold,
				EnergyRatio:       l.Susceptibility.EnergyRatio,
				RigidityThreshold: l.Susceptibility.RigidityThreshold,
				RigidityRatio:     l.Susceptibility.RigidityRatio,
				Structural:        l.Structural,
			})
		}
		TissueTable[id] = stack
	}

	slog.Info("merged tissue templates from file", "path", path, "count", len(f.TissueTemplates))
	return nil
}

type armorFileMaterial struct {
	Hardness   float64 `yaml:"hardness"`
	Thickness  float64 `yaml:"thickness"`
	Durability float64 `yaml:"durability"`
	Resists    map[string]struct {
		Threshold float64 `yaml:"threshold"`
		Ratio     float64 `yaml:"ratio"`
	} `yaml:"resists"`
}

type armorFilePiece struct {
	Name     string `yaml:"name"`
	Material string `yaml:"material"`
	Sided    bool   `yaml:"sided"`
	Coverage []struct {
		Part     string `yaml:"part"`
		Side     string `yaml:"side"`
		Layer    string `yaml:"layer"`
		Totality string `yaml:"totality"`
	} `yaml:"coverage"`
}

type armorFile struct {
	Materials map[string]armorFileMaterial `yaml:"armour_materials"`
	Pieces    map[string]armorFilePiece    `yaml:"armour_pieces"`
}

// LoadArmorCatalogFile merges yaml armour materials and pieces over the
// builtin catalog. LoadArmorCatalog must run first.
func LoadArmorCatalogFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading armour catalog: %w", err)
	}
	var f armorFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parsing armour catalog: %w", err)
	}

	for id, m := range f.Materials {
		resists := make(map[model.DamageKind]model.Resistance, len(m.Resists))
		for kindName, r := range m.Resists {
			kind, err := ParseDamageKind(kindName)
			if err != nil {
				return fmt.Errorf("armour material %q: %w", id, err)
			}
			resists[kind] = model.Resistance{Threshold: r.Threshold, Ratio: r.Ratio}
		}
		ArmorMaterialTable[id] = &model.ArmorMaterial{
			Name:       id,
			Hardness:   m.Hardness,
			Thickness:  m.Thickness,
			Durability: m.Durability,
			Resists:    resists,
		}
	}

	for id, p := range f.Pieces {
		mat := GetArmorMaterial(p.Material)
		if mat == nil {
			slog.Warn("armour piece references unknown material",
				"piece", id, "material", p.Material)
			continue
		}
		coverage := make([]model.CoverageEntry, 0, len(p.Coverage))
		for _, c := range p.Coverage {
			tag, err := ParsePartTag(c.Part)
			if err != nil {
				return fmt.Errorf("armour piece %q: %w", id, err)
			}
			side, err := ParseSide(c.Side)
			if err != nil {
				return fmt.Errorf("armour piece %q: %w", id, err)
			}
			layer, err := ParseClothingLayer(c.Layer)
			if err != nil {
				return fmt.Errorf("armour piece %q: %w", id, err)
			}
			totality, err := ParseTotality(c.Totality)
			if err != nil {
				return fmt.Errorf("armour piece %q: %w", id, err)
			}
			coverage = append(coverage, model.CoverageEntry{
				Tag: tag, Side: side, Layer: layer, Totality: totality,
			})
		}
		ArmorTemplateTable[id] = &model.ArmorTemplate{
			ID: id, Name: p.Name, Material: mat, Sided: p.Sided, Coverage: coverage,
		}
	}

	slog.Info("merged armour catalog from file",
		"path", path, "materials", len(f.Materials), "pieces", len(f.Pieces))
	return nil
}

type bodyPlanFilePart struct {
	ID        string `yaml:"id"`
	Tag       string `yaml:"tag"`
	Side      string `yaml:"side"`
	Parent    string `yaml:"parent"`
	Enclosing string `yaml:"enclosing"`

	Vital    bool `yaml:"vital"`
	Internal bool `yaml:"internal"`
	CanGrasp bool `yaml:"can_grasp"`
	CanStand bool `yaml:"can_stand"`
	CanSee   bool `yaml:"can_see"`
	CanHear  bool `yaml:"can_hear"`

	TissueTemplate string  `yaml:"tissue_template"`
	MajorArtery    bool    `yaml:"major_artery"`
	TraumaMult     float64 `yaml:"trauma_mult"`

	ThicknessCm float64 `yaml:"thickness_cm"`
	LengthCm    float64 `yaml:"length_cm"`
	AreaCm2     float64 `yaml:"area_cm2"`
}

type bodyPlanFile struct {
	BodyPlans map[string][]bodyPlanFilePart `yaml:"body_plans"`
}

// LoadBodyPlansFile merges yaml body plans over the builtin table.
// LoadBodyPlans must run first.
func LoadBodyPlansFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading body plans: %w", err)
	}
	var f bodyPlanFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parsing body plans: %w", err)
	}

	for id, parts := range f.BodyPlans {
		plan := make([]PartDef, 0, len(parts))
		for _, p := range parts {
			tag, err := ParsePartTag(p.Tag)
			if err != nil {
				return fmt.Errorf("body plan %q part %q: %w", id, p.ID, err)
			}
			side, err := ParseSide(p.Side)
			if err != nil {
				return fmt.Errorf("body plan %q part %q: %w", id, p.ID, err)
			}
			plan = append(plan, PartDef{
				ID:             p.ID,
				Tag:            tag,
				Side:           side,
				Parent:         p.Parent,
				Enclosing:      p.Enclosing,
				Vital:          p.Vital,
				Internal:       p.Internal,
				CanGrasp:       p.CanGrasp,
				CanStand:       p.CanStand,
				CanSee:         p.CanSee,
				CanHear:        p.CanHear,
				TissueTemplate: p.TissueTemplate,
				HasMajorArtery: p.MajorArtery,
				TraumaMult:     p.TraumaMult,
				ThicknessCm:    p.ThicknessCm,
				LengthCm:       p.LengthCm,
				AreaCm2:        p.AreaCm2,
			})
		}
		BodyPlanTable[id] = plan
	}

	slog.Info("merged body plans from file", "path", path, "count", len(f.BodyPlans))
	return nil
}
