package data

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/model"
)

// ArmorMaterialTable — глобальный registry всех armour materials.
// map[materialID]*model.ArmorMaterial
var ArmorMaterialTable map[string]*model.ArmorMaterial

// ArmorTemplateTable — глобальный registry всех armour piece templates.
// map[templateID]*model.ArmorTemplate
var ArmorTemplateTable map[string]*model.ArmorTemplate

// GetArmorMaterial возвращает material по ID. Returns nil если не найден.
func GetArmorMaterial(id string) *model.ArmorMaterial {
	if ArmorMaterialTable == nil {
		return nil
	}
	return ArmorMaterialTable[id]
}

// GetArmorTemplate возвращает piece template по ID. Returns nil если не найден.
func GetArmorTemplate(id string) *model.ArmorTemplate {
	if ArmorTemplateTable == nil {
		return nil
	}
	return ArmorTemplateTable[id]
}

// LoadArmorCatalog строит material и template registries из Go-литералов.
// Pieces referencing an unknown material are dropped with a warning rather
// than aborting the load (content iteration should not crash the sim).
func LoadArmorCatalog() error {
	ArmorMaterialTable = make(map[string]*model.ArmorMaterial, len(armorMaterialDefs))
	for i := range armorMaterialDefs {
		m := &armorMaterialDefs[i]
		ArmorMaterialTable[m.Name] = m
	}

	ArmorTemplateTable = make(map[string]*model.ArmorTemplate, len(armorPieceDefs))
	for i := range armorPieceDefs {
		def := &armorPieceDefs[i]
		mat := GetArmorMaterial(def.materialID)
		if mat == nil {
			slog.Warn("armour piece references unknown material",
				"piece", def.id, "material", def.materialID)
			continue
		}
		ArmorTemplateTable[def.id] = &model.ArmorTemplate{
			ID:       def.id,
			Name:     def.name,
			Material: mat,
			Sided:    def.sided,
			Coverage: def.coverage,
		}
	}

	slog.Info("loaded armour catalog",
		"materials", len(ArmorMaterialTable), "pieces", len(ArmorTemplateTable))
	return nil
}

type armorPieceDef struct {
	id         string
	name       string
	materialID string
	sided      bool
	coverage   []model.CoverageEntry
}

// armorMaterialDefs — builtin armour materials. Hardness is the deflection
// probability; thickness is the penetration cost in cm per layer.
var armorMaterialDefs = []model.ArmorMaterial{
	{
		Name: "cloth", Hardness: 0.02, Thickness: 0.2, Durability: 40,
		Resists: map[model.DamageKind]model.Resistance{
			model.DamageSlash:    {Threshold: 1.0, Ratio: 0.9},
			model.DamagePierce:   {Threshold: 0.5, Ratio: 0.95},
			model.DamageBludgeon: {Threshold: 0.5, Ratio: 0.9},
			model.DamageCrush:    {Threshold: 0.5, Ratio: 0.95},
			model.DamageShatter:  {Threshold: 0.5, Ratio: 0.95},
		},
	},
	{
		Name: "padded", Hardness: 0.05, Thickness: 0.8, Durability: 60,
		Resists: map[model.DamageKind]model.Resistance{
			model.DamageSlash:    {Threshold: 3.0, Ratio: 0.7},
			model.DamagePierce:   {Threshold: 1.5, Ratio: 0.85},
			model.DamageBludgeon: {Threshold: 3.0, Ratio: 0.6},
			model.DamageCrush:    {Threshold: 2.5, Ratio: 0.7},
			model.DamageShatter:  {Threshold: 2.0, Ratio: 0.75},
		},
	},
	{
		Name: "leather", Hardness: 0.1, Thickness: 0.4, Durability: 80,
		Resists: map[model.DamageKind]model.Resistance{
			model.DamageSlash:    {Threshold: 4.0, Ratio: 0.6},
			model.DamagePierce:   {Threshold: 2.0, Ratio: 0.8},
			model.DamageBludgeon: {Threshold: 1.5, Ratio: 0.85},
			model.DamageCrush:    {Threshold: 1.5, Ratio: 0.85},
			model.DamageShatter:  {Threshold: 2.0, Ratio: 0.8},
		},
	},
	{
		Name: "mail", Hardness: 0.25, Thickness: 0.4, Durability: 150,
		Resists: map[model.DamageKind]model.Resistance{
			model.DamageSlash:    {Threshold: 6.0, Ratio: 0.5},
			model.DamagePierce:   {Threshold: 3.0, Ratio: 0.7},
			model.DamageBludgeon: {Threshold: 2.0, Ratio: 0.85},
			model.DamageCrush:    {Threshold: 2.0, Ratio: 0.85},
			model.DamageShatter:  {Threshold: 3.0, Ratio: 0.75},
		},
	},
	{
		Name: "plate", Hardness: 0.6, Thickness: 0.5, Durability: 250,
		Resists: map[model.DamageKind]model.Resistance{
			model.DamageSlash:    {Threshold: 10.0, Ratio: 0.3},
			model.DamagePierce:   {Threshold: 6.0, Ratio: 0.5},
			model.DamageBludgeon: {Threshold: 4.0, Ratio: 0.7},
			model.DamageCrush:    {Threshold: 4.0, Ratio: 0.7},
			model.DamageShatter:  {Threshold: 5.0, Ratio: 0.6},
		},
	},
}

// armorPieceDefs — builtin armour pieces. Coverage entries in a sided piece
// leave Side unset and take it from the equipped instance.
var armorPieceDefs = []armorPieceDef{
	{
		id: "linen_shirt", name: "Linen Shirt", materialID: "cloth",
		coverage: []model.CoverageEntry{
			{Tag: model.PartTorso, Layer: model.LayerShirt, Totality: model.TotalityFull},
			{Tag: model.PartArm, Side: model.SideLeft, Layer: model.LayerShirt, Totality: model.TotalityFull},
			{Tag: model.PartArm, Side: model.SideRight, Layer: model.LayerShirt, Totality: model.TotalityFull},
		},
	},
	{
		id: "gambeson", name: "Gambeson", materialID: "padded",
		coverage: []model.CoverageEntry{
			{Tag: model.PartTorso, Layer: model.LayerPadding, Totality: model.TotalityFull},
			{Tag: model.PartArm, Side: model.SideLeft, Layer: model.LayerPadding, Totality: model.TotalityFrontal},
			{Tag: model.PartArm, Side: model.SideRight, Layer: model.LayerPadding, Totality: model.TotalityFrontal},
		},
	},
	{
		id: "mail_hauberk", name: "Mail Hauberk", materialID: "mail",
		coverage: []model.CoverageEntry{
			{Tag: model.PartTorso, Layer: model.LayerMail, Totality: model.TotalityFull},
			{Tag: model.PartArm, Side: model.SideLeft, Layer: model.LayerMail, Totality: model.TotalityFull},
			{Tag: model.PartArm, Side: model.SideRight, Layer: model.LayerMail, Totality: model.TotalityFull},
			{Tag: model.PartLeg, Side: model.SideLeft, Layer: model.LayerMail, Totality: model.TotalityHalf},
			{Tag: model.PartLeg, Side: model.SideRight, Layer: model.LayerMail, Totality: model.TotalityHalf},
		},
	},
	{
		id: "mail_coif", name: "Mail Coif", materialID: "mail",
		coverage: []model.CoverageEntry{
			{Tag: model.PartHead, Layer: model.LayerMail, Totality: model.TotalityFull},
			{Tag: model.PartNeck, Layer: model.LayerMail, Totality: model.TotalityFrontal},
		},
	},
	{
		id: "plate_cuirass", name: "Plate Cuirass", materialID: "plate",
		coverage: []model.CoverageEntry{
			{Tag: model.PartTorso, Layer: model.LayerPlate, Totality: model.TotalityFull},
		},
	},
	{
		id: "plate_helm", name: "Plate Helm", materialID: "plate",
		coverage: []model.CoverageEntry{
			{Tag: model.PartHead, Layer: model.LayerPlate, Totality: model.TotalityFrontal},
		},
	},
	{
		id: "plate_gauntlet", name: "Plate Gauntlet", materialID: "plate", sided: true,
		coverage: []model.CoverageEntry{
			{Tag: model.PartHand, Layer: model.LayerPlate, Totality: model.TotalityTotal},
		},
	},
	{
		id: "leather_boot", name: "Leather Boot", materialID: "leather", sided: true,
		coverage: []model.CoverageEntry{
			{Tag: model.PartFoot, Layer: model.LayerShirt, Totality: model.TotalityTotal},
		},
	},
	{
		id: "woolen_cloak", name: "Woolen Cloak", materialID: "cloth",
		coverage: []model.CoverageEntry{
			{Tag: model.PartTorso, Layer: model.LayerCloak, Totality: model.TotalityHalf},
			{Tag: model.PartArm, Side: model.SideLeft, Layer: model.LayerCloak, Totality: model.TotalityMinimal},
			{Tag: model.PartArm, Side: model.SideRight, Layer: model.LayerCloak, Totality: model.TotalityMinimal},
		},
	},
}
