package data

import (
	"log/slog"
	"sync"
)

// TissueLayerDef — one layer of a tissue template, outer→inner.
//
// Shielding (deflection/absorption/dispersion) reduces the geometry/energy/
// rigidity axes that continue past this layer. Susceptibility converts each
// axis's excess over a threshold into a severity-driving value. Structural
// layers (bone, cartilage) are the only ones whose destruction can escalate
// a wound to full removal.
type TissueLayerDef struct {
	MaterialID     string
	ThicknessRatio float64 // fraction of the part's thickness

	Deflection float64 // shaves the geometry axis
	Absorption float64 // shaves the energy axis
	Dispersion float64 // shaves the rigidity axis

	GeometryThreshold float64
	GeometryRatio     float64
	EnergyThreshold   float64
	EnergyRatio       float64
	RigidityThreshold float64
	RigidityRatio     float64

	Structural bool
}

// TissueTable — глобальный registry всех tissue templates.
// map[templateID] → ordered outer→inner layer list.
var TissueTable map[string][]TissueLayerDef

// tissueMisses tracks template ids already warned about, so a malformed
// body plan logs once instead of once per attack. Guarded by tissueMissesMu:
// lookups happen during resolution, which runs concurrently per encounter.
var (
	tissueMissesMu sync.Mutex
	tissueMisses   map[string]bool
)

// GetTissueStack возвращает layer stack по template ID.
// Returns nil для неизвестного template — caller treats it as "no tissue
// to damage" (graceful degradation for incomplete content data).
func GetTissueStack(templateID string) []TissueLayerDef {
	if TissueTable == nil {
		return nil
	}
	stack, ok := TissueTable[templateID]
	if !ok {
		tissueMissesMu.Lock()
		if !tissueMisses[templateID] {
			slog.Warn("unknown tissue template", "id", templateID)
			tissueMisses[templateID] = true
		}
		tissueMissesMu.Unlock()
		return nil
	}
	return stack
}

// LoadTissueTemplates строит TissueTable из Go-литералов (tissueDefs).
func LoadTissueTemplates() error {
	TissueTable = make(map[string][]TissueLayerDef, len(tissueDefs))

	tissueMissesMu.Lock()
	tissueMisses = make(map[string]bool)
	tissueMissesMu.Unlock()

	for id, layers := range tissueDefs {
		TissueTable[id] = layers
	}

	slog.Info("loaded tissue templates", "count", len(TissueTable))
	return nil
}

// tissueDefs — builtin tissue templates. Layer order is outer→inner;
// thickness ratios sum to 1.0 per template.
var tissueDefs = map[string][]TissueLayerDef{
	"limb": {
		{MaterialID: "skin", ThicknessRatio: 0.05,
			Deflection: 0.05, Absorption: 0.05, Dispersion: 0.10,
			GeometryThreshold: 0.2, GeometryRatio: 2.0,
			EnergyThreshold: 2.0, EnergyRatio: 0.5,
			RigidityThreshold: 1.0, RigidityRatio: 0.5},
		{MaterialID: "fat", ThicknessRatio: 0.10,
			Deflection: 0.05, Absorption: 0.20, Dispersion: 0.30,
			GeometryThreshold: 0.3, GeometryRatio: 1.5,
			EnergyThreshold: 3.0, EnergyRatio: 0.4,
			RigidityThreshold: 1.5, RigidityRatio: 0.4},
		{MaterialID: "muscle", ThicknessRatio: 0.45,
			Deflection: 0.10, Absorption: 0.25, Dispersion: 0.25,
			GeometryThreshold: 0.4, GeometryRatio: 1.2,
			EnergyThreshold: 2.5, EnergyRatio: 0.45,
			RigidityThreshold: 1.2, RigidityRatio: 0.5},
		{MaterialID: "bone", ThicknessRatio: 0.40,
			Deflection: 0.30, Absorption: 0.40, Dispersion: 0.20,
			GeometryThreshold: 1.5, GeometryRatio: 1.0,
			EnergyThreshold: 6.0, EnergyRatio: 0.3,
			RigidityThreshold: 2.0, RigidityRatio: 0.6,
			Structural: true},
	},
	"core": {
		{MaterialID: "skin", ThicknessRatio: 0.05,
			Deflection: 0.05, Absorption: 0.05, Dispersion: 0.10,
			GeometryThreshold: 0.2, GeometryRatio: 2.0,
			EnergyThreshold: 2.0, EnergyRatio: 0.5,
			RigidityThreshold: 1.0, RigidityRatio: 0.5},
		{MaterialID: "fat", ThicknessRatio: 0.15,
			Deflection: 0.05, Absorption: 0.20, Dispersion: 0.30,
			GeometryThreshold: 0.3, GeometryRatio: 1.5,
			EnergyThreshold: 3.0, EnergyRatio: 0.4,
			RigidityThreshold: 1.5, RigidityRatio: 0.4},
		{MaterialID: "muscle", ThicknessRatio: 0.30,
			Deflection: 0.10, Absorption: 0.25, Dispersion: 0.25,
			GeometryThreshold: 0.4, GeometryRatio: 1.2,
			EnergyThreshold: 2.5, EnergyRatio: 0.45,
			RigidityThreshold: 1.2, RigidityRatio: 0.5},
		{MaterialID: "bone", ThicknessRatio: 0.20,
			Deflection: 0.30, Absorption: 0.40, Dispersion: 0.20,
			GeometryThreshold: 1.5, GeometryRatio: 1.0,
			EnergyThreshold: 6.0, EnergyRatio: 0.3,
			RigidityThreshold: 2.0, RigidityRatio: 0.6,
			Structural: true},
		{MaterialID: "organ", ThicknessRatio: 0.30,
			Deflection: 0.0, Absorption: 0.15, Dispersion: 0.10,
			GeometryThreshold: 0.1, GeometryRatio: 2.0,
			EnergyThreshold: 1.5, EnergyRatio: 0.6,
			RigidityThreshold: 0.8, RigidityRatio: 0.5},
	},
	"digit": {
		{MaterialID: "skin", ThicknessRatio: 0.15,
			Deflection: 0.05, Absorption: 0.05, Dispersion: 0.10,
			GeometryThreshold: 0.2, GeometryRatio: 2.0,
			EnergyThreshold: 2.0, EnergyRatio: 0.5,
			RigidityThreshold: 1.0, RigidityRatio: 0.5},
		{MaterialID: "tendon", ThicknessRatio: 0.25,
			Deflection: 0.10, Absorption: 0.15, Dispersion: 0.20,
			GeometryThreshold: 0.35, GeometryRatio: 1.3,
			EnergyThreshold: 2.2, EnergyRatio: 0.5,
			RigidityThreshold: 1.1, RigidityRatio: 0.5},
		{MaterialID: "bone", ThicknessRatio: 0.60,
			Deflection: 0.25, Absorption: 0.35, Dispersion: 0.20,
			GeometryThreshold: 1.0, GeometryRatio: 1.1,
			EnergyThreshold: 4.0, EnergyRatio: 0.4,
			RigidityThreshold: 1.5, RigidityRatio: 0.6,
			Structural: true},
	},
	"facial": {
		{MaterialID: "skin", ThicknessRatio: 0.30,
			Deflection: 0.05, Absorption: 0.05, Dispersion: 0.10,
			GeometryThreshold: 0.2, GeometryRatio: 2.0,
			EnergyThreshold: 2.0, EnergyRatio: 0.5,
			RigidityThreshold: 1.0, RigidityRatio: 0.5},
		{MaterialID: "cartilage", ThicknessRatio: 0.50,
			Deflection: 0.15, Absorption: 0.25, Dispersion: 0.20,
			GeometryThreshold: 0.8, GeometryRatio: 1.2,
			EnergyThreshold: 3.5, EnergyRatio: 0.45,
			RigidityThreshold: 1.5, RigidityRatio: 0.55,
			Structural: true},
		{MaterialID: "fat", ThicknessRatio: 0.20,
			Deflection: 0.05, Absorption: 0.20, Dispersion: 0.30,
			GeometryThreshold: 0.3, GeometryRatio: 1.5,
			EnergyThreshold: 3.0, EnergyRatio: 0.4,
			RigidityThreshold: 1.5, RigidityRatio: 0.4},
	},
	"throat": {
		{MaterialID: "skin", ThicknessRatio: 0.10,
			Deflection: 0.05, Absorption: 0.05, Dispersion: 0.10,
			GeometryThreshold: 0.2, GeometryRatio: 2.0,
			EnergyThreshold: 2.0, EnergyRatio: 0.5,
			RigidityThreshold: 1.0, RigidityRatio: 0.5},
		{MaterialID: "muscle", ThicknessRatio: 0.40,
			Deflection: 0.10, Absorption: 0.25, Dispersion: 0.25,
			GeometryThreshold: 0.4, GeometryRatio: 1.2,
			EnergyThreshold: 2.5, EnergyRatio: 0.45,
			RigidityThreshold: 1.2, RigidityRatio: 0.5},
		{MaterialID: "cartilage", ThicknessRatio: 0.20,
			Deflection: 0.15, Absorption: 0.25, Dispersion: 0.20,
			GeometryThreshold: 0.8, GeometryRatio: 1.2,
			EnergyThreshold: 3.5, EnergyRatio: 0.45,
			RigidityThreshold: 1.5, RigidityRatio: 0.55,
			Structural: true},
		{MaterialID: "bone", ThicknessRatio: 0.30,
			Deflection: 0.30, Absorption: 0.40, Dispersion: 0.20,
			GeometryThreshold: 1.5, GeometryRatio: 1.0,
			EnergyThreshold: 6.0, EnergyRatio: 0.3,
			RigidityThreshold: 2.0, RigidityRatio: 0.6,
			Structural: true},
	},
	"cranial": {
		{MaterialID: "skin", ThicknessRatio: 0.10,
			Deflection: 0.05, Absorption: 0.05, Dispersion: 0.10,
			GeometryThreshold: 0.2, GeometryRatio: 2.0,
			EnergyThreshold: 2.0, EnergyRatio: 0.5,
			RigidityThreshold: 1.0, RigidityRatio: 0.5},
		{MaterialID: "bone", ThicknessRatio: 0.35,
			Deflection: 0.35, Absorption: 0.45, Dispersion: 0.20,
			GeometryThreshold: 1.8, GeometryRatio: 0.9,
			EnergyThreshold: 7.0, EnergyRatio: 0.28,
			RigidityThreshold: 2.2, RigidityRatio: 0.6,
			Structural: true},
		{MaterialID: "brain", ThicknessRatio: 0.55,
			Deflection: 0.0, Absorption: 0.10, Dispersion: 0.05,
			GeometryThreshold: 0.05, GeometryRatio: 2.5,
			EnergyThreshold: 1.0, EnergyRatio: 0.7,
			RigidityThreshold: 0.5, RigidityRatio: 0.6},
	},
	"organ": {
		{MaterialID: "organ", ThicknessRatio: 1.0,
			Deflection: 0.0, Absorption: 0.15, Dispersion: 0.10,
			GeometryThreshold: 0.1, GeometryRatio: 2.0,
			EnergyThreshold: 1.5, EnergyRatio: 0.6,
			RigidityThreshold: 0.8, RigidityRatio: 0.5},
	},
}
