// Package scenario runs declarative encounter fixtures: a defender built
// from a body plan and equipped armour, and a scripted sequence of attack
// packets resolved through the absorption→wound pipeline. Fixtures drive
// both the simulation binary and end-to-end tests.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/model"
)

// ArmourRef — one equipped piece in a fixture; Side matters only for
// sided templates (gauntlets, boots).
type ArmourRef struct {
	ID   string `yaml:"id"`
	Side string `yaml:"side"`
}

// Attack — one scripted packet aimed at a (part, side) of the defender.
type Attack struct {
	Kind        string  `yaml:"kind"`
	Amount      float64 `yaml:"amount"`
	Penetration float64 `yaml:"penetration"`
	Geometry    float64 `yaml:"geometry"`
	Energy      float64 `yaml:"energy"`
	Rigidity    float64 `yaml:"rigidity"`

	TargetPart string `yaml:"target_part"`
	TargetSide string `yaml:"target_side"`
}

// Scenario — one encounter fixture.
type Scenario struct {
	Name     string      `yaml:"name"`
	BodyPlan string      `yaml:"body_plan"`
	Armour   []ArmourRef `yaml:"armour"`
	Attacks  []Attack    `yaml:"attacks"`
	Seed     uint64      `yaml:"seed"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads scenario fixtures from a yaml file.
func Load(path string) ([]Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}
	var f scenarioFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parsing scenarios: %w", err)
	}
	return f.Scenarios, nil
}

// Report — outcome of one scenario run.
type Report struct {
	Scenario string
	Body     *model.Body
	Results  []combat.AttackResult
	Events   combat.EventList

	GraspStrength float64
	MobilityScore float64
	VisionScore   float64
	BleedingRate  float64 // summed over every wounded part
}

// Run builds the defender, equips the armour and resolves every scripted
// attack in order with the given randomness source. Catalogs must be
// loaded before calling.
func Run(s Scenario, rng combat.Roller) (*Report, error) {
	body, err := data.BuildBody(s.Name, s.BodyPlan)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	equipped := make([]*model.ArmorInstance, 0, len(s.Armour))
	for _, ref := range s.Armour {
		tpl := data.GetArmorTemplate(ref.ID)
		if tpl == nil {
			return nil, fmt.Errorf("scenario %q: unknown armour piece %q", s.Name, ref.ID)
		}
		side, err := data.ParseSide(ref.Side)
		if err != nil {
			return nil, fmt.Errorf("scenario %q armour %q: %w", s.Name, ref.ID, err)
		}
		equipped = append(equipped, model.NewArmorInstance(tpl, side))
	}
	stack := model.NewArmorStack()
	stack.Rebuild(body, equipped)

	report := &Report{Scenario: s.Name, Body: body}

	for i, atk := range s.Attacks {
		kind, err := data.ParseDamageKind(atk.Kind)
		if err != nil {
			return nil, fmt.Errorf("scenario %q attack %d: %w", s.Name, i, err)
		}
		tag, err := data.ParsePartTag(atk.TargetPart)
		if err != nil {
			return nil, fmt.Errorf("scenario %q attack %d: %w", s.Name, i, err)
		}
		side, err := data.ParseSide(atk.TargetSide)
		if err != nil {
			return nil, fmt.Errorf("scenario %q attack %d: %w", s.Name, i, err)
		}
		idx := body.FindPart(tag, side)
		if idx == model.NoPart {
			return nil, fmt.Errorf("scenario %q attack %d: body has no %s %s", s.Name, i, side, tag)
		}

		packet := model.DamagePacket{
			Kind:        kind,
			Amount:      atk.Amount,
			Penetration: atk.Penetration,
			Geometry:    atk.Geometry,
			Energy:      atk.Energy,
			Rigidity:    atk.Rigidity,
		}
		res := combat.ResolveAttackEvents(body, stack, idx, packet, rng, &report.Events)
		report.Results = append(report.Results, res)
	}

	report.GraspStrength = body.GraspStrength()
	report.MobilityScore = body.MobilityScore()
	report.VisionScore = body.VisionScore()
	report.BleedingRate = body.BleedingRate()
	return report, nil
}
