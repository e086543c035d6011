package scenario

import "artifactsbot/internal/domain/game"

// Tier unlocks Scenarios once Skill reaches Level.
type Tier struct {
	Skill     game.Skill
	Level     int
	Scenarios []string
}

var tiers = []Tier{
	{Skill: game.SkillMining, Level: 10, Scenarios: []string{"gather_iron_ore", "craft_iron"}},
	{Skill: game.SkillMining, Level: 20, Scenarios: []string{"gather_coal", "craft_steel"}},
	{Skill: game.SkillMining, Level: 30, Scenarios: []string{"gather_gold_ore", "craft_gold"}},
	{Skill: game.SkillWoodcutting, Level: 10, Scenarios: []string{"gather_spruce_wood", "craft_spruce_plank"}},
	{Skill: game.SkillWoodcutting, Level: 20, Scenarios: []string{"gather_birch_wood", "craft_hardwood_plank"}},
	{Skill: game.SkillWoodcutting, Level: 30, Scenarios: []string{"gather_dead_wood", "craft_dead_wood_plank"}},
	{Skill: game.SkillFishing, Level: 10, Scenarios: []string{"gather_shrimp"}},
	{Skill: game.SkillFishing, Level: 20, Scenarios: []string{"gather_trout"}},
	{Skill: game.SkillFishing, Level: 30, Scenarios: []string{"gather_bass"}},
	{Skill: game.SkillWeaponcrafting, Level: 5, Scenarios: []string{"craft_sticky_sword"}},
	{Skill: game.SkillWeaponcrafting, Level: 10, Scenarios: []string{"craft_iron_sword"}},
	{Skill: game.SkillWeaponcrafting, Level: 20, Scenarios: []string{"craft_steel_axe"}},
	{Skill: game.SkillGearcrafting, Level: 5, Scenarios: []string{"craft_feather_coat"}},
	{Skill: game.SkillGearcrafting, Level: 10, Scenarios: []string{"craft_iron_boots"}},
	{Skill: game.SkillGearcrafting, Level: 15, Scenarios: []string{"craft_iron_helm"}},
	{Skill: game.SkillGearcrafting, Level: 20, Scenarios: []string{"craft_steel_helm"}},
	{Skill: game.SkillJewelrycrafting, Level: 10, Scenarios: []string{"craft_iron_ring"}},
	{Skill: game.SkillJewelrycrafting, Level: 25, Scenarios: []string{"craft_gold_ring"}},
	{Skill: game.SkillCooking, Level: 10, Scenarios: []string{"craft_cooked_shrimp"}},
	{Skill: game.SkillCooking, Level: 20, Scenarios: []string{"craft_cooked_trout"}},
	{Skill: game.SkillCooking, Level: 30, Scenarios: []string{"craft_cooked_bass"}},
}

// Tiers returns the unlock table.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

type Listing struct {
	Category  Category `json:"category"`
	Scenarios []string `json:"scenarios"`
}

// Eligible lists, per category, the scenarios c may run: every scenario
// no tier gates, plus those whose tier threshold c has reached.
func Eligible(c game.Character, entries []Entry, table []Tier) []Listing {
	gated := map[string]bool{}
	unlocked := map[string]bool{}
	for _, t := range table {
		for _, name := range t.Scenarios {
			gated[name] = true
			if c.SkillLevel(t.Skill) >= t.Level {
				unlocked[name] = true
			}
		}
	}

	byCategory := map[Category][]string{}
	for _, e := range entries {
		if gated[e.Name] && !unlocked[e.Name] {
			continue
		}
		byCategory[e.Category] = append(byCategory[e.Category], e.Name)
	}
	out := make([]Listing, 0, len(Categories()))
	for _, cat := range Categories() {
		if names := byCategory[cat]; len(names) > 0 {
			out = append(out, Listing{Category: cat, Scenarios: names})
		}
	}
	return out
}

func (l *Library) Eligible(c game.Character) []Listing {
	return Eligible(c, l.Entries(), tiers)
}
