package scenario

import (
	"context"

	"artifactsbot/internal/domain/game"
)

type gatherSpec struct {
	Item string
	Kind game.SourceKind
}

type Ingredient struct {
	Scenario string
	Multiple int
}

// Recipe describes a craft scenario: every ingredient scenario runs with
// Multiple times the requested quantity, then Intermediates and Item are
// crafted at the workshop of Skill.
type Recipe struct {
	Item          string
	Skill         game.Skill
	Category      Category
	Ingredients   []Ingredient
	Intermediates []string
}

var gatherSpecs = []gatherSpec{
	{Item: "copper_ore", Kind: game.SourceResource},
	{Item: "iron_ore", Kind: game.SourceResource},
	{Item: "coal", Kind: game.SourceResource},
	{Item: "gold_ore", Kind: game.SourceResource},
	{Item: "ash_wood", Kind: game.SourceResource},
	{Item: "spruce_wood", Kind: game.SourceResource},
	{Item: "birch_wood", Kind: game.SourceResource},
	{Item: "dead_wood", Kind: game.SourceResource},
	{Item: "gudgeon", Kind: game.SourceResource},
	{Item: "shrimp", Kind: game.SourceResource},
	{Item: "trout", Kind: game.SourceResource},
	{Item: "bass", Kind: game.SourceResource},
	{Item: "raw_chicken", Kind: game.SourceMonster},
	{Item: "feather", Kind: game.SourceMonster},
	{Item: "green_slimeball", Kind: game.SourceMonster},
}

var recipes = []Recipe{
	{Item: "copper", Skill: game.SkillMining, Category: CategoryCraftResource, Ingredients: []Ingredient{{"gather_copper_ore", 6}}},
	{Item: "iron", Skill: game.SkillMining, Category: CategoryCraftResource, Ingredients: []Ingredient{{"gather_iron_ore", 6}}},
	{Item: "steel", Skill: game.SkillMining, Category: CategoryCraftResource, Ingredients: []Ingredient{{"craft_iron", 3}, {"gather_coal", 7}}},
	{Item: "gold", Skill: game.SkillMining, Category: CategoryCraftResource, Ingredients: []Ingredient{{"gather_gold_ore", 6}}},
	{Item: "ash_plank", Skill: game.SkillWoodcutting, Category: CategoryCraftResource, Ingredients: []Ingredient{{"gather_ash_wood", 6}}},
	{Item: "spruce_plank", Skill: game.SkillWoodcutting, Category: CategoryCraftResource, Ingredients: []Ingredient{{"gather_spruce_wood", 6}}},
	{Item: "hardwood_plank", Skill: game.SkillWoodcutting, Category: CategoryCraftResource, Ingredients: []Ingredient{{"gather_birch_wood", 6}, {"gather_ash_wood", 4}}},
	{Item: "dead_wood_plank", Skill: game.SkillWoodcutting, Category: CategoryCraftResource, Ingredients: []Ingredient{{"gather_dead_wood", 6}}},

	{Item: "copper_dagger", Skill: game.SkillWeaponcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_copper", 3}}},
	{Item: "wooden_staff", Skill: game.SkillWeaponcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_ash_plank", 3}, {"gather_ash_wood", 4}}, Intermediates: []string{"wooden_stick"}},
	{Item: "copper_boots", Skill: game.SkillGearcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_copper", 3}}},
	{Item: "copper_helmet", Skill: game.SkillGearcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_copper", 6}}},
	{Item: "copper_ring", Skill: game.SkillJewelrycrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_copper", 6}}},
	{Item: "sticky_sword", Skill: game.SkillWeaponcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_copper", 5}, {"gather_green_slimeball", 2}}},
	{Item: "feather_coat", Skill: game.SkillGearcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_ash_plank", 3}, {"gather_feather", 5}}},
	{Item: "iron_sword", Skill: game.SkillWeaponcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_iron", 6}}},
	{Item: "iron_boots", Skill: game.SkillGearcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_iron", 8}}},
	{Item: "iron_ring", Skill: game.SkillJewelrycrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_iron", 6}}},
	{Item: "iron_helm", Skill: game.SkillGearcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_iron", 6}, {"craft_spruce_plank", 2}}},
	{Item: "steel_axe", Skill: game.SkillWeaponcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_steel", 6}, {"craft_hardwood_plank", 2}}},
	{Item: "steel_helm", Skill: game.SkillGearcrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_steel", 7}}},
	{Item: "gold_ring", Skill: game.SkillJewelrycrafting, Category: CategoryCraftEquipment, Ingredients: []Ingredient{{"craft_gold", 6}}},

	{Item: "cooked_gudgeon", Skill: game.SkillCooking, Category: CategoryCraftConsumable, Ingredients: []Ingredient{{"gather_gudgeon", 1}}},
	{Item: "cooked_chicken", Skill: game.SkillCooking, Category: CategoryCraftConsumable, Ingredients: []Ingredient{{"gather_raw_chicken", 1}}},
	{Item: "cooked_shrimp", Skill: game.SkillCooking, Category: CategoryCraftConsumable, Ingredients: []Ingredient{{"gather_shrimp", 1}}},
	{Item: "cooked_trout", Skill: game.SkillCooking, Category: CategoryCraftConsumable, Ingredients: []Ingredient{{"gather_trout", 1}}},
	{Item: "cooked_bass", Skill: game.SkillCooking, Category: CategoryCraftConsumable, Ingredients: []Ingredient{{"gather_bass", 1}}},
}

var (
	quantityParam = ParamSpec{Name: "quantity", Kind: ParamInt, Default: "1"}
	sellParam     = ParamSpec{Name: "sell", Kind: ParamBool, Default: "false"}
	itemParam     = ParamSpec{Name: "item", Kind: ParamString}
	repeatsParam  = ParamSpec{Name: "repeats", Kind: ParamInt, Default: "1"}
)

func GatherName(item string) string { return "gather_" + item }
func CraftName(item string) string { return "craft_" + item }

// Recipes returns the craft recipes of the built-in catalog.
func Recipes() []Recipe {
	out := make([]Recipe, len(recipes))
	copy(out, recipes)
	return out
}

func (l *Library) catalog() []Entry {
	var out []Entry
	for _, g := range gatherSpecs {
		out = append(out, Entry{
			Name:     GatherName(g.Item),
			Category: CategoryGather,
			Params:   []ParamSpec{quantityParam},
			Run: func(ctx context.Context, p Params) error {
				return l.gather(ctx, g.Item, g.Kind, p.Quantity)
			},
		})
	}
	for _, r := range recipes {
		out = append(out, Entry{
			Name:     CraftName(r.Item),
			Category: r.Category,
			Params:   []ParamSpec{quantityParam, sellParam},
			Run: func(ctx context.Context, p Params) error {
				return l.craft(ctx, r, p)
			},
		})
	}
	out = append(out,
		Entry{
			Name:     "do_quest_from_tasks_master",
			Category: CategoryOther,
			Params:   []ParamSpec{repeatsParam},
			Run: func(ctx context.Context, _ Params) error {
				return l.quest(ctx)
			},
		},
		Entry{
			Name:     "sell_item",
			Category: CategoryOther,
			Params:   []ParamSpec{itemParam, quantityParam},
			Run: func(ctx context.Context, p Params) error {
				return l.sell(ctx, p.Item, p.Quantity)
			},
		},
		Entry{
			Name:     "deposit_inventory",
			Category: CategoryOther,
			Run: func(ctx context.Context, _ Params) error {
				return l.depositAll(ctx)
			},
		},
	)
	return out
}
