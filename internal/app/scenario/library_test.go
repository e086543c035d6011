package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artifactsbot/internal/domain/game"
)

func TestGather_NoActionWhenAlreadySatisfied(t *testing.T) {
	h := newHarness(t, game.Character{Inventory: []game.InventorySlot{{Slot: 1, Code: "copper_ore", Quantity: 5}}}, Config{})

	_, err := h.lib.Run(context.Background(), "gather_copper_ore", Params{Quantity: 5})
	require.NoError(t, err)
	assert.Empty(t, h.game.Calls)
	assert.Empty(t, h.game.ResourceQueries)
}

func TestRun_ZeroQuantityIsAlreadySatisfied(t *testing.T) {
	h := newHarness(t, game.Character{Inventory: []game.InventorySlot{{Slot: 1, Code: "copper", Quantity: 5}}}, Config{})
	h.game.SetPrice("copper", 0, 1)

	for _, name := range []string{"gather_copper_ore", "craft_copper", "sell_item"} {
		_, err := h.lib.Run(context.Background(), name, Params{Item: "copper", Quantity: 0, Sell: true})
		require.NoError(t, err, name)
	}
	assert.Empty(t, h.game.Calls)
	assert.Empty(t, h.game.ResourceQueries)
	assert.Empty(t, h.game.MapQueries)
}

func TestRun_NegativeParamsRejected(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})

	_, err := h.lib.Run(context.Background(), "gather_copper_ore", Params{Quantity: -1})
	assert.ErrorIs(t, err, ErrInvalidParams)
	_, err = h.lib.Run(context.Background(), "do_quest_from_tasks_master", Params{Repeats: -2})
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.Empty(t, h.game.Calls)
}

func TestGather_StopsExactlyAtThreshold(t *testing.T) {
	h := newHarness(t, game.Character{Inventory: []game.InventorySlot{{Slot: 1, Code: "copper_ore", Quantity: 2}}}, Config{})

	_, err := h.lib.Run(context.Background(), "gather_copper_ore", Params{Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, h.count(game.ActionGathering))
	assert.Equal(t, 5, h.exec.Snapshot().Quantity("copper_ore"))
	assert.Equal(t, []game.MovePayload{{X: 2, Y: 0}}, h.moves())
}

func TestGather_MonsterDropFights(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})

	_, err := h.lib.Run(context.Background(), "gather_raw_chicken", Params{Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, h.count(game.ActionFight))
	assert.Zero(t, h.count(game.ActionGathering))
}

func TestGather_MissingLocationSkipsStep(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})

	_, err := h.lib.Run(context.Background(), "gather_bass", Params{Quantity: 3})
	require.NoError(t, err)
	assert.Empty(t, h.game.Calls)
}

func TestGather_LoopLimit(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{MaxLoopActions: 3})

	_, err := h.lib.Run(context.Background(), "gather_copper_ore", Params{Quantity: 10})
	assert.ErrorIs(t, err, ErrLoopLimit)
	assert.Equal(t, 3, h.count(game.ActionGathering))
}

func TestGather_ApplicationErrorStopsLoop(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})
	h.game.Fail[game.ActionGathering] = &game.APIError{Status: 497, Message: "Character inventory is full."}

	_, err := h.lib.Run(context.Background(), "gather_copper_ore", Params{Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, h.count(game.ActionGathering))
}

func TestCraft_SourceLookupErrorSkipsGather(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})
	h.game.ResourcesErr = &game.APIError{Status: 404, Message: "Resources not found."}

	_, err := h.lib.Run(context.Background(), "craft_copper", Params{Quantity: 1})
	require.NoError(t, err)
	assert.Zero(t, h.count(game.ActionGathering))
	assert.Equal(t, []game.ItemPayload{{Code: "copper", Quantity: 1}}, h.crafted())
}

func TestCraft_ScalesIngredientsByQuantity(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})

	_, err := h.lib.Run(context.Background(), "craft_copper", Params{Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 12, h.count(game.ActionGathering))
	assert.Equal(t, []game.ItemPayload{{Code: "copper", Quantity: 2}}, h.crafted())
	assert.Equal(t, []game.MovePayload{{X: 2, Y: 0}, {X: 1, Y: 5}}, h.moves())

	c := h.exec.Snapshot()
	assert.Equal(t, 2, c.Quantity("copper"))
	assert.Zero(t, c.Quantity("copper_ore"))
}

func TestCraft_NestedRecipe(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})

	_, err := h.lib.Run(context.Background(), "craft_copper_dagger", Params{Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 18, h.count(game.ActionGathering))
	assert.Equal(t, []game.ItemPayload{{Code: "copper", Quantity: 3}, {Code: "copper_dagger", Quantity: 1}}, h.crafted())
	assert.Equal(t, 1, h.exec.Snapshot().Quantity("copper_dagger"))
}

func TestCraft_IntermediatesBeforeItem(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})

	_, err := h.lib.Run(context.Background(), "craft_wooden_staff", Params{Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 22, h.count(game.ActionGathering))
	assert.Equal(t, []game.ItemPayload{
		{Code: "ash_plank", Quantity: 3},
		{Code: "wooden_stick", Quantity: 1},
		{Code: "wooden_staff", Quantity: 1},
	}, h.crafted())
	assert.Equal(t, 1, h.exec.Snapshot().Quantity("wooden_staff"))
}

func TestCraft_SellFlagSellsAtExchange(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})
	h.game.SetPrice("copper", 0, 3)

	_, err := h.lib.Run(context.Background(), "craft_copper", Params{Quantity: 1, Sell: true})
	require.NoError(t, err)
	require.Equal(t, 1, h.count(game.ActionGrandExchangeSell))
	moves := h.moves()
	assert.Equal(t, game.MovePayload{X: 5, Y: 1}, moves[len(moves)-1])
	assert.Equal(t, 3, h.exec.Snapshot().Gold)
}

func TestCraft_FailedCraftIsReportedAndRunContinues(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})
	h.game.Fail[game.ActionCrafting] = &game.APIError{Status: 493, Message: "Skill level too low."}

	_, err := h.lib.Run(context.Background(), "craft_copper_dagger", Params{Quantity: 1, Sell: true})
	require.NoError(t, err)
	assert.Equal(t, 18, h.count(game.ActionGathering))
	assert.Zero(t, h.count(game.ActionGrandExchangeSell))
}

func TestSellItem(t *testing.T) {
	h := newHarness(t, game.Character{Inventory: []game.InventorySlot{{Slot: 1, Code: "copper", Quantity: 60}}}, Config{})
	h.game.SetPrice("copper", 0, 1)

	_, err := h.lib.Run(context.Background(), "sell_item", Params{Item: "copper", Quantity: 60})
	require.NoError(t, err)
	assert.Equal(t, 2, h.count(game.ActionGrandExchangeSell))
	assert.Equal(t, 60, h.exec.Snapshot().Gold)
}

func TestSellItem_NoPriceIsReported(t *testing.T) {
	h := newHarness(t, game.Character{Inventory: []game.InventorySlot{{Slot: 1, Code: "copper", Quantity: 5}}}, Config{})

	_, err := h.lib.Run(context.Background(), "sell_item", Params{Item: "copper", Quantity: 5})
	require.NoError(t, err)
	assert.Zero(t, h.count(game.ActionGrandExchangeSell))
}

func TestQuest_MonsterTask(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})
	h.game.NextTask = mockTask("chicken", game.TaskMonsters, 3)

	_, err := h.lib.Run(context.Background(), "do_quest_from_tasks_master", Params{Repeats: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, h.count(game.ActionTaskNew))
	assert.Equal(t, 6, h.count(game.ActionFight))
	assert.Equal(t, 2, h.count(game.ActionTaskComplete))

	c := h.exec.Snapshot()
	assert.False(t, c.HasTask())
	assert.Equal(t, 2, c.Quantity("tasks_coin"))
}

func TestQuest_UnsupportedTaskAbortsLoop(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})
	h.game.NextTask = mockTask("copper_ore", game.TaskResources, 10)

	_, err := h.lib.Run(context.Background(), "do_quest_from_tasks_master", Params{Repeats: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, h.count(game.ActionTaskNew))
	assert.Zero(t, h.count(game.ActionFight))
}

func TestQuest_ResumesHeldTask(t *testing.T) {
	h := newHarness(t, game.Character{Task: "chicken", TaskType: game.TaskMonsters, TaskProgress: 1, TaskTotal: 2}, Config{})

	_, err := h.lib.Run(context.Background(), "do_quest_from_tasks_master", Params{})
	require.NoError(t, err)
	assert.Zero(t, h.count(game.ActionTaskNew))
	assert.Equal(t, 1, h.count(game.ActionFight))
	assert.Equal(t, 1, h.count(game.ActionTaskComplete))
}

func TestDepositInventory(t *testing.T) {
	h := newHarness(t, game.Character{Gold: 10, Inventory: []game.InventorySlot{
		{Slot: 1, Code: "copper_ore", Quantity: 3},
		{Slot: 2, Code: "", Quantity: 0},
		{Slot: 3, Code: "ash_wood", Quantity: 2},
	}}, Config{})

	_, err := h.lib.Run(context.Background(), "deposit_inventory", Params{})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"copper_ore": 3, "ash_wood": 2}, h.game.Bank)
	assert.Equal(t, 10, h.game.BankGoldQt)
	assert.Empty(t, h.exec.Snapshot().Items())
}

func TestRun_UnknownScenario(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})
	_, err := h.lib.Run(context.Background(), "craft_excalibur", Params{})
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestRun_RepeatsAndRunID(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})

	id, err := h.lib.Run(context.Background(), "craft_copper", Params{Quantity: 1, Repeats: 2})
	require.NoError(t, err)
	assert.Equal(t, "run-1", id)
	assert.Equal(t, 12, h.count(game.ActionGathering))
	assert.Len(t, h.crafted(), 2)
}

func TestRun_CancelledContextStops(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.lib.Run(ctx, "gather_copper_ore", Params{Quantity: 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	h := newHarness(t, game.Character{}, Config{})
	err := h.lib.Register(Entry{Name: "craft_copper", Run: func(context.Context, Params) error { return nil }})
	assert.ErrorIs(t, err, ErrDuplicateScenario)
}

func TestCatalog_IngredientsAndTiersResolve(t *testing.T) {
	lib := New(nil, nil, Config{}, nil)
	for _, r := range Recipes() {
		for _, ing := range r.Ingredients {
			_, ok := lib.Lookup(ing.Scenario)
			assert.True(t, ok, "%s needs %s", r.Item, ing.Scenario)
			assert.Positive(t, ing.Multiple)
		}
	}
	for _, tier := range Tiers() {
		for _, name := range tier.Scenarios {
			_, ok := lib.Lookup(name)
			assert.True(t, ok, "tier scenario %s", name)
		}
	}
}
