package mock

import (
	"context"
	"errors"
	"testing"

	"artifactsbot/internal/domain/game"
	"artifactsbot/internal/domain/world"
)

func TestGame_GatherAddsDropAtResource(t *testing.T) {
	g := New().
		AddCharacter(game.Character{Name: "ann", X: 2, Y: 0}).
		AddResource(world.Position{X: 2, Y: 0}, "copper_rocks", "copper_ore")
	g.Cooldown[game.ActionGathering] = 25

	res, err := g.Action(context.Background(), "ann", game.ActionGathering, nil)
	if err != nil {
		t.Fatalf("gathering: %v", err)
	}
	if res.Cooldown.TotalSeconds != 25 {
		t.Fatalf("expected cooldown 25, got %d", res.Cooldown.TotalSeconds)
	}
	if got := g.Snapshot("ann").Quantity("copper_ore"); got != 1 {
		t.Fatalf("expected 1 copper_ore, got %d", got)
	}
}

func TestGame_MoveToSamePositionFails(t *testing.T) {
	g := New().AddCharacter(game.Character{Name: "ann", X: 1, Y: 1})
	_, err := g.Action(context.Background(), "ann", game.ActionMove, game.MovePayload{X: 1, Y: 1})
	var apiErr *game.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 490 {
		t.Fatalf("expected 490 api error, got %v", err)
	}
}

func TestGame_FightAdvancesMonsterTask(t *testing.T) {
	g := New().
		AddCharacter(game.Character{Name: "ann", Task: "chicken", TaskType: game.TaskMonsters, TaskTotal: 2}).
		AddMonster(world.Position{}, "chicken", "raw_chicken")

	for i := 0; i < 3; i++ {
		if _, err := g.Action(context.Background(), "ann", game.ActionFight, nil); err != nil {
			t.Fatalf("fight %d: %v", i, err)
		}
	}
	c := g.Snapshot("ann")
	if c.TaskProgress != 2 || !c.TaskDone() {
		t.Fatalf("expected task done at 2/2, got %d/%d", c.TaskProgress, c.TaskTotal)
	}
	if c.Quantity("raw_chicken") != 3 {
		t.Fatalf("expected 3 raw_chicken, got %d", c.Quantity("raw_chicken"))
	}
}

func TestGame_SellCreditsGold(t *testing.T) {
	g := New().AddCharacter(game.Character{Name: "ann", Inventory: []game.InventorySlot{{Slot: 1, Code: "copper", Quantity: 10}}})
	if _, err := g.Action(context.Background(), "ann", game.ActionGrandExchangeSell, game.TradePayload{Code: "copper", Quantity: 4, Price: 3}); err != nil {
		t.Fatalf("sell: %v", err)
	}
	c := g.Snapshot("ann")
	if c.Gold != 12 || c.Quantity("copper") != 6 {
		t.Fatalf("unexpected state gold=%d copper=%d", c.Gold, c.Quantity("copper"))
	}
}

func TestGame_ForcedFailureIsRecorded(t *testing.T) {
	g := New().AddCharacter(game.Character{Name: "ann"})
	g.Fail[game.ActionCrafting] = &game.APIError{Status: 493, Message: "Skill level too low."}

	if _, err := g.Action(context.Background(), "ann", game.ActionCrafting, game.ItemPayload{Code: "iron", Quantity: 1}); !errors.Is(err, game.ErrAPI) {
		t.Fatalf("expected api error, got %v", err)
	}
	if len(g.ActionsOf(game.ActionCrafting)) != 1 {
		t.Fatalf("expected failed call to be recorded")
	}
}
