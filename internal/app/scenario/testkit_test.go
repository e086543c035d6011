package scenario

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"artifactsbot/internal/adapter/gameapi/mock"
	"artifactsbot/internal/app/action"
	"artifactsbot/internal/app/locator"
	"artifactsbot/internal/domain/game"
	"artifactsbot/internal/domain/world"
)

type noWait struct{}

func (noWait) Wait(ctx context.Context, _ time.Duration) error { return ctx.Err() }

type harness struct {
	game *mock.Game
	exec *action.Executor
	lib  *Library
}

func newWorld() *mock.Game {
	g := mock.New().
		AddResource(world.Position{X: 2, Y: 0}, "copper_rocks", "copper_ore").
		AddResource(world.Position{X: 6, Y: 1}, "ash_tree", "ash_wood").
		AddResource(world.Position{X: 1, Y: 7}, "iron_rocks", "iron_ore").
		AddMonster(world.Position{X: 0, Y: 1}, "chicken", "raw_chicken").
		AddLocation(world.Position{X: 5, Y: 1}, world.ContentGrandExchange, "grand_exchange").
		AddLocation(world.Position{X: 1, Y: 2}, world.ContentTasksMaster, "monsters").
		AddLocation(world.Position{X: 4, Y: 1}, world.ContentBank, "bank")
	g.Recipes["copper"] = []game.ItemPayload{{Code: "copper_ore", Quantity: 6}}
	g.Recipes["ash_plank"] = []game.ItemPayload{{Code: "ash_wood", Quantity: 6}}
	g.Recipes["copper_dagger"] = []game.ItemPayload{{Code: "copper", Quantity: 3}}
	g.Recipes["wooden_staff"] = []game.ItemPayload{{Code: "ash_plank", Quantity: 3}, {Code: "ash_wood", Quantity: 4}}
	return g
}

func newHarness(t *testing.T, c game.Character, cfg Config) harness {
	t.Helper()
	if c.Name == "" {
		c.Name = "ann"
	}
	g := newWorld().AddCharacter(c)
	exec := &action.Executor{API: g, Waiter: noWait{}}
	_, err := exec.Select(context.Background(), c.Name)
	require.NoError(t, err)
	lib := New(exec, locator.Locator{API: g}, cfg, nil)
	lib.newID = func() string { return "run-1" }
	return harness{game: g, exec: exec, lib: lib}
}

func (h harness) count(action game.ActionType) int {
	return len(h.game.ActionsOf(action))
}

func (h harness) crafted() []game.ItemPayload {
	var out []game.ItemPayload
	for _, call := range h.game.ActionsOf(game.ActionCrafting) {
		out = append(out, call.Payload.(game.ItemPayload))
	}
	return out
}

func (h harness) moves() []game.MovePayload {
	var out []game.MovePayload
	for _, call := range h.game.ActionsOf(game.ActionMove) {
		out = append(out, call.Payload.(game.MovePayload))
	}
	return out
}

func mockTask(code string, typ game.TaskType, total int) mock.Task {
	return mock.Task{Code: code, Type: typ, Total: total}
}
