package ports

import (
	"context"

	"artifactsbot/internal/domain/game"
	"artifactsbot/internal/domain/world"
)

type MapFilter struct {
	ContentType world.ContentType
	ContentCode string
}

type ItemFilter struct {
	CraftSkill string
	MaxLevel   int
	Type       game.ItemType
}

// GameAPI is the subset of the game's REST API the client consumes.
type GameAPI interface {
	Status(ctx context.Context) (game.ServerStatus, error)
	MyCharacters(ctx context.Context) ([]game.Character, error)
	CreateCharacter(ctx context.Context, name, skin string) (game.Character, error)
	Character(ctx context.Context, name string) (game.Character, error)
	LatestLog(ctx context.Context, name string) (game.LogEntry, error)
	Action(ctx context.Context, name string, action game.ActionType, payload any) (game.ActionResult, error)

	MapAt(ctx context.Context, pos world.Position) (world.Location, error)
	Maps(ctx context.Context, filter MapFilter) ([]world.Location, error)
	Items(ctx context.Context, filter ItemFilter) ([]game.Item, error)
	Item(ctx context.Context, code string) (game.ItemDetails, error)
	Resources(ctx context.Context, drop string) ([]game.Source, error)
	Monsters(ctx context.Context, drop string) ([]game.Source, error)
	BankItems(ctx context.Context) ([]game.BankItem, error)
	BankGold(ctx context.Context) (int, error)
}
