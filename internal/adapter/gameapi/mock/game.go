package mock

import (
	"context"
	"sort"
	"sync"

	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/domain/game"
	"artifactsbot/internal/domain/world"
)

type Call struct {
	Character string
	Action    game.ActionType
	Payload   any
}

// Task is what the tasks master hands out on task/new.
type Task struct {
	Code  string
	Type  game.TaskType
	Total int
}

// Game is an in-memory stand-in for the game API. Every successful action
// reports Cooldown seconds (default 0) and mutates the stored characters.
type Game struct {
	mu sync.Mutex

	Characters    map[string]*game.Character
	Locations     []world.Location
	ResourceNodes []game.Source
	MonsterNodes  []game.Source
	ItemIndex     map[string]game.ItemDetails
	Bank          map[string]int
	BankGoldQt    int
	Logs          map[string][]game.LogEntry
	Offline       bool

	// Lookup errors returned by Resources, Monsters and Maps when set.
	ResourcesErr error
	MonstersErr  error
	MapsErr      error

	Cooldown map[game.ActionType]int
	Fail     map[game.ActionType]*game.APIError
	NextTask Task
	// Recipes lists per-unit ingredients consumed by crafting.
	Recipes  map[string][]game.ItemPayload

	Calls           []Call
	CharacterReads  int
	ItemReads       int
	ResourceQueries []string
	MonsterQueries  []string
	MapQueries      []ports.MapFilter
}

func New() *Game {
	return &Game{
		Characters: map[string]*game.Character{},
		ItemIndex:  map[string]game.ItemDetails{},
		Bank:       map[string]int{},
		Logs:       map[string][]game.LogEntry{},
		Cooldown:   map[game.ActionType]int{},
		Fail:       map[game.ActionType]*game.APIError{},
		Recipes:    map[string][]game.ItemPayload{},
	}
}

func (g *Game) AddCharacter(c game.Character) *Game {
	g.mu.Lock()
	defer g.mu.Unlock()
	cp := c.Clone()
	g.Characters[c.Name] = &cp
	return g
}

func (g *Game) AddResource(loc world.Position, code, drop string) *Game {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Locations = append(g.Locations, world.Location{X: loc.X, Y: loc.Y, Content: &world.Content{Type: world.ContentResource, Code: code}})
	g.ResourceNodes = append(g.ResourceNodes, game.Source{Code: code, Drops: []game.Drop{{Code: drop, Rate: 1, MinQuantity: 1, MaxQuantity: 1}}})
	return g
}

func (g *Game) AddMonster(loc world.Position, code, drop string) *Game {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Locations = append(g.Locations, world.Location{X: loc.X, Y: loc.Y, Content: &world.Content{Type: world.ContentMonster, Code: code}})
	g.MonsterNodes = append(g.MonsterNodes, game.Source{Code: code, Drops: []game.Drop{{Code: drop, Rate: 1, MinQuantity: 1, MaxQuantity: 1}}})
	return g
}

func (g *Game) AddLocation(loc world.Position, contentType world.ContentType, code string) *Game {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Locations = append(g.Locations, world.Location{X: loc.X, Y: loc.Y, Content: &world.Content{Type: contentType, Code: code}})
	return g
}

func (g *Game) SetPrice(code string, buy, sell int) *Game {
	g.mu.Lock()
	defer g.mu.Unlock()
	d := g.ItemIndex[code]
	d.Item.Code = code
	d.GE = &game.Market{Code: code, BuyPrice: buy, SellPrice: sell}
	g.ItemIndex[code] = d
	return g
}

// Snapshot returns the stored state of one character.
func (g *Game) Snapshot(name string) game.Character {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.Characters[name]
	if !ok {
		return game.Character{}
	}
	return c.Clone()
}

// ActionsOf lists recorded actions of the given type.
func (g *Game) ActionsOf(action game.ActionType) []Call {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []Call
	for _, call := range g.Calls {
		if call.Action == action {
			out = append(out, call)
		}
	}
	return out
}

func (g *Game) Status(context.Context) (game.ServerStatus, error) {
	if g.Offline {
		return game.ServerStatus{}, &game.APIError{Status: 503, Message: "maintenance"}
	}
	return game.ServerStatus{Status: "online", Announcements: []game.Announcement{{Message: "welcome"}}}, nil
}

func (g *Game) MyCharacters(context.Context) ([]game.Character, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Characters) == 0 {
		return nil, &game.APIError{Status: 404, Message: "Characters not found."}
	}
	out := make([]game.Character, 0, len(g.Characters))
	for _, c := range g.Characters {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (g *Game) CreateCharacter(_ context.Context, name, skin string) (game.Character, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.Characters[name]; exists {
		return game.Character{}, &game.APIError{Status: 494, Message: "Name already used."}
	}
	c := &game.Character{Name: name, Skin: skin, Level: 1}
	g.Characters[name] = c
	return c.Clone(), nil
}

func (g *Game) Character(_ context.Context, name string) (game.Character, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.CharacterReads++
	c, ok := g.Characters[name]
	if !ok {
		return game.Character{}, &game.APIError{Status: 404, Message: "Character not found."}
	}
	return c.Clone(), nil
}

func (g *Game) LatestLog(_ context.Context, name string) (game.LogEntry, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	logs := g.Logs[name]
	if len(logs) == 0 {
		return game.LogEntry{}, ports.ErrNotFound
	}
	return logs[len(logs)-1], nil
}

func (g *Game) MapAt(_ context.Context, pos world.Position) (world.Location, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, loc := range g.Locations {
		if loc.Position() == pos {
			return loc, nil
		}
	}
	return world.Location{X: pos.X, Y: pos.Y}, nil
}

func (g *Game) Maps(_ context.Context, filter ports.MapFilter) ([]world.Location, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.MapQueries = append(g.MapQueries, filter)
	if g.MapsErr != nil {
		return nil, g.MapsErr
	}
	var out []world.Location
	for _, loc := range g.Locations {
		if filter.ContentType != "" && loc.ContentType() != filter.ContentType {
			continue
		}
		if filter.ContentCode != "" && loc.ContentCode() != filter.ContentCode {
			continue
		}
		out = append(out, loc)
	}
	return out, nil
}

func (g *Game) Items(_ context.Context, filter ports.ItemFilter) ([]game.Item, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []game.Item
	for _, d := range g.ItemIndex {
		if filter.Type != "" && d.Item.Type != filter.Type {
			continue
		}
		if filter.MaxLevel > 0 && d.Item.Level > filter.MaxLevel {
			continue
		}
		out = append(out, d.Item)
	}
	return out, nil
}

func (g *Game) Item(_ context.Context, code string) (game.ItemDetails, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ItemReads++
	d, ok := g.ItemIndex[code]
	if !ok {
		return game.ItemDetails{}, &game.APIError{Status: 404, Message: "Item not found."}
	}
	return d, nil
}

func (g *Game) Resources(_ context.Context, drop string) ([]game.Source, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ResourceQueries = append(g.ResourceQueries, drop)
	if g.ResourcesErr != nil {
		return nil, g.ResourcesErr
	}
	return dropping(g.ResourceNodes, drop), nil
}

func (g *Game) Monsters(_ context.Context, drop string) ([]game.Source, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.MonsterQueries = append(g.MonsterQueries, drop)
	if g.MonstersErr != nil {
		return nil, g.MonstersErr
	}
	return dropping(g.MonsterNodes, drop), nil
}

func (g *Game) BankItems(context.Context) ([]game.BankItem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]game.BankItem, 0, len(g.Bank))
	for code, qty := range g.Bank {
		out = append(out, game.BankItem{Code: code, Quantity: qty})
	}
	return out, nil
}

func (g *Game) BankGold(context.Context) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.BankGoldQt, nil
}

func dropping(sources []game.Source, drop string) []game.Source {
	var out []game.Source
	for _, s := range sources {
		for _, d := range s.Drops {
			if d.Code == drop {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
