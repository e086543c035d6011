package gameapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/domain/game"
	"artifactsbot/internal/domain/world"
)

// pageSize is the largest page the API serves.
const pageSize = 100

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Pages int             `json:"pages"`
	Error *game.APIError  `json:"error"`
}

// Client maps the game's REST endpoints onto typed calls.
type Client struct {
	Transport ports.Transport
}

func New(transport ports.Transport) Client {
	return Client{Transport: transport}
}

func (c Client) Status(ctx context.Context) (game.ServerStatus, error) {
	var out game.ServerStatus
	_, err := c.get(ctx, "/", nil, &out)
	return out, err
}

func (c Client) MyCharacters(ctx context.Context) ([]game.Character, error) {
	var out []game.Character
	_, err := c.get(ctx, "/my/characters", nil, &out)
	return out, err
}

func (c Client) CreateCharacter(ctx context.Context, name, skin string) (game.Character, error) {
	var out game.Character
	err := c.post(ctx, "/characters/create", map[string]string{"name": name, "skin": skin}, &out)
	return out, err
}

func (c Client) Character(ctx context.Context, name string) (game.Character, error) {
	var out game.Character
	_, err := c.get(ctx, "/characters/"+url.PathEscape(name), nil, &out)
	return out, err
}

func (c Client) LatestLog(ctx context.Context, name string) (game.LogEntry, error) {
	var out []game.LogEntry
	_, err := c.get(ctx, "/my/"+url.PathEscape(name)+"/logs", url.Values{"page": {"1"}, "size": {"1"}}, &out)
	if err != nil {
		return game.LogEntry{}, err
	}
	if len(out) == 0 {
		return game.LogEntry{}, ports.ErrNotFound
	}
	return out[0], nil
}

func (c Client) Action(ctx context.Context, name string, action game.ActionType, payload any) (game.ActionResult, error) {
	var out game.ActionResult
	err := c.post(ctx, "/my/"+url.PathEscape(name)+"/action/"+string(action), payload, &out)
	return out, err
}

func (c Client) MapAt(ctx context.Context, pos world.Position) (world.Location, error) {
	var out world.Location
	_, err := c.get(ctx, fmt.Sprintf("/maps/%d/%d", pos.X, pos.Y), nil, &out)
	return out, err
}

func (c Client) Maps(ctx context.Context, filter ports.MapFilter) ([]world.Location, error) {
	q := url.Values{}
	if filter.ContentType != "" {
		q.Set("content_type", string(filter.ContentType))
	}
	if filter.ContentCode != "" {
		q.Set("content_code", filter.ContentCode)
	}
	return listAll[world.Location](ctx, c, "/maps", q)
}

func (c Client) Items(ctx context.Context, filter ports.ItemFilter) ([]game.Item, error) {
	q := url.Values{}
	if filter.CraftSkill != "" {
		q.Set("craft_skill", filter.CraftSkill)
	}
	if filter.MaxLevel > 0 {
		q.Set("max_level", strconv.Itoa(filter.MaxLevel))
	}
	if filter.Type != "" {
		q.Set("type", string(filter.Type))
	}
	return listAll[game.Item](ctx, c, "/items", q)
}

func (c Client) Item(ctx context.Context, code string) (game.ItemDetails, error) {
	var out game.ItemDetails
	_, err := c.get(ctx, "/items/"+url.PathEscape(code), nil, &out)
	return out, err
}

func (c Client) Resources(ctx context.Context, drop string) ([]game.Source, error) {
	var out []game.Source
	_, err := c.get(ctx, "/resources", url.Values{"drop": {drop}, "size": {strconv.Itoa(pageSize)}}, &out)
	return out, err
}

func (c Client) Monsters(ctx context.Context, drop string) ([]game.Source, error) {
	var out []game.Source
	_, err := c.get(ctx, "/monsters", url.Values{"drop": {drop}, "size": {strconv.Itoa(pageSize)}}, &out)
	return out, err
}

func (c Client) BankItems(ctx context.Context) ([]game.BankItem, error) {
	return listAll[game.BankItem](ctx, c, "/my/bank/items", url.Values{})
}

func (c Client) BankGold(ctx context.Context) (int, error) {
	var out struct {
		Quantity int `json:"quantity"`
	}
	_, err := c.get(ctx, "/my/bank/gold", nil, &out)
	return out.Quantity, err
}

func listAll[T any](ctx context.Context, c Client, path string, q url.Values) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		q.Set("page", strconv.Itoa(page))
		q.Set("size", strconv.Itoa(pageSize))
		var chunk []T
		pages, err := c.get(ctx, path, q, &chunk)
		if err != nil {
			return nil, err
		}
		all = append(all, chunk...)
		if page >= pages {
			return all, nil
		}
	}
}

func (c Client) get(ctx context.Context, path string, q url.Values, out any) (int, error) {
	resp, err := c.Transport.Do(ctx, ports.Request{Method: http.MethodGet, Path: path, Query: q})
	if err != nil {
		return 0, err
	}
	return decode(resp, out)
}

func (c Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.Transport.Do(ctx, ports.Request{Method: http.MethodPost, Path: path, Body: body})
	if err != nil {
		return err
	}
	_, err = decode(resp, out)
	return err
}

func decode(resp ports.Response, out any) (int, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return 0, fmt.Errorf("decode envelope: %w", err)
	}
	if resp.StatusCode != http.StatusOK || env.Error != nil {
		apiErr := &game.APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return 0, apiErr
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return 0, fmt.Errorf("decode data: %w", err)
		}
	}
	pages := env.Pages
	if pages < 1 {
		pages = 1
	}
	return pages, nil
}
