package roster

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/domain/game"
)

var (
	ErrNoCharacters = errors.New("no characters on account")
	ErrInvalidName  = errors.New("invalid character name")
	ErrInvalidSex   = errors.New("invalid character sex")
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,12}$`)

var skins = map[string][]string{
	"m": {"men1", "men2", "men3"},
	"f": {"women1", "women2", "women3"},
	"r": {"men1", "men2", "men3", "women1", "women2", "women3"},
}

type UseCase struct {
	API ports.GameAPI
	// Pick chooses an index in [0, n). Defaults to math/rand.
	Pick func(n int) int
}

func (u UseCase) List(ctx context.Context) ([]game.Character, error) {
	chars, err := u.API.MyCharacters(ctx)
	if game.IsNotFound(err) || (err == nil && len(chars) == 0) {
		return nil, ErrNoCharacters
	}
	if err != nil {
		return nil, err
	}
	return chars, nil
}

// Create validates name and picks a skin matching sex (m, f or r for any).
func (u UseCase) Create(ctx context.Context, name, sex string) (game.Character, error) {
	name = strings.TrimSpace(name)
	if !namePattern.MatchString(name) {
		return game.Character{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	options, ok := skins[strings.ToLower(strings.TrimSpace(sex))]
	if !ok {
		return game.Character{}, fmt.Errorf("%w: %q", ErrInvalidSex, sex)
	}
	pick := u.Pick
	if pick == nil {
		pick = rand.IntN
	}
	return u.API.CreateCharacter(ctx, name, options[pick(len(options))])
}

// Ensure lists the account's characters, creating one when there are none.
func (u UseCase) Ensure(ctx context.Context, name, sex string) ([]game.Character, error) {
	chars, err := u.List(ctx)
	if err == nil {
		return chars, nil
	}
	if !errors.Is(err, ErrNoCharacters) {
		return nil, err
	}
	c, err := u.Create(ctx, name, sex)
	if err != nil {
		return nil, err
	}
	return []game.Character{c}, nil
}
