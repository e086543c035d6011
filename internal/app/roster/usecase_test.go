package roster

import (
	"context"
	"errors"
	"testing"

	"artifactsbot/internal/adapter/gameapi/mock"
	"artifactsbot/internal/domain/game"
)

func TestList_NoCharacters(t *testing.T) {
	uc := UseCase{API: mock.New()}
	if _, err := uc.List(context.Background()); !errors.Is(err, ErrNoCharacters) {
		t.Fatalf("expected ErrNoCharacters, got %v", err)
	}
}

func TestCreate_ValidatesName(t *testing.T) {
	uc := UseCase{API: mock.New()}
	for _, name := range []string{"ab", "thirteenchars", "bad name", "émile"} {
		if _, err := uc.Create(context.Background(), name, "m"); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("%q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestCreate_PicksSkinBySex(t *testing.T) {
	g := mock.New()
	uc := UseCase{API: g, Pick: func(n int) int { return n - 1 }}

	c, err := uc.Create(context.Background(), "ann_1", "F")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.Skin != "women3" {
		t.Fatalf("expected women3, got %s", c.Skin)
	}
	c, err = uc.Create(context.Background(), "bob-2", "r")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.Skin != "women3" {
		t.Fatalf("expected last of combined pool, got %s", c.Skin)
	}
	if _, err := uc.Create(context.Background(), "cid", "x"); !errors.Is(err, ErrInvalidSex) {
		t.Fatalf("expected ErrInvalidSex, got %v", err)
	}
}

func TestEnsure_CreatesWhenEmpty(t *testing.T) {
	g := mock.New()
	uc := UseCase{API: g, Pick: func(int) int { return 0 }}

	chars, err := uc.Ensure(context.Background(), "ann", "m")
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
	if len(chars) != 1 || chars[0].Name != "ann" || chars[0].Skin != "men1" {
		t.Fatalf("unexpected characters %+v", chars)
	}

	chars, err = uc.Ensure(context.Background(), "other", "m")
	if err != nil {
		t.Fatalf("second Ensure error: %v", err)
	}
	if len(chars) != 1 || chars[0].Name != "ann" {
		t.Fatalf("expected existing character, got %+v", chars)
	}
}

func TestCreate_DuplicateNameSurfacesAPIError(t *testing.T) {
	g := mock.New().AddCharacter(game.Character{Name: "ann"})
	uc := UseCase{API: g}
	if _, err := uc.Create(context.Background(), "ann", "m"); !errors.Is(err, game.ErrAPI) {
		t.Fatalf("expected api error, got %v", err)
	}
}
