package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"artifactsbot/internal/app/action"
	"artifactsbot/internal/domain/game"
	"artifactsbot/internal/domain/world"
)

var (
	ErrUnknownScenario   = errors.New("unknown scenario")
	ErrDuplicateScenario = errors.New("scenario already registered")
	ErrUnsupportedTask   = errors.New("unsupported task type")
	ErrLoopLimit         = errors.New("loop action limit reached")
	ErrInvalidParams     = errors.New("invalid scenario parameters")
)

type Category string

const (
	CategoryGather          Category = "gather"
	CategoryCraftResource   Category = "craft_resource"
	CategoryCraftEquipment  Category = "craft_equipment"
	CategoryCraftConsumable Category = "craft_consumable"
	CategoryOther           Category = "other"
)

func Categories() []Category {
	return []Category{
		CategoryGather,
		CategoryCraftResource,
		CategoryCraftEquipment,
		CategoryCraftConsumable,
		CategoryOther,
	}
}

type ParamKind string

const (
	ParamInt    ParamKind = "int"
	ParamBool   ParamKind = "bool"
	ParamString ParamKind = "string"
)

type ParamSpec struct {
	Name    string    `json:"name"`
	Kind    ParamKind `json:"kind"`
	Default string    `json:"default"`
}

type Params struct {
	Quantity int
	Sell     bool
	Item     string
	Repeats  int
}

type RunFunc func(ctx context.Context, p Params) error

type Entry struct {
	Name     string
	Category Category
	Params   []ParamSpec
	Run      RunFunc
}

// Actions is the executor surface scenarios drive.
type Actions interface {
	Snapshot() game.Character
	Move(ctx context.Context, pos world.Position) error
	Gather(ctx context.Context) error
	Fight(ctx context.Context) error
	Craft(ctx context.Context, code string, quantity int) error
	Sell(ctx context.Context, code string, quantity int) error
	NewTask(ctx context.Context) error
	CompleteTask(ctx context.Context) error
	Deposit(ctx context.Context, code string, quantity int) error
	DepositGold(ctx context.Context, quantity int) error
}

type Finder interface {
	FindLocationForDrop(ctx context.Context, kind game.SourceKind, drop string) (world.Location, bool, error)
	FindLocationForContent(ctx context.Context, code string) (world.Location, bool, error)
	FindLocationForContentType(ctx context.Context, contentType world.ContentType) (world.Location, bool, error)
}

type Config struct {
	// MaxLoopActions caps every gather or fight loop. Zero means unbounded.
	MaxLoopActions int
}

// Library is the registry of runnable scenarios for one character.
type Library struct {
	actions Actions
	finder  Finder
	log     *zap.Logger
	cfg     Config
	newID   func() string

	entries map[string]Entry
	order   []string
}

// New builds a library with the built-in catalog registered.
func New(actions Actions, finder Finder, cfg Config, log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Library{
		actions: actions,
		finder:  finder,
		log:     log,
		cfg:     cfg,
		newID:   uuid.NewString,
		entries: map[string]Entry{},
	}
	for _, e := range l.catalog() {
		if err := l.Register(e); err != nil {
			panic(err)
		}
	}
	return l
}

func (l *Library) Register(e Entry) error {
	if e.Name == "" || e.Run == nil {
		return fmt.Errorf("invalid scenario entry %q", e.Name)
	}
	if _, exists := l.entries[e.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateScenario, e.Name)
	}
	l.entries[e.Name] = e
	l.order = append(l.order, e.Name)
	return nil
}

func (l *Library) Lookup(name string) (Entry, bool) {
	e, ok := l.entries[name]
	return e, ok
}

// Entries returns every registered scenario in registration order.
func (l *Library) Entries() []Entry {
	out := make([]Entry, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.entries[name])
	}
	return out
}

// Run executes the named scenario p.Repeats times under a fresh run id.
// A zero quantity is already satisfied and sends nothing.
// An unsupported task ends the repetitions without failing the run.
func (l *Library) Run(ctx context.Context, name string, p Params) (string, error) {
	e, ok := l.entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	if p.Quantity < 0 || p.Repeats < 0 {
		return "", fmt.Errorf("%w: quantity %d, repeats %d", ErrInvalidParams, p.Quantity, p.Repeats)
	}
	repeats := max(p.Repeats, 1)
	runID := l.newID()
	ctx = action.WithRunID(ctx, runID)
	log := l.log.With(zap.String("scenario", name), zap.String("run_id", runID))

	log.Info("scenario started", zap.Int("quantity", p.Quantity), zap.Int("repeats", repeats))
	for i := 0; i < repeats; i++ {
		err := e.Run(ctx, p)
		if errors.Is(err, ErrUnsupportedTask) {
			log.Warn("scenario stopped", zap.Error(err))
			return runID, nil
		}
		if err != nil {
			log.Error("scenario failed", zap.Int("repeat", i+1), zap.Error(err))
			return runID, err
		}
	}
	log.Info("scenario finished")
	return runID, nil
}

func (l *Library) call(ctx context.Context, name string, p Params) error {
	e, ok := l.entries[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	return e.Run(ctx, p)
}

// try reports recoverable step failures and returns ok=false for them.
// Only errors that must stop the whole run are returned.
func (l *Library) try(op string, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if recoverable(err) {
		l.log.Warn("step skipped", zap.String("step", op), zap.Error(err))
		return false, nil
	}
	return false, err
}

func recoverable(err error) bool {
	var apiErr *game.APIError
	return errors.As(err, &apiErr) ||
		errors.Is(err, action.ErrNoMarketPrice) ||
		errors.Is(err, action.ErrInvalidQuantity) ||
		errors.Is(err, action.ErrNotEquippable) ||
		errors.Is(err, action.ErrLevelTooLow)
}

// loop repeats act until done holds for the current character.
func (l *Library) loop(ctx context.Context, op string, done func(game.Character) bool, act func(context.Context) error) error {
	for n := 0; !done(l.actions.Snapshot()); n++ {
		if l.cfg.MaxLoopActions > 0 && n >= l.cfg.MaxLoopActions {
			return fmt.Errorf("%w: %s after %d actions", ErrLoopLimit, op, n)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if ok, err := l.try(op, act(ctx)); !ok {
			return err
		}
	}
	return nil
}

func (l *Library) moveTo(ctx context.Context, pos world.Position) (bool, error) {
	return l.try("move "+pos.String(), l.actions.Move(ctx, pos))
}
