package action

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/app/shared/cooldown"
	"artifactsbot/internal/domain/game"
)

var (
	ErrNoCharacter     = errors.New("no character selected")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNoMarketPrice   = errors.New("item has no market price")
	ErrNotEquippable   = errors.New("item cannot be equipped")
	ErrLevelTooLow     = errors.New("character level too low for item")
)

type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseSubmitting       Phase = "submitting"
	PhaseAwaitingCooldown Phase = "awaiting_cooldown"
	PhaseRefreshing       Phase = "refreshing"
	PhaseFailed           Phase = "failed"
)

// Executor submits one action at a time for a single character, waits out
// the reported cooldown and refreshes the character from the server. It is
// the only writer of the character state.
type Executor struct {
	API     ports.GameAPI
	Waiter  ports.Waiter
	Journal ports.ActionJournal
	Metrics ports.ActionMetrics
	Logger  *zap.Logger
	Now     func() time.Time

	// LogLastAction fetches and logs the newest log entry after each cooldown.
	LogLastAction bool
	// OnTransition, when set, observes every phase change.
	OnTransition func(from, to Phase)

	mu       sync.RWMutex
	selected bool
	state    game.Character
	phase    Phase
}

// Select loads the character and waits out any cooldown it still carries.
func (e *Executor) Select(ctx context.Context, name string) (game.Character, error) {
	c, err := e.API.Character(ctx, name)
	if err != nil {
		return game.Character{}, err
	}
	e.mu.Lock()
	e.state = c.Clone()
	e.selected = true
	e.phase = PhaseIdle
	e.mu.Unlock()

	if d, ok := cooldown.Remaining(c.CooldownExpiration, e.now()); ok {
		e.logger().Info("character on cooldown", zap.String("character", name), zap.Duration("cooldown", d))
		if err := e.waiter().Wait(ctx, d); err != nil {
			return c, err
		}
	}
	return c, nil
}

// Snapshot returns a copy of the current character state.
func (e *Executor) Snapshot() game.Character {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Clone()
}

func (e *Executor) Phase() Phase {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.phase == "" {
		return PhaseIdle
	}
	return e.phase
}

// Refresh re-fetches the character outside of an action cycle.
func (e *Executor) Refresh(ctx context.Context) (game.Character, error) {
	name, err := e.name()
	if err != nil {
		return game.Character{}, err
	}
	if err := e.refresh(ctx, name); err != nil {
		return game.Character{}, err
	}
	return e.Snapshot(), nil
}

// Execute runs one submit, cooldown and refresh cycle. On an application
// error the state is left untouched and nothing is awaited.
func (e *Executor) Execute(ctx context.Context, action game.ActionType, payload any) (game.ActionResult, error) {
	name, err := e.name()
	if err != nil {
		return game.ActionResult{}, err
	}
	log := e.logger().With(zap.String("character", name), zap.String("action", string(action)))

	e.transition(PhaseSubmitting)
	res, err := e.API.Action(ctx, name, action, payload)
	e.record(ctx, name, action, payload, res, err)
	if err != nil {
		e.transition(PhaseFailed)
		var apiErr *game.APIError
		if errors.As(err, &apiErr) {
			log.Warn("action rejected",
				zap.Int("status", apiErr.Status),
				zap.Int("code", apiErr.Code),
				zap.String("message", apiErr.Message),
			)
		}
		e.transition(PhaseIdle)
		return game.ActionResult{}, err
	}

	log.Info("action accepted",
		zap.String("reason", res.Cooldown.Reason),
		zap.Int("cooldown", res.Cooldown.TotalSeconds),
	)
	e.transition(PhaseAwaitingCooldown)
	if err := e.waiter().Wait(ctx, res.Cooldown.Duration()); err != nil {
		e.transition(PhaseIdle)
		return res, err
	}

	e.transition(PhaseRefreshing)
	if e.LogLastAction {
		entry, err := e.API.LatestLog(ctx, name)
		switch {
		case err == nil:
			log.Info("last action", zap.String("type", entry.Type), zap.String("description", entry.Description))
		case ctx.Err() != nil:
			e.transition(PhaseIdle)
			return res, ctx.Err()
		default:
			log.Debug("latest log unavailable", zap.Error(err))
		}
	}
	if err := e.refresh(ctx, name); err != nil {
		e.transition(PhaseIdle)
		return res, err
	}
	e.transition(PhaseIdle)
	return res, nil
}

func (e *Executor) refresh(ctx context.Context, name string) error {
	c, err := e.API.Character(ctx, name)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.state = c.Clone()
	e.mu.Unlock()
	return nil
}

func (e *Executor) record(ctx context.Context, name string, action game.ActionType, payload any, res game.ActionResult, err error) {
	if e.Metrics != nil {
		if err != nil {
			e.Metrics.RecordFailure(action)
		} else {
			e.Metrics.RecordSuccess(action, res.Cooldown.Duration())
		}
	}
	if e.Journal == nil {
		return
	}
	rec := ports.ActionRecord{
		Character:  name,
		RunID:      RunIDFrom(ctx),
		Action:     action,
		Outcome:    ports.OutcomeOK,
		ExecutedAt: e.now(),
	}
	if payload != nil {
		if b, mErr := json.Marshal(payload); mErr == nil {
			rec.Payload = b
		}
	}
	if err != nil {
		rec.Outcome = ports.OutcomeFailed
		rec.ErrorMessage = err.Error()
		var apiErr *game.APIError
		if errors.As(err, &apiErr) {
			rec.ErrorCode = apiErr.Code
			if rec.ErrorCode == 0 {
				rec.ErrorCode = apiErr.Status
			}
			rec.ErrorMessage = apiErr.Message
		}
	} else {
		rec.CooldownSeconds = res.Cooldown.TotalSeconds
		rec.Reason = res.Cooldown.Reason
	}
	if jErr := e.Journal.Append(context.WithoutCancel(ctx), rec); jErr != nil {
		e.logger().Warn("journal append failed", zap.String("character", name), zap.Error(jErr))
	}
}

func (e *Executor) name() (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.selected {
		return "", ErrNoCharacter
	}
	return e.state.Name, nil
}

func (e *Executor) transition(to Phase) {
	e.mu.Lock()
	from := e.phase
	if from == "" {
		from = PhaseIdle
	}
	e.phase = to
	hook := e.OnTransition
	e.mu.Unlock()
	if hook != nil && from != to {
		hook(from, to)
	}
}

func (e *Executor) waiter() ports.Waiter {
	if e.Waiter == nil {
		return cooldown.TimerWaiter{}
	}
	return e.Waiter
}

func (e *Executor) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e *Executor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
