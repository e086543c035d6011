package runner

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"artifactsbot/internal/app/action"
	"artifactsbot/internal/app/locator"
	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/app/scenario"
	"artifactsbot/internal/domain/game"
)

type Job struct {
	Character string
	Scenario  string
	Params    scenario.Params
}

// Session is the executor and scenario library owned by one character.
type Session struct {
	Executor *action.Executor
	Library  *scenario.Library
}

// Runner runs jobs with one independent session per character. Jobs of
// different characters run concurrently; jobs of one character run in order.
type Runner struct {
	API           ports.GameAPI
	Waiter        ports.Waiter
	Journal       ports.ActionJournal
	Metrics       ports.ActionMetrics
	Logger        *zap.Logger
	Scenario      scenario.Config
	LogLastAction bool

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Session returns the session of name, creating it on first use.
func (r *Runner) Session(name string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[name]; ok {
		return s
	}
	if r.sessions == nil {
		r.sessions = map[string]*Session{}
	}
	log := r.logger().With(zap.String("character", name))
	exec := &action.Executor{
		API:           r.API,
		Waiter:        r.Waiter,
		Journal:       r.Journal,
		Metrics:       r.Metrics,
		Logger:        log,
		LogLastAction: r.LogLastAction,
	}
	s := &Session{
		Executor: exec,
		Library:  scenario.New(exec, locator.Locator{API: r.API, Logger: log}, r.Scenario, log),
	}
	r.sessions[name] = s
	return s
}

func (r *Runner) Run(ctx context.Context, jobs []Job) error {
	var order []string
	byCharacter := map[string][]Job{}
	for _, j := range jobs {
		if _, seen := byCharacter[j.Character]; !seen {
			order = append(order, j.Character)
		}
		byCharacter[j.Character] = append(byCharacter[j.Character], j)
	}

	var g errgroup.Group
	for _, name := range order {
		queue := byCharacter[name]
		g.Go(func() error {
			return r.runCharacter(ctx, name, queue)
		})
	}
	return g.Wait()
}

func (r *Runner) runCharacter(ctx context.Context, name string, jobs []Job) error {
	s := r.Session(name)
	if _, err := s.Executor.Select(ctx, name); err != nil {
		return fmt.Errorf("select %s: %w", name, err)
	}
	for _, j := range jobs {
		if _, err := s.Library.Run(ctx, j.Scenario, j.Params); err != nil {
			return fmt.Errorf("%s: %s: %w", name, j.Scenario, err)
		}
	}
	return nil
}

// Snapshots returns the tracked state of every character with a session.
func (r *Runner) Snapshots() []game.Character {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]game.Character, 0, len(r.sessions))
	for _, s := range r.sessions {
		if c := s.Executor.Snapshot(); c.Name != "" {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Eligible lists the scenarios the tracked state of name may run.
func (r *Runner) Eligible(name string) ([]scenario.Listing, bool) {
	r.mu.RLock()
	s, ok := r.sessions[name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return s.Library.Eligible(s.Executor.Snapshot()), true
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
