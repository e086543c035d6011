package action

import (
	"context"
	"sync"
	"time"

	"artifactsbot/internal/adapter/gameapi/mock"
	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/domain/game"
)

type fakeWaiter struct {
	waits []time.Duration
}

func (w *fakeWaiter) Wait(ctx context.Context, d time.Duration) error {
	w.waits = append(w.waits, d)
	return ctx.Err()
}

func (w *fakeWaiter) total() time.Duration {
	var sum time.Duration
	for _, d := range w.waits {
		sum += d
	}
	return sum
}

type stubJournal struct {
	mu      sync.Mutex
	records []ports.ActionRecord
}

func (j *stubJournal) Append(_ context.Context, rec ports.ActionRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, rec)
	return nil
}

func (j *stubJournal) ListByCharacter(_ context.Context, character string, limit int) ([]ports.ActionRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []ports.ActionRecord
	for _, r := range j.records {
		if r.Character == character {
			out = append(out, r)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type stubMetrics struct {
	success map[game.ActionType]int
	failure map[game.ActionType]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{success: map[game.ActionType]int{}, failure: map[game.ActionType]int{}}
}

func (m *stubMetrics) RecordSuccess(action game.ActionType, _ time.Duration) { m.success[action]++ }
func (m *stubMetrics) RecordFailure(action game.ActionType) { m.failure[action]++ }

func newExecutor(g *mock.Game) (*Executor, *fakeWaiter) {
	w := &fakeWaiter{}
	return &Executor{API: g, Waiter: w}, w
}

func selected(g *mock.Game, name string) (*Executor, *fakeWaiter) {
	e, w := newExecutor(g)
	if _, err := e.Select(context.Background(), name); err != nil {
		panic(err)
	}
	g.CharacterReads = 0
	return e, w
}
