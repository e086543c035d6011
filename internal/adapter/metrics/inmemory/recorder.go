package inmemory

import (
	"sync"
	"time"

	"artifactsbot/internal/domain/game"
)

type Snapshot struct {
	ActionTotal     uint64            `json:"action_total"`
	ActionSuccess   uint64            `json:"action_success"`
	ActionFailure   uint64            `json:"action_failure"`
	CooldownSeconds float64           `json:"cooldown_seconds"`
	ByAction        map[string]uint64 `json:"by_action"`
	FailureByAction map[string]uint64 `json:"failure_by_action"`
}

type Recorder struct {
	mu        sync.Mutex
	success   uint64
	failure   uint64
	cooldown  time.Duration
	byAction  map[string]uint64
	failureBy map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction:  map[string]uint64{},
		failureBy: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(action game.ActionType, cooldown time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.cooldown += cooldown
	r.byAction[string(action)]++
}

func (r *Recorder) RecordFailure(action game.ActionType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	r.failureBy[string(action)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess:   r.success,
		ActionFailure:   r.failure,
		ActionTotal:     r.success + r.failure,
		CooldownSeconds: r.cooldown.Seconds(),
		ByAction:        make(map[string]uint64, len(r.byAction)),
		FailureByAction: make(map[string]uint64, len(r.failureBy)),
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
	}
	for k, v := range r.failureBy {
		out.FailureByAction[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
