package metrics

import (
	"time"

	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/domain/game"
)

// Tee forwards every observation to each recorder.
type Tee []ports.ActionMetrics

func (t Tee) RecordSuccess(action game.ActionType, cooldown time.Duration) {
	for _, m := range t {
		m.RecordSuccess(action, cooldown)
	}
}

func (t Tee) RecordFailure(action game.ActionType) {
	for _, m := range t {
		m.RecordFailure(action)
	}
}
