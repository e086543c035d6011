package ports

import (
	"time"

	"artifactsbot/internal/domain/game"
)

type ActionMetrics interface {
	RecordSuccess(action game.ActionType, cooldown time.Duration)
	RecordFailure(action game.ActionType)
}
