package ports

import (
	"context"
	"time"

	"artifactsbot/internal/domain/game"
)

const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

type ActionRecord struct {
	Character       string
	RunID           string
	Action          game.ActionType
	Payload         []byte
	Outcome         string
	CooldownSeconds int
	Reason          string
	ErrorCode       int
	ErrorMessage    string
	ExecutedAt      time.Time
}

type ActionJournal interface {
	Append(ctx context.Context, record ActionRecord) error
	ListByCharacter(ctx context.Context, character string, limit int) ([]ActionRecord, error)
}
