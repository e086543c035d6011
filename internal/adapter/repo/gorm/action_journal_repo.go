package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"artifactsbot/internal/adapter/repo/gorm/model"
	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/domain/game"
)

type ActionJournalRepo struct {
	db *gorm.DB
}

func NewActionJournalRepo(db *gorm.DB) ActionJournalRepo {
	return ActionJournalRepo{db: db}
}

func (r ActionJournalRepo) Append(ctx context.Context, rec ports.ActionRecord) error {
	m := model.ActionRecord{
		CharacterName:   rec.Character,
		RunID:           rec.RunID,
		Action:          string(rec.Action),
		Payload:         rec.Payload,
		Outcome:         rec.Outcome,
		CooldownSeconds: int32(rec.CooldownSeconds),
		Reason:          rec.Reason,
		ErrorCode:       int32(rec.ErrorCode),
		ErrorMessage:    rec.ErrorMessage,
		ExecutedAt:      rec.ExecutedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// ListByCharacter returns the newest limit records, oldest first.
func (r ActionJournalRepo) ListByCharacter(ctx context.Context, character string, limit int) ([]ports.ActionRecord, error) {
	q := r.db.WithContext(ctx).
		Where(&model.ActionRecord{CharacterName: character}).
		Order("executed_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []model.ActionRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.ActionRecord, len(rows))
	for i, m := range rows {
		out[len(rows)-1-i] = toRecord(m)
	}
	return out, nil
}

func toRecord(m model.ActionRecord) ports.ActionRecord {
	return ports.ActionRecord{
		Character:       m.CharacterName,
		RunID:           m.RunID,
		Action:          game.ActionType(m.Action),
		Payload:         m.Payload,
		Outcome:         m.Outcome,
		CooldownSeconds: int(m.CooldownSeconds),
		Reason:          m.Reason,
		ErrorCode:       int(m.ErrorCode),
		ErrorMessage:    m.ErrorMessage,
		ExecutedAt:      m.ExecutedAt,
	}
}
