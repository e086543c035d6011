package memory

import (
	"context"

	"artifactsbot/internal/app/ports"
)

type ActionJournalRepo struct {
	store *Store
}

func NewActionJournalRepo(store *Store) ActionJournalRepo {
	return ActionJournalRepo{store: store}
}

func (r ActionJournalRepo) Append(_ context.Context, rec ports.ActionRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if rec.Payload != nil {
		rec.Payload = append([]byte(nil), rec.Payload...)
	}
	r.store.records[rec.Character] = append(r.store.records[rec.Character], rec)
	return nil
}

func (r ActionJournalRepo) ListByCharacter(_ context.Context, character string, limit int) ([]ports.ActionRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	recs := r.store.records[character]
	if limit > 0 && len(recs) > limit {
		recs = recs[len(recs)-limit:]
	}
	out := make([]ports.ActionRecord, len(recs))
	copy(out, recs)
	return out, nil
}
