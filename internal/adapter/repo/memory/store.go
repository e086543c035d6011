package memory

import (
	"sync"

	"artifactsbot/internal/app/ports"
)

type Store struct {
	mu      sync.RWMutex
	records map[string][]ports.ActionRecord
}

func NewStore() *Store {
	return &Store{records: make(map[string][]ports.ActionRecord)}
}
