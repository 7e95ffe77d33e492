package cache

import (
	"bytes"
	"context"
	"sync"

	"github.com/Pjt727/classwatch/data"
)

type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (m *MemoryStore) Get(ctx context.Context, term data.Term) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[term.Code()]
	if !ok {
		return Record{}, ErrCacheMiss
	}
	return copyRecord(record), nil
}

func (m *MemoryStore) Put(ctx context.Context, term data.Term, record Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[term.Code()] = copyRecord(record)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, term data.Term) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, term.Code())
	return nil
}

// callers must not be able to mutate what is stored
func copyRecord(r Record) Record {
	if r.Document != nil {
		r.Document = bytes.Clone(r.Document)
	}
	return r
}
