package inmemory

import (
	"context"
	"strings"
	"sync"

	"aurora-app-go/internal/domain/records"
)

var _ records.Store = (*RecordStore)(nil)

// RecordStore keeps documents in process memory. Data is lost on restart.
type RecordStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		items: make(map[string][]byte),
	}
}

func (s *RecordStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	value, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return clone(value), true, nil
}

func (s *RecordStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.items[key] = clone(value)
	s.mu.Unlock()
	return nil
}

func (s *RecordStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

func (s *RecordStore) List(_ context.Context, prefix string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]byte)
	for key, value := range s.items {
		if strings.HasPrefix(key, prefix) {
			result[key] = clone(value)
		}
	}
	return result, nil
}

func (s *RecordStore) DeletePrefix(_ context.Context, prefix string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
			deleted++
		}
	}
	return deleted, nil
}

func clone(value []byte) []byte {
	return append([]byte(nil), value...)
}
