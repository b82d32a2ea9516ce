package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrReportNotFound is returned when a report ID is unknown or expired
var ErrReportNotFound = errors.New("report not found")

// ReportStore keeps serialized analysis reports for later retrieval. Reports
// expire; nothing here is durable storage.
type ReportStore interface {
	SaveReport(ctx context.Context, id string, payload []byte, ttl time.Duration) error
	GetReport(ctx context.Context, id string) ([]byte, error)
}

// MemoryStore is the in-process ReportStore used when Redis is not configured
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
}

type memoryItem struct {
	payload    []byte
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// SaveReport stores a report payload with expiration
func (ms *MemoryStore) SaveReport(_ context.Context, id string, payload []byte, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[id] = &memoryItem{
		payload:    payload,
		expireTime: time.Now().Add(ttl),
	}
	return nil
}

// GetReport retrieves a report payload by ID
func (ms *MemoryStore) GetReport(_ context.Context, id string) ([]byte, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[id]
	if !exists || time.Now().After(item.expireTime) {
		return nil, ErrReportNotFound
	}
	return item.payload, nil
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}
