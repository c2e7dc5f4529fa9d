package settings

import (
	"context"
	"sync"
)

// Keys under which settings are persisted in a Store.
const (
	KeyDemo                      = "demo"
	KeyDemoStart                 = "demoStart"
	KeyDocumentServerURL         = "documentServerUrl"
	KeyDocumentServerInternalURL = "documentServerInternalUrl"
	KeyJWTHeader                 = "jwtHeader"
	KeyJWTKey                    = "jwtKey"
	KeyJWTPrefix                 = "jwtPrefix"
	KeyJWTLeeway                 = "jwtLeeway"
	KeyIgnoreSSL                 = "ignoreSSL"
)

// Store persists settings edited by the host application (admin pages,
// plugin configuration and the like). Get returns "" for unset keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryStore is an in-process Store. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates a store pre-populated with values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	s := &MemoryStore{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
