package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultSettingsKey is the hash used when no key is configured.
const DefaultSettingsKey = "docsdk:settings"

// SettingsStore persists settings.Store values as fields of a single Redis
// hash, so every node of the host application sees the same configuration.
type SettingsStore struct {
	db  redis.UniversalClient
	key string
}

// NewSettingsStore creates a store backed by the hash named key.
// An empty key falls back to DefaultSettingsKey.
func NewSettingsStore(client redis.UniversalClient, key string) (*SettingsStore, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if key == "" {
		key = DefaultSettingsKey
	}
	return &SettingsStore{db: client, key: key}, nil
}

// Get returns "" for unset fields.
func (s *SettingsStore) Get(ctx context.Context, field string) (string, error) {
	val, err := s.db.HGet(ctx, s.key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Join(ErrStoreFailed, err)
	}
	return val, nil
}

// Set stores value. An empty value removes the field.
func (s *SettingsStore) Set(ctx context.Context, field, value string) error {
	var err error
	if value == "" {
		err = s.db.HDel(ctx, s.key, field).Err()
	} else {
		err = s.db.HSet(ctx, s.key, field, value).Err()
	}
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

// All returns every stored field.
func (s *SettingsStore) All(ctx context.Context) (map[string]string, error) {
	vals, err := s.db.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, errors.Join(ErrStoreFailed, err)
	}
	return vals, nil
}

// Reset removes the whole settings hash.
func (s *SettingsStore) Reset(ctx context.Context) error {
	if err := s.db.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}
