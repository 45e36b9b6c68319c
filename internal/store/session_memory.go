package store

import (
	"context"
	"time"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
	"github.com/jellydator/ttlcache/v3"
)

// MemorySessionStore keeps sessions in process memory. It is meant for
// development and tests: sessions do not survive restarts and are not
// shared between instances.
type MemorySessionStore struct {
	cache *ttlcache.Cache[string, models.SessionRecord]
}

// NewMemorySessionStore creates an in-memory store with automatic removal of
// expired entries. Close stops the cleanup goroutine.
func NewMemorySessionStore(logger *logger.Logger) *MemorySessionStore {
	logger.Debug().Msg("creating memory session store")

	cache := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, models.SessionRecord](),
	)
	go cache.Start()

	return &MemorySessionStore{cache: cache}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (models.SessionRecord, error) {
	item := s.cache.Get(id)
	if item == nil || item.IsExpired() {
		return models.SessionRecord{}, ErrSessionNotFound
	}

	record := item.Value()
	if !time.Now().Before(record.Expires) {
		return models.SessionRecord{}, ErrSessionNotFound
	}

	return record, nil
}

func (s *MemorySessionStore) Set(_ context.Context, record models.SessionRecord) error {
	ttl := time.Until(record.Expires)
	if ttl <= 0 {
		s.cache.Delete(record.ID)
		return nil
	}

	s.cache.Set(record.ID, record, ttl)
	return nil
}

func (s *MemorySessionStore) Touch(_ context.Context, id string, expires time.Time) error {
	item := s.cache.Get(id)
	if item == nil {
		return nil
	}

	record := item.Value()
	record.Expires = expires
	if ttl := time.Until(expires); ttl > 0 {
		s.cache.Set(id, record, ttl)
	} else {
		s.cache.Delete(id)
	}

	return nil
}

func (s *MemorySessionStore) Destroy(_ context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}

// Len reports the number of live sessions.
func (s *MemorySessionStore) Len() int {
	return s.cache.Len()
}

// Close stops the cleanup goroutine.
func (s *MemorySessionStore) Close() error {
	s.cache.Stop()
	return nil
}
