package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
	"github.com/redis/go-redis/v9"
)

const redisSessionPrefix = "dailydoit"

// RedisSessionStore keeps sessions as JSON strings under prefixed keys.
// Redis key expiry replaces pruning.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// NewConnectRedis opens a client for cfg and checks it with PING.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisSessionStore constructs the Redis session backend.
func NewRedisSessionStore(client *redis.Client, prefix string, logger *logger.Logger) *RedisSessionStore {
	logger.Debug().Msg("creating redis session store")
	return &RedisSessionStore{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (s *RedisSessionStore) redisKey(id string) string {
	return fmt.Sprintf("%s:sess:%s", s.prefix, id)
}

type redisSessionEntry struct {
	Data    models.SessionData `json:"data"`
	Expires time.Time          `json:"expires"`
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	raw, err := s.client.Get(ctx, s.redisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.SessionRecord{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*RedisSessionStore.Get").Msg("failed to read session")
		return models.SessionRecord{}, fmt.Errorf("%w: %w: %w", ErrExecutingQuery, ErrTransient, err)
	}

	var entry redisSessionEntry
	if err = json.Unmarshal(raw, &entry); err != nil {
		log.Err(err).Str("func", "*RedisSessionStore.Get").Msg("failed to decode session")
		return models.SessionRecord{}, errors.Join(ErrEncodingSession, err)
	}

	return models.SessionRecord{ID: id, Data: entry.Data, Expires: entry.Expires}, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, record models.SessionRecord) error {
	log := logger.FromContext(ctx)

	ttl := time.Until(record.Expires)
	if ttl <= 0 {
		return s.Destroy(ctx, record.ID)
	}

	raw, err := json.Marshal(redisSessionEntry{Data: record.Data, Expires: record.Expires})
	if err != nil {
		log.Err(err).Str("func", "*RedisSessionStore.Set").Msg("failed to encode session")
		return errors.Join(ErrEncodingSession, err)
	}

	if err = s.client.Set(ctx, s.redisKey(record.ID), raw, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*RedisSessionStore.Set").Msg("failed to save session")
		return fmt.Errorf("%w: %w: %w", ErrExecutingQuery, ErrTransient, err)
	}

	return nil
}

// Touch rewrites the stored expiry and the key TTL.
func (s *RedisSessionStore) Touch(ctx context.Context, id string, expires time.Time) error {
	record, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	record.Expires = expires
	return s.Set(ctx, record)
}

func (s *RedisSessionStore) Destroy(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.client.Del(ctx, s.redisKey(id)).Err(); err != nil {
		log.Err(err).Str("func", "*RedisSessionStore.Destroy").Msg("failed to destroy session")
		return fmt.Errorf("%w: %w: %w", ErrExecutingQuery, ErrTransient, err)
	}

	return nil
}

// Close releases the client connection pool.
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
