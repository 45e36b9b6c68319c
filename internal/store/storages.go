package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/logger"
)

// Storages bundles every repository used by the services together with the
// selected session backend.
type Storages struct {
	UserRepository                UserRepository
	ActivationTokenRepository     ActivationTokenRepository
	FederatedCredentialRepository FederatedCredentialRepository
	DayRepository                 DayRepository

	Sessions SessionRepository
	// SessionPruner is nil for backends with native expiry.
	SessionPruner SessionPruner

	db      *DB
	closers []func() error
}

// NewStorages connects to PostgreSQL, applies migrations and opens the
// session backend named by cfg.Session.Store.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	s := newStorages(db, log)
	if err = s.openSessions(ctx, cfg, log); err != nil {
		_ = s.Close()
		return nil, err
	}

	return s, nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:                NewUserRepository(db, log),
		ActivationTokenRepository:     NewActivationTokenRepository(db, log),
		FederatedCredentialRepository: NewFederatedCredentialRepository(db, log),
		DayRepository:                 NewDayRepository(db, log),
		db:                            db,
		closers:                       []func() error{db.Close},
	}
}

func (s *Storages) openSessions(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	switch cfg.Session.Store {
	case config.SessionStorePostgres, "":
		pg := NewPostgresSessionStore(s.db, log)
		s.Sessions = pg
		s.SessionPruner = pg
	case config.SessionStoreRedis:
		client, err := NewConnectRedis(ctx, cfg.Storage.Redis, log)
		if err != nil {
			return err
		}
		rs := NewRedisSessionStore(client, redisSessionPrefix, log)
		s.Sessions = rs
		s.closers = append(s.closers, rs.Close)
	case config.SessionStoreMemory:
		ms := NewMemorySessionStore(log)
		s.Sessions = ms
		s.closers = append(s.closers, ms.Close)
	default:
		return fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}

	log.Info().Str("func", "*Storages.openSessions").Str("store", cfg.Session.Store).Msg("session store ready")
	return nil
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the session backend and the database pool in reverse
// opening order.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
