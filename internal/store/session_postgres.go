package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
)

// PostgresSessionStore keeps sessions in the "sessions" table with the payload
// as JSONB. Expired rows are invisible to Get and are deleted by Prune.
type PostgresSessionStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPostgresSessionStore constructs the PostgreSQL session backend.
func NewPostgresSessionStore(db *DB, logger *logger.Logger) *PostgresSessionStore {
	logger.Debug().Msg("creating postgres session store")
	return &PostgresSessionStore{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *PostgresSessionStore) Get(ctx context.Context, id string) (models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("sess", "expire").
		From("sessions").
		Where(squirrel.Eq{"sid": id}).
		Where(squirrel.Gt{"expire": r.now()}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Get").Msg("error building query")
		return models.SessionRecord{}, ErrBuildingSQLQuery
	}

	var (
		payload []byte
		expires time.Time
	)
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&payload, &expires); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SessionRecord{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*PostgresSessionStore.Get").Msg("failed to read session")
		return models.SessionRecord{}, r.wrap(ErrScanningRow, err)
	}

	record := models.SessionRecord{ID: id, Expires: expires}
	if err = json.Unmarshal(payload, &record.Data); err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Get").Msg("failed to decode session")
		return models.SessionRecord{}, errors.Join(ErrEncodingSession, err)
	}

	return record, nil
}

// Set inserts or replaces the session row.
func (r *PostgresSessionStore) Set(ctx context.Context, record models.SessionRecord) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(record.Data)
	if err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Set").Msg("failed to encode session")
		return errors.Join(ErrEncodingSession, err)
	}

	query, args, err := psql.Insert("sessions").
		Columns("sid", "sess", "expire").
		Values(record.ID, payload, record.Expires).
		Suffix("ON CONFLICT (sid) DO UPDATE SET sess = EXCLUDED.sess, expire = EXCLUDED.expire").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Set").Msg("error building query")
		return ErrBuildingSQLQuery
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Set").Msg("failed to save session")
		return r.wrap(ErrExecutingQuery, err)
	}

	return nil
}

// Touch extends the expiry of a live session.
func (r *PostgresSessionStore) Touch(ctx context.Context, id string, expires time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("sessions").
		Set("expire", expires).
		Where(squirrel.Eq{"sid": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Touch").Msg("error building query")
		return ErrBuildingSQLQuery
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Touch").Msg("failed to touch session")
		return r.wrap(ErrExecutingQuery, err)
	}

	return nil
}

func (r *PostgresSessionStore) Destroy(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("sessions").Where(squirrel.Eq{"sid": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Destroy").Msg("error building query")
		return ErrBuildingSQLQuery
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Destroy").Msg("failed to destroy session")
		return r.wrap(ErrExecutingQuery, err)
	}

	return nil
}

// Prune deletes every session that expired before now and reports how many
// rows were removed.
func (r *PostgresSessionStore) Prune(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("sessions").Where(squirrel.Lt{"expire": now}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Prune").Msg("error building query")
		return 0, ErrBuildingSQLQuery
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*PostgresSessionStore.Prune").Msg("failed to prune sessions")
		return 0, r.wrap(ErrExecutingQuery, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, r.wrap(ErrExecutingQuery, err)
	}

	return removed, nil
}
