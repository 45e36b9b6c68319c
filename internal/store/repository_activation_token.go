package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
)

type activationTokenRepository struct {
	*DB
	logger *logger.Logger
}

// NewActivationTokenRepository constructs an [ActivationTokenRepository]
// backed by the "activation_tokens" table.
func NewActivationTokenRepository(db *DB, logger *logger.Logger) ActivationTokenRepository {
	logger.Debug().Msg("creating activation token repository")
	return &activationTokenRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *activationTokenRepository) Create(ctx context.Context, token models.ActivationToken) (models.ActivationToken, error) {
	log := logger.FromContext(ctx)

	created := token
	err := r.DB.QueryRowContext(ctx, createActivationToken, token.UserID, token.Token, token.Expires).Scan(&created.ID)
	if err != nil {
		log.Err(err).Str("func", "*activationTokenRepository.Create").Int64("user_id", token.UserID).Msg("failed to insert activation token")
		return models.ActivationToken{}, r.wrap(ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *activationTokenRepository) Get(ctx context.Context, token string) (models.ActivationToken, error) {
	log := logger.FromContext(ctx)

	var found models.ActivationToken
	err := r.DB.QueryRowContext(ctx, getActivationToken, token).
		Scan(&found.ID, &found.UserID, &found.Token, &found.Expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ActivationToken{}, ErrActivationTokenNotFound
		}
		log.Err(err).Str("func", "*activationTokenRepository.Get").Msg("failed to read activation token")
		return models.ActivationToken{}, r.wrap(ErrScanningRow, err)
	}

	return found, nil
}

func (r *activationTokenRepository) Remove(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, removeActivationToken, id); err != nil {
		log.Err(err).Str("func", "*activationTokenRepository.Remove").Int64("token_id", id).Msg("failed to remove activation token")
		return r.wrap(ErrExecutingQuery, err)
	}

	return nil
}
