package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActivationTokenRepo(t *testing.T) (*activationTokenRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &activationTokenRepository{DB: db, logger: logger.Nop()}, mock
}

const testActivationToken = "0123456789abcdef0123456789abcdef"

func TestActivationTokenCreate(t *testing.T) {
	repo, mock := newTestActivationTokenRepo(t)
	expires := time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO activation_tokens`).
		WithArgs(int64(3), testActivationToken, expires).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	created, err := repo.Create(context.Background(), models.ActivationToken{
		UserID:  3,
		Token:   testActivationToken,
		Expires: expires,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, int64(3), created.UserID)
	assert.Equal(t, testActivationToken, created.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivationTokenCreate_Error(t *testing.T) {
	repo, mock := newTestActivationTokenRepo(t)

	mock.ExpectQuery(`INSERT INTO activation_tokens`).
		WillReturnError(pgConstraintError(pgerrcode.ForeignKeyViolation, "activation_tokens_user_id_fkey"))

	_, err := repo.Create(context.Background(), models.ActivationToken{UserID: 3, Token: testActivationToken})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestActivationTokenGet(t *testing.T) {
	repo, mock := newTestActivationTokenRepo(t)
	expires := time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, user_id, token, expires FROM activation_tokens WHERE token = \$1`).
		WithArgs(testActivationToken).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "expires"}).
			AddRow(int64(9), int64(3), testActivationToken, expires))

	found, err := repo.Get(context.Background(), testActivationToken)
	require.NoError(t, err)
	assert.Equal(t, models.ActivationToken{ID: 9, UserID: 3, Token: testActivationToken, Expires: expires}, found)
}

func TestActivationTokenGet_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"not found", sql.ErrNoRows, ErrActivationTokenNotFound},
		{"driver failure", errors.New("conn reset"), ErrScanningRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestActivationTokenRepo(t)

			mock.ExpectQuery(`FROM activation_tokens`).
				WithArgs(testActivationToken).
				WillReturnError(tt.err)

			_, err := repo.Get(context.Background(), testActivationToken)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestActivationTokenRemove_Idempotent(t *testing.T) {
	repo, mock := newTestActivationTokenRepo(t)

	mock.ExpectExec(`DELETE FROM activation_tokens WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Remove(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivationTokenRemove_Error(t *testing.T) {
	repo, mock := newTestActivationTokenRepo(t)

	mock.ExpectExec(`DELETE FROM activation_tokens`).
		WillReturnError(errors.New("conn reset"))

	assert.ErrorIs(t, repo.Remove(context.Background(), 9), ErrExecutingQuery)
}
