package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/jackc/pgerrcode"
)

func newTestDayRepo(t *testing.T) (*dayRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &dayRepository{DB: db, logger: logger.Nop()}, mock
}

var testDate = time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

// ── Exists ───────────────────────────────────────────────────────────────────

func TestDayExists(t *testing.T) {
	repo, mock := newTestDayRepo(t)

	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM days WHERE date = \$1 AND user_id = \$2 \)`).
		WithArgs(testDate, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 1, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected day to exist")
	}
}

func TestDayExists_TruncatesTime(t *testing.T) {
	repo, mock := newTestDayRepo(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(testDate, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := repo.Exists(context.Background(), 1, testDate.Add(15*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestDayCreate(t *testing.T) {
	repo, mock := newTestDayRepo(t)

	mock.ExpectExec(`INSERT INTO days \(user_id,date\) VALUES \(\$1,\$2\)`).
		WithArgs(int64(1), testDate).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), 1, testDate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDayCreate_Duplicate(t *testing.T) {
	repo, mock := newTestDayRepo(t)

	mock.ExpectExec("INSERT INTO days").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, daysUserDateKey))

	if err := repo.Create(context.Background(), 1, testDate); !errors.Is(err, ErrDayAlreadyExists) {
		t.Fatalf("expected ErrDayAlreadyExists, got %v", err)
	}
}

func TestDayCreate_ForeignKeyViolation(t *testing.T) {
	repo, mock := newTestDayRepo(t)

	mock.ExpectExec("INSERT INTO days").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.Create(context.Background(), 1, testDate)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if IsRetryable(err) {
		t.Error("constraint violations must not be retryable")
	}
}

// ── Remove ───────────────────────────────────────────────────────────────────

func TestDayRemove_Idempotent(t *testing.T) {
	repo, mock := newTestDayRepo(t)

	mock.ExpectExec(`DELETE FROM days WHERE date = \$1 AND user_id = \$2`).
		WithArgs(testDate, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Remove(context.Background(), 1, testDate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ── ListForUserInYear ────────────────────────────────────────────────────────

func TestListForUserInYear(t *testing.T) {
	repo, mock := newTestDayRepo(t)

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, user_id, date FROM days WHERE user_id = \$1 AND date >= \$2 AND date < \$3 ORDER BY date`).
		WithArgs(int64(1), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date"}).
			AddRow(1, 1, from).
			AddRow(2, 1, testDate))

	days, err := repo.ListForUserInYear(context.Background(), 1, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if !days[1].Date.Equal(testDate) {
		t.Errorf("expected %v, got %v", testDate, days[1].Date)
	}
}

func TestListForUserInYear_Empty(t *testing.T) {
	repo, mock := newTestDayRepo(t)

	mock.ExpectQuery("SELECT id, user_id, date FROM days").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date"}))

	days, err := repo.ListForUserInYear(context.Background(), 1, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days == nil || len(days) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", days)
	}
}

func TestListForUserInYear_QueryError(t *testing.T) {
	repo, mock := newTestDayRepo(t)

	mock.ExpectQuery("SELECT id, user_id, date FROM days").
		WillReturnError(pgError(pgerrcode.AdminShutdown))

	_, err := repo.ListForUserInYear(context.Background(), 1, 2024)
	if !IsRetryable(err) {
		t.Fatalf("expected retryable error, got %v", err)
	}
}
