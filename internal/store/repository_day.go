package store

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
	"github.com/jackc/pgerrcode"
)

// dayRepository stores completed days in the "days" table. Dates are stored
// as SQL DATE values and always travel as UTC midnights.
type dayRepository struct {
	*DB
	logger *logger.Logger
}

// NewDayRepository constructs a [DayRepository].
func NewDayRepository(db *DB, logger *logger.Logger) DayRepository {
	logger.Debug().Msg("creating day repository")
	return &dayRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *dayRepository) Exists(ctx context.Context, userID int64, date time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("days").
		Where(squirrel.Eq{"user_id": userID, "date": dateOnly(date)}).
		Suffix(")").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*dayRepository.Exists").Msg("error building query")
		return false, ErrBuildingSQLQuery
	}

	var exists bool
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*dayRepository.Exists").Int64("user_id", userID).Msg("failed to check day")
		return false, r.wrap(ErrExecutingQuery, err)
	}

	return exists, nil
}

func (r *dayRepository) Create(ctx context.Context, userID int64, date time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("days").
		Columns("user_id", "date").
		Values(userID, dateOnly(date)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*dayRepository.Create").Msg("error building query")
		return ErrBuildingSQLQuery
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation && constraintName(err) == daysUserDateKey {
			return ErrDayAlreadyExists
		}
		log.Err(err).Str("func", "*dayRepository.Create").Int64("user_id", userID).Msg("failed to insert day")
		return r.wrap(ErrExecutingQuery, err)
	}

	return nil
}

// Remove deletes the day if present. Removing a day that was never
// completed is not an error.
func (r *dayRepository) Remove(ctx context.Context, userID int64, date time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("days").
		Where(squirrel.Eq{"user_id": userID, "date": dateOnly(date)}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*dayRepository.Remove").Msg("error building query")
		return ErrBuildingSQLQuery
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*dayRepository.Remove").Int64("user_id", userID).Msg("failed to delete day")
		return r.wrap(ErrExecutingQuery, err)
	}

	return nil
}

// ListForUserInYear returns the user's completed days in [Jan 1 year,
// Jan 1 year+1) ordered by date.
func (r *dayRepository) ListForUserInYear(ctx context.Context, userID int64, year int) ([]models.Day, error) {
	log := logger.FromContext(ctx)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	query, args, err := psql.Select("id", "user_id", "date").
		From("days").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.Lt{"date": to}).
		OrderBy("date").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*dayRepository.ListForUserInYear").Msg("error building query")
		return nil, ErrBuildingSQLQuery
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*dayRepository.ListForUserInYear").Int64("user_id", userID).Msg("failed to list days")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	days := make([]models.Day, 0)
	for rows.Next() {
		var day models.Day
		if err = rows.Scan(&day.ID, &day.UserID, &day.Date); err != nil {
			log.Err(err).Str("func", "*dayRepository.ListForUserInYear").Msg("failed to scan day")
			return nil, r.wrap(ErrScanningRows, err)
		}
		day.Date = dateOnly(day.Date)
		days = append(days, day)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*dayRepository.ListForUserInYear").Msg("error iterating days")
		return nil, r.wrap(ErrScanningRows, err)
	}

	return days, nil
}

// dateOnly truncates t to its calendar date at UTC midnight.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
