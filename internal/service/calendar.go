package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/models"
)

const (
	minCalendarYear = 1970
	maxCalendarYear = 9998
)

type calendarService struct {
	days  store.DayRepository
	users store.UserRepository
	now   func() time.Time

	logger *logger.Logger
}

// NewCalendarService constructs the CalendarService.
func NewCalendarService(days store.DayRepository, users store.UserRepository, logger *logger.Logger) CalendarService {
	return &calendarService{
		days:   days,
		users:  users,
		now:    time.Now,
		logger: logger,
	}
}

// Calendar returns every day of year grouped by month, with completed days
// and today marked. Year navigation is shown when the neighbouring years
// hold completed days.
func (c *calendarService) Calendar(ctx context.Context, userID int64, year int) (models.Calendar, error) {
	log := logger.FromContext(ctx)

	if year < minCalendarYear || year > maxCalendarYear {
		return models.Calendar{}, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	active, err := c.users.IsActive(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*calendarService.Calendar").Msg("user activity check failed")
		return models.Calendar{}, fmt.Errorf("user activity check failed: %w", err)
	}

	var years [3][]models.Day
	for i, y := range []int{year - 1, year, year + 1} {
		years[i], err = c.days.ListForUserInYear(ctx, userID, y)
		if err != nil {
			log.Err(err).Str("func", "*calendarService.Calendar").Int("year", y).Msg("listing days failed")
			return models.Calendar{}, fmt.Errorf("listing days failed: %w", err)
		}
	}
	prev, current, next := years[0], years[1], years[2]

	complete := make(map[string]bool, len(current))
	for _, d := range current {
		complete[d.Date.Format(models.DateLayout)] = true
	}

	today := c.now().Format(models.DateLayout)

	return models.Calendar{
		Year:           year,
		Months:         buildMonths(year, complete, today),
		UserNotActive:  !active,
		NoDaysComplete: len(current) == 0,
		PrevYear:       year - 1,
		NextYear:       year + 1,
		ShowYearNav:    len(prev) > 0 || len(next) > 0,
		HasPrevYear:    len(prev) > 0,
		HasNextYear:    len(next) > 0,
		TodayISO:       today,
	}, nil
}

func buildMonths(year int, complete map[string]bool, today string) []models.CalendarMonth {
	months := make([]models.CalendarMonth, 0, 12)

	for m := time.January; m <= time.December; m++ {
		first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		n := first.AddDate(0, 1, -1).Day()

		days := make([]models.CalendarDay, n)
		for i := range days {
			date := first.AddDate(0, 0, i).Format(models.DateLayout)
			days[i] = models.CalendarDay{
				Day:        i + 1,
				Date:       date,
				IsComplete: complete[date],
				IsToday:    date == today,
			}
		}

		months = append(months, models.CalendarMonth{Name: m.String()[:3], Days: days})
	}

	return months
}
