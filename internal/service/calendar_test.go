package service

import (
	"context"
	"testing"
	"time"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/mock"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type calendarFixture struct {
	days  *mock.MockDayRepository
	users *mock.MockUserRepository
	svc   *calendarService
}

func newCalendarFixture(t *testing.T) *calendarFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &calendarFixture{
		days:  mock.NewMockDayRepository(ctrl),
		users: mock.NewMockUserRepository(ctrl),
	}
	f.svc = NewCalendarService(f.days, f.users, logger.Nop()).(*calendarService)
	f.svc.now = func() time.Time { return testNow }
	return f
}

func (f *calendarFixture) expectYears(ctx context.Context, userID int64, prev, current, next []models.Day) {
	f.days.EXPECT().ListForUserInYear(ctx, userID, 2025).Return(prev, nil)
	f.days.EXPECT().ListForUserInYear(ctx, userID, 2026).Return(current, nil)
	f.days.EXPECT().ListForUserInYear(ctx, userID, 2027).Return(next, nil)
}

func dayOn(y int, m time.Month, d int) models.Day {
	return models.Day{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestCalendar(t *testing.T) {
	f := newCalendarFixture(t)
	ctx := context.Background()

	f.users.EXPECT().IsActive(ctx, int64(5)).Return(true, nil)
	f.expectYears(ctx, 5,
		[]models.Day{dayOn(2025, time.December, 31)},
		[]models.Day{dayOn(2026, time.January, 1), dayOn(2026, time.May, 9)},
		nil,
	)

	cal, err := f.svc.Calendar(ctx, 5, 2026)
	require.NoError(t, err)

	assert.Equal(t, 2026, cal.Year)
	require.Len(t, cal.Months, 12)
	assert.Equal(t, "Jan", cal.Months[0].Name)
	assert.Equal(t, "Dec", cal.Months[11].Name)
	assert.Len(t, cal.Months[1].Days, 28)
	assert.Len(t, cal.Months[11].Days, 31)

	assert.True(t, cal.Months[0].Days[0].IsComplete)
	assert.Equal(t, "2026-01-01", cal.Months[0].Days[0].Date)

	may := cal.Months[4]
	assert.True(t, may.Days[8].IsComplete)
	assert.False(t, may.Days[8].IsToday)
	assert.True(t, may.Days[9].IsToday)
	assert.False(t, may.Days[9].IsComplete)

	assert.False(t, cal.UserNotActive)
	assert.False(t, cal.NoDaysComplete)
	assert.True(t, cal.ShowYearNav)
	assert.True(t, cal.HasPrevYear)
	assert.False(t, cal.HasNextYear)
	assert.Equal(t, 2025, cal.PrevYear)
	assert.Equal(t, 2027, cal.NextYear)
	assert.Equal(t, "2026-05-10", cal.TodayISO)
}

func TestCalendar_EmptyYearOfInactiveUser(t *testing.T) {
	f := newCalendarFixture(t)
	ctx := context.Background()

	f.users.EXPECT().IsActive(ctx, int64(5)).Return(false, nil)
	f.expectYears(ctx, 5, nil, nil, nil)

	cal, err := f.svc.Calendar(ctx, 5, 2026)
	require.NoError(t, err)

	assert.True(t, cal.UserNotActive)
	assert.True(t, cal.NoDaysComplete)
	assert.False(t, cal.ShowYearNav)
}

func TestCalendar_LeapYear(t *testing.T) {
	f := newCalendarFixture(t)
	ctx := context.Background()

	f.users.EXPECT().IsActive(ctx, int64(5)).Return(true, nil)
	f.days.EXPECT().ListForUserInYear(ctx, int64(5), gomock.Any()).Return(nil, nil).Times(3)

	cal, err := f.svc.Calendar(ctx, 5, 2028)
	require.NoError(t, err)

	assert.Len(t, cal.Months[1].Days, 29)
	assert.Equal(t, "2028-02-29", cal.Months[1].Days[28].Date)
}

func TestCalendar_YearOutOfRange(t *testing.T) {
	for _, year := range []int{0, 1969, 9999} {
		f := newCalendarFixture(t)

		_, err := f.svc.Calendar(context.Background(), 5, year)

		assert.ErrorIs(t, err, ErrInvalidYear)
	}
}

func TestCalendar_StorageFailure(t *testing.T) {
	f := newCalendarFixture(t)
	ctx := context.Background()

	f.users.EXPECT().IsActive(ctx, int64(5)).Return(true, nil)
	f.days.EXPECT().ListForUserInYear(ctx, int64(5), 2025).Return(nil, store.ErrExecutingQuery)

	_, err := f.svc.Calendar(ctx, 5, 2026)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
