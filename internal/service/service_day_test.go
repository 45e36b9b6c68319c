package service

import (
	"context"
	"testing"
	"time"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/mock"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDayService(t *testing.T) (*dayService, *mock.MockDayRepository) {
	t.Helper()
	days := mock.NewMockDayRepository(gomock.NewController(t))

	svc := NewDayService(days, logger.Nop()).(*dayService)
	svc.now = func() time.Time { return testNow }
	return svc, days
}

var may9 = time.Date(2026, time.May, 9, 0, 0, 0, 0, time.UTC)

func TestDaySubmit(t *testing.T) {
	svc, days := newTestDayService(t)
	ctx := context.Background()

	days.EXPECT().Exists(ctx, int64(7), may9).Return(false, nil)
	days.EXPECT().Create(ctx, int64(7), may9).Return(nil)

	require.NoError(t, svc.Submit(ctx, 7, "2026-05-09"))
}

func TestDaySubmit_Today(t *testing.T) {
	svc, days := newTestDayService(t)
	ctx := context.Background()
	today := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	days.EXPECT().Exists(ctx, int64(7), today).Return(false, nil)
	days.EXPECT().Create(ctx, int64(7), today).Return(nil)

	require.NoError(t, svc.Submit(ctx, 7, "2026-05-10"))
}

func TestDaySubmit_AlreadyComplete(t *testing.T) {
	svc, days := newTestDayService(t)
	ctx := context.Background()

	days.EXPECT().Exists(ctx, int64(7), may9).Return(true, nil)

	assert.ErrorIs(t, svc.Submit(ctx, 7, "2026-05-09"), store.ErrDayAlreadyExists)
}

func TestDaySubmit_ConcurrentInsert(t *testing.T) {
	svc, days := newTestDayService(t)
	ctx := context.Background()

	days.EXPECT().Exists(ctx, int64(7), may9).Return(false, nil)
	days.EXPECT().Create(ctx, int64(7), may9).Return(store.ErrDayAlreadyExists)

	assert.ErrorIs(t, svc.Submit(ctx, 7, "2026-05-09"), store.ErrDayAlreadyExists)
}

func TestDaySubmit_InvalidDates(t *testing.T) {
	tests := []struct {
		name string
		date string
		msg  string
	}{
		{"future", "2026-05-11", validators.MsgDateInFuture},
		{"malformed", "09/05/2026", validators.MsgInvalidDate},
		{"impossible", "2026-02-30", validators.MsgInvalidDate},
		{"empty", "", validators.MsgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestDayService(t)

			err := svc.Submit(context.Background(), 7, tt.date)

			vErr, ok := validators.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.msg, vErr.Field(validators.FieldDate))
		})
	}
}

func TestDaySubmit_StorageFailure(t *testing.T) {
	svc, days := newTestDayService(t)
	ctx := context.Background()

	days.EXPECT().Exists(ctx, int64(7), may9).Return(false, store.ErrExecutingQuery)

	assert.ErrorIs(t, svc.Submit(ctx, 7, "2026-05-09"), store.ErrExecutingQuery)
}

func TestDayRemove(t *testing.T) {
	svc, days := newTestDayService(t)
	ctx := context.Background()
	future := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)

	days.EXPECT().Remove(ctx, int64(7), future).Return(nil)

	require.NoError(t, svc.Remove(ctx, 7, "2027-01-01"))
}

func TestDayRemove_InvalidDate(t *testing.T) {
	svc, _ := newTestDayService(t)

	_, ok := validators.AsValidationError(svc.Remove(context.Background(), 7, "yesterday"))

	assert.True(t, ok)
}
