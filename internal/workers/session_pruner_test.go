package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/metrics"
	"github.com/dailydoit/dailydoit/internal/mock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pruneNow = time.Date(2026, time.May, 9, 12, 0, 0, 0, time.UTC)

func newTestPruner(t *testing.T, interval time.Duration) (*SessionPruner, *mock.MockSessionPruner) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mock.NewMockSessionPruner(ctrl)

	p := NewSessionPruner(m, interval, logger.Nop())
	require.NotNil(t, p)
	p.now = func() time.Time { return pruneNow }
	return p, m
}

func TestNewSessionPruner_NilStore(t *testing.T) {
	assert.Nil(t, NewSessionPruner(nil, time.Minute, logger.Nop()))
}

func TestNewSessionPruner_DefaultInterval(t *testing.T) {
	p, _ := newTestPruner(t, 0)

	assert.Equal(t, defaultPruneInterval, p.interval)
}

func TestSessionPruner_PrunesOnStartAndRecordsMetric(t *testing.T) {
	p, m := newTestPruner(t, time.Hour)

	before := testutil.ToFloat64(metrics.SessionsPrunedTotal)

	pruned := make(chan struct{})
	m.EXPECT().Prune(gomock.Any(), pruneNow).DoAndReturn(func(context.Context, time.Time) (int64, error) {
		close(pruned)
		return 3, nil
	})

	p.Run()
	select {
	case <-pruned:
	case <-time.After(5 * time.Second):
		t.Fatal("prune was not called")
	}
	p.Stop()

	assert.Equal(t, before+3, testutil.ToFloat64(metrics.SessionsPrunedTotal))
}

func TestSessionPruner_PrunesOnEveryTick(t *testing.T) {
	p, m := newTestPruner(t, 5*time.Millisecond)

	var calls atomic.Int32
	reached := make(chan struct{})
	m.EXPECT().Prune(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, time.Time) (int64, error) {
		if calls.Add(1) == 3 {
			close(reached)
		}
		return 0, nil
	}).MinTimes(3)

	p.Run()
	select {
	case <-reached:
	case <-time.After(5 * time.Second):
		t.Fatal("pruner did not tick")
	}
	p.Stop()
}

func TestSessionPruner_ErrorKeepsRunning(t *testing.T) {
	p, m := newTestPruner(t, 5*time.Millisecond)

	reached := make(chan struct{})
	gomock.InOrder(
		m.EXPECT().Prune(gomock.Any(), gomock.Any()).Return(int64(0), assert.AnError),
		m.EXPECT().Prune(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, time.Time) (int64, error) {
			close(reached)
			return 1, nil
		}),
		m.EXPECT().Prune(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes(),
	)

	p.Run()
	select {
	case <-reached:
	case <-time.After(5 * time.Second):
		t.Fatal("pruner stopped after an error")
	}
	p.Stop()
}

func TestSessionPruner_StopCancelsPrune(t *testing.T) {
	p, m := newTestPruner(t, time.Hour)

	started := make(chan struct{})
	m.EXPECT().Prune(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ time.Time) (int64, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})

	p.Run()
	<-started

	stopped := make(chan struct{})
	go func() {
		p.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not cancel the running prune")
	}

	// Stop is idempotent
	p.Stop()
}
