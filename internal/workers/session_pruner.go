// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/metrics"
	"github.com/dailydoit/dailydoit/internal/store"
)

const defaultPruneInterval = 15 * time.Minute

// SessionPruner periodically deletes expired sessions from stores that have
// no native expiry.
type SessionPruner struct {
	pruner   store.SessionPruner
	interval time.Duration
	now      func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}

	logger *logger.Logger
}

// NewSessionPruner returns nil when pruner is nil, so the worker can be
// registered unconditionally. A non-positive interval falls back to 15
// minutes.
func NewSessionPruner(pruner store.SessionPruner, interval time.Duration, logger *logger.Logger) *SessionPruner {
	if pruner == nil {
		return nil
	}
	if interval <= 0 {
		interval = defaultPruneInterval
	}

	return &SessionPruner{
		pruner:   pruner,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Run prunes once and then on every tick until Stop. A nil pruner does
// nothing.
func (p *SessionPruner) Run() {
	if p == nil {
		return
	}
	p.logger.Info().Dur("interval", p.interval).Msg("starting session pruner")
	go p.loop()
}

// Stop signals the loop to exit and waits for it. A prune in progress is
// cancelled.
func (p *SessionPruner) Stop() {
	if p == nil {
		return
	}
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
	p.logger.Info().Msg("session pruner stopped")
}

func (p *SessionPruner) loop() {
	defer close(p.done)

	ctx, cancel := context.WithCancel(p.logger.WithContext(context.Background()))
	defer cancel()
	go func() {
		select {
		case <-p.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.prune(ctx)

		select {
		case <-p.stop:
			return
		case <-ticker.C:
		}
	}
}

func (p *SessionPruner) prune(ctx context.Context) {
	deleted, err := p.pruner.Prune(ctx, p.now())
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).Str("func", "*SessionPruner.prune").Msg("error pruning expired sessions")
		}
		return
	}

	metrics.SessionsPrunedTotal.Add(float64(deleted))
	if deleted > 0 {
		p.logger.Debug().Int64("deleted", deleted).Msg("expired sessions pruned")
	}
}
