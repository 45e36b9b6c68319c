package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/metrics"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/internal/validators"
)

type dayService struct {
	days store.DayRepository
	now  func() time.Time

	logger *logger.Logger
}

// NewDayService constructs the DayService backed by days.
func NewDayService(days store.DayRepository, logger *logger.Logger) DayService {
	return &dayService{
		days:   days,
		now:    time.Now,
		logger: logger,
	}
}

// Submit marks date as completed for the user.
func (d *dayService) Submit(ctx context.Context, userID int64, date string) error {
	log := logger.FromContext(ctx)

	day, err := validators.ParsePastDay(date, d.now())
	if err != nil {
		return err
	}

	exists, err := d.days.Exists(ctx, userID, day)
	if err != nil {
		log.Err(err).Str("func", "*dayService.Submit").Msg("day existence check failed")
		return fmt.Errorf("day existence check failed: %w", err)
	}
	if exists {
		return store.ErrDayAlreadyExists
	}

	if err = d.days.Create(ctx, userID, day); err != nil {
		if errors.Is(err, store.ErrDayAlreadyExists) {
			return store.ErrDayAlreadyExists
		}
		log.Err(err).Str("func", "*dayService.Submit").Msg("day creation failed")
		return fmt.Errorf("day creation failed: %w", err)
	}

	metrics.DaysChangedTotal.WithLabelValues("submit").Inc()
	return nil
}

// Remove unmarks date. Removing a day that was never completed succeeds.
func (d *dayService) Remove(ctx context.Context, userID int64, date string) error {
	day, err := validators.ParseDay(date)
	if err != nil {
		return err
	}

	if err = d.days.Remove(ctx, userID, day); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dayService.Remove").Msg("day removal failed")
		return fmt.Errorf("day removal failed: %w", err)
	}

	metrics.DaysChangedTotal.WithLabelValues("remove").Inc()
	return nil
}
