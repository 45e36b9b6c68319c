package service

import (
	"context"
	"time"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
)

const healthPingTimeout = 2 * time.Second

type healthService struct {
	build  models.AppBuildInfo
	pinger Pinger

	logger *logger.Logger
}

// NewHealthService constructs the HealthService. The build version is
// required.
func NewHealthService(build models.AppBuildInfo, pinger Pinger, logger *logger.Logger) (HealthService, error) {
	if build.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &healthService{
		build:  build,
		pinger: pinger,
		logger: logger,
	}, nil
}

// Health reports the build and whether the database answers a ping.
func (h *healthService) Health(ctx context.Context) models.Health {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	health := models.Health{
		Status:   models.HealthOK,
		Database: models.HealthOK,
		Version:  h.build.BuildVersion(),
		Commit:   h.build.BuildCommit(),
	}

	if err := h.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Health").Msg("database ping failed")
		health.Status = models.HealthDegraded
		health.Database = "unreachable"
	}

	return health
}
