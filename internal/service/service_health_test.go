package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHealthService_RequiresVersion(t *testing.T) {
	_, err := NewHealthService(models.AppBuildInfo{}, fakePinger{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestHealth(t *testing.T) {
	build := models.NewAppBuildInfo("1.2.0", "2026-05-01", "abc123")

	tests := []struct {
		name   string
		pinger fakePinger
		want   models.Health
	}{
		{
			name:   "database reachable",
			pinger: fakePinger{},
			want:   models.Health{Status: models.HealthOK, Database: models.HealthOK, Version: "1.2.0", Commit: "abc123"},
		},
		{
			name:   "database down",
			pinger: fakePinger{err: errors.New("connection refused")},
			want:   models.Health{Status: models.HealthDegraded, Database: "unreachable", Version: "1.2.0", Commit: "abc123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewHealthService(build, tt.pinger, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.want, svc.Health(context.Background()))
		})
	}
}
