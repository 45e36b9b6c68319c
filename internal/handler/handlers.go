// Package handler aggregates the transport handlers of the server.
package handler

import (
	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/handler/http"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/service"
	"github.com/dailydoit/dailydoit/internal/session"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.Services,
	sessions *session.Manager,
	gatherer prometheus.Gatherer,
	reporter logger.Reporter,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, sessions, gatherer, reporter, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// Close releases the background resources of every handler.
func (h *Handlers) Close() {
	if h.HTTP != nil {
		h.HTTP.Close()
	}
}
