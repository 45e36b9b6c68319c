package service

import (
	"github.com/dailydoit/dailydoit/internal/adapter"
	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/crypto"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/models"
)

// Services groups the services used by the HTTP handler.
type Services struct {
	AuthService          AuthService
	FederatedAuthService FederatedAuthService
	DayService           DayService
	CalendarService      CalendarService
	HealthService        HealthService
	Notifier             Notifier
}

// NewServices wires the services to storages and the outbound adapters.
// google may be nil, which disables federated sign-in.
func NewServices(
	storages *store.Storages,
	mailer adapter.MailSender,
	google adapter.OAuthProvider,
	reporter logger.Reporter,
	build models.AppBuildInfo,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	hasher := crypto.NewPasswordHasher()
	notifier := NewNotifier(mailer, reporter, cfg.App, logger)

	strategies := []AuthStrategy{NewLocalStrategy(storages.UserRepository, hasher, logger)}
	if google != nil {
		resolver := NewFederatedResolver(storages.FederatedCredentialRepository, storages.UserRepository, notifier, logger)
		strategies = append(strategies, NewGoogleStrategy(google, resolver, logger))
	}

	authService := NewAuthService(
		storages.UserRepository,
		storages.ActivationTokenRepository,
		hasher,
		crypto.NewActivationTokenGenerator(),
		notifier,
		reporter,
		cfg.App,
		logger,
		strategies...,
	)

	healthService, err := NewHealthService(build, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:          authService,
		FederatedAuthService: NewFederatedAuthService(google, authService, cfg.Auth, cfg.Session.Secret, logger),
		DayService:           NewDayService(storages.DayRepository, logger),
		CalendarService:      NewCalendarService(storages.DayRepository, storages.UserRepository, logger),
		HealthService:        healthService,
		Notifier:             notifier,
	}, nil
}
