package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dailydoit/dailydoit/internal/adapter"
	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/handler"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/metrics"
	"github.com/dailydoit/dailydoit/internal/server"
	"github.com/dailydoit/dailydoit/internal/service"
	"github.com/dailydoit/dailydoit/internal/session"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/internal/workers"
	"github.com/dailydoit/dailydoit/models"
	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const sentryFlushTimeout = 2 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dailydoit-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.ForDeployment(cfg.IsDev())

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.InitCustomMetrics(registry, log)

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	mailer, err := adapter.NewMailSender(cfg.Mail, cfg.IsDev(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail sender")
	}

	var google adapter.OAuthProvider
	if cfg.Auth.GoogleEnabled() {
		google = adapter.NewGoogleProvider(ctx, cfg.Auth, cfg.App.BaseURL, cfg.Server.RequestTimeout, log)
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var reporter logger.Reporter = logger.NewReporter()
	if cfg.App.SentryDSN != "" && !cfg.IsDev() {
		sentryReporter, err := logger.NewSentryReporter(sentry.ClientOptions{
			Dsn:              cfg.App.SentryDSN,
			Environment:      cfg.App.Deployment,
			Release:          build.BuildVersion(),
			AttachStacktrace: true,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("error creating sentry reporter")
		}
		defer sentryReporter.Flush(sentryFlushTimeout)
		reporter = sentryReporter
	}

	services, err := service.NewServices(storages, mailer, google, reporter, build, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	sessions := session.NewManager(storages.Sessions, cfg.Session, !cfg.IsDev(), log)

	handlers, err := handler.NewHandlers(services, sessions, registry, reporter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}
	defer handlers.Close()

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewSessionPruner(storages.SessionPruner, cfg.Session.PruneInterval, log),
	)
	background.Run()

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	background.Stop()

	// pending emails outlive the requests that queued them
	services.Notifier.Wait()
	log.Info().Msg("shutdown complete")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
