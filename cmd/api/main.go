package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/timeledger/project-billing-api/config"
	"github.com/timeledger/project-billing-api/internal/bootstrap"
	"github.com/timeledger/project-billing-api/internal/logging"
	"github.com/timeledger/project-billing-api/internal/projects/events"
	"github.com/timeledger/project-billing-api/internal/projects/repository"
	"github.com/timeledger/project-billing-api/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}

	log := logging.New(cfg.App.LogLevel, cfg.App.LogFormat, os.Stdout)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing store is not fatal: data endpoints answer 500 until restart.
	var projects repository.Store
	store, err := bootstrap.OpenStore(ctx, &cfg.Database)
	if err != nil {
		log.WithError(err).WithField("driver", cfg.Database.Driver).Error("store connection failed, data endpoints will return 500")
	} else {
		projects = store.Projects
		defer store.Close()
		fields := logrus.Fields{"driver": cfg.Database.Driver}
		if store.DB != nil {
			fields["dsn"] = postgres.Redact(postgres.DSN(&cfg.Database))
		}
		log.WithFields(fields).Info("store connected")
	}

	publisher, closePublisher, err := bootstrap.OpenPublisher(ctx, &cfg.Redis)
	if err != nil {
		log.WithError(err).Warn("event bus unavailable, events disabled")
		publisher, closePublisher = events.NopPublisher{}, func() error { return nil }
	}
	defer closePublisher()

	deps := bootstrap.RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Logger:         log,
		Store:          projects,
		Publisher:      publisher,
	}
	if store != nil {
		deps.DB = store.DB
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           bootstrap.BuildRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
