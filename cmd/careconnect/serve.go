package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careconnect/internal/server"
	"careconnect/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := loadConfig(cCtx.String("env-prefix"))
	if err != nil {
		return err
	}

	logger, err := newLogger(config)
	if err != nil {
		return err
	}

	backend, err := openBackend(ctx, config, logger)
	if err != nil {
		return err
	}
	defer backend.close()

	if backend.mongo != nil {
		indexCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := backend.mongo.EnsureIndexes(indexCtx); err != nil {
			logger.WithError(err).Warn("failed to ensure mongo indexes")
		}
		cancel()
	}

	logger.WithFields(logrus.Fields{
		"driver":      config.StoreDriver,
		"environment": config.Environment,
	}).Info("store connected")

	srv, err := server.New(
		config,
		logger,
		service.NewSupportService(backend.support),
		service.NewAppointmentService(backend.appointments),
		backend.pinger,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
