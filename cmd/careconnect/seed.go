package main

import (
	"context"
	"fmt"
	"time"

	"careconnect/internal/seed"
	"careconnect/internal/service"
	"careconnect/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Insert demo support requests and appointments",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c.String("env-prefix"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.StoreDriver == types.StoreDriverMemory {
			logrus.Warn("seeding the memory store has no lasting effect")
		}

		ctx := context.Background()

		backend, err := openBackend(ctx, cfg, logrus.StandardLogger())
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer backend.close()

		logrus.WithField("driver", cfg.StoreDriver).Info("Connected to store")

		reqs, err := seed.SeedSupportRequests(ctx, service.NewSupportService(backend.support))
		if err != nil {
			return err
		}
		logrus.WithField("count", len(reqs)).Info("Support requests seeded")

		appts, err := seed.SeedAppointments(ctx, service.NewAppointmentService(backend.appointments), time.Now())
		if err != nil {
			return err
		}
		logrus.WithField("count", len(appts)).Info("Appointments seeded")

		return nil
	},
}
