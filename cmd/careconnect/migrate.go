package main

import (
	"context"
	"fmt"

	"careconnect/internal/store"
	"careconnect/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create the tables (postgres) or indexes (mongo) the store needs",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c.String("env-prefix"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		backend, err := openBackend(ctx, cfg, logrus.StandardLogger())
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer backend.close()

		switch cfg.StoreDriver {
		case types.StoreDriverPostgres:
			applied, err := store.Migrate(ctx, backend.pool)
			if err != nil {
				return err
			}
			for _, name := range applied {
				logrus.WithField("migration", name).Info("applied")
			}
		case types.StoreDriverMongo:
			if err := backend.mongo.EnsureIndexes(ctx); err != nil {
				return err
			}
			logrus.Info("indexes ensured")
		default:
			logrus.WithField("driver", cfg.StoreDriver).Info("nothing to migrate")
		}

		return nil
	},
}
