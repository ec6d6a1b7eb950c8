package db

import (
	"context"
	"fmt"
	"time"

	"careconnect/pkg/types"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo returns a handle on the configured database. The driver
// dials lazily, so an unreachable deployment only shows up on first use.
func ConnectMongo(ctx context.Context, config *types.Config) (*mongo.Database, error) {

	clientOpts := options.Client().
		ApplyURI(config.MongoURI).
		SetAppName("careconnect").
		SetMaxConnIdleTime(15 * time.Minute)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	return client.Database(config.MongoDatabase), nil
}
