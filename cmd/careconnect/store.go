package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"careconnect/internal/db"
	"careconnect/internal/server"
	"careconnect/internal/service"
	"careconnect/internal/store"
	"careconnect/internal/store/memstore"
	"careconnect/internal/store/mongostore"
	"careconnect/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// backend is the set of repositories selected by STORE_DRIVER.
type backend struct {
	support      service.SupportRepository
	appointments service.AppointmentRepository
	pinger       server.Pinger
	close        func()

	pool  *pgxpool.Pool
	mongo *mongostore.Store
}

// openBackend connects the configured store. A mongo deployment that does
// not answer the first ping is logged and kept: requests fail until it comes
// back and health reports it as disconnected.
func openBackend(ctx context.Context, config *types.Config, logger *logrus.Logger) (*backend, error) {
	switch config.StoreDriver {
	case types.StoreDriverMemory:
		st := memstore.New()
		return &backend{support: st, appointments: st, pinger: st, close: func() {}}, nil

	case types.StoreDriverPostgres:
		pool, err := db.Connect(ctx, config)
		if err != nil {
			return nil, err
		}

		return &backend{
			support:      store.NewSupportRepository(pool),
			appointments: store.NewAppointmentRepository(pool),
			pinger:       pool,
			close:        pool.Close,
			pool:         pool,
		}, nil

	case types.StoreDriverMongo:
		database, err := db.ConnectMongo(ctx, config)
		if err != nil {
			return nil, err
		}

		st := mongostore.New(database)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := st.Ping(pingCtx); err != nil {
			logger.WithError(err).WithField("uri", redactURI(config.MongoURI)).Warn("mongo is unreachable, serving without a database")
		}

		return &backend{
			support:      st,
			appointments: st,
			pinger:       st,
			close:        func() { _ = st.Disconnect(context.Background()) },
			mongo:        st,
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", config.StoreDriver)
}

// redactURI drops credentials from a connection string before logging it.
func redactURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "invalid uri"
	}
	return u.Redacted()
}
