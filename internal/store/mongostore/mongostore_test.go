package mongostore

import (
	"context"
	"os"
	"testing"
	"time"

	"careconnect/internal/store/storetest"
	"careconnect/internal/utils"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestStore(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping mongo integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database("careconnect_test_" + utils.NanoIDSize(8))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	st := New(db)
	require.NoError(t, st.EnsureIndexes(ctx))

	storetest.Run(t, st, "")
}
