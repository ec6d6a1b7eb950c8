package store

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"careconnect/internal/store/storetest"
	"careconnect/internal/utils"
	"careconnect/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pgStore joins both repositories so the shared suite can drive them.
type pgStore struct {
	*SupportRepository
	*AppointmentRepository
	pool *pgxpool.Pool
}

func (s pgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func TestRepositories(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping postgres integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = Migrate(ctx, pool)
	require.NoError(t, err)

	// DATABASE_URL must point at a disposable database.
	_, err = pool.Exec(ctx, "TRUNCATE careconnect.support_requests, careconnect.appointments")
	require.NoError(t, err)

	prefix := "test-" + utils.NanoIDSize(6) + "-"
	storetest.Run(t, pgStore{
		SupportRepository:     NewSupportRepository(pool),
		AppointmentRepository: NewAppointmentRepository(pool),
		pool:                  pool,
	}, prefix)
}

func TestOrderBy(t *testing.T) {
	got, err := orderBy(types.ListOptions{}, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "created_at ASC", got)

	got, err = orderBy(types.ListOptions{SortField: types.SortByAppointmentDate, Descending: true}, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "appointment_date DESC", got)

	_, err = orderBy(types.ListOptions{SortField: "fullName"}, "created_at")
	assert.Error(t, err)
}

func TestSupportQueries(t *testing.T) {
	query, args, err := psql().Select(supportColumns...).From(supportTableName).
		OrderBy("created_at DESC", "id").
		Limit(10).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, full_name, email, inquiry_type, message, status, created_at FROM careconnect.support_requests ORDER BY created_at DESC, id LIMIT 10", query)
	assert.Empty(t, args)
}

func TestMigrationsAreEmbedded(t *testing.T) {
	data, err := migrationsFS.ReadFile("migrations/001_init.sql")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "careconnect.appointments"))
}
