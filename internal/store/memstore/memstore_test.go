package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"careconnect/internal/store/storetest"
	"careconnect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportRequestsOrderingAndLimit(t *testing.T) {
	ctx := context.Background()
	st := New()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, st.CreateSupportRequest(ctx, &types.SupportRequest{
			ID:        fmt.Sprintf("req-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := st.SupportRequests(ctx, types.ListOptions{SortField: types.SortByCreatedAt, Descending: true, Limit: 3})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "req-4", got[0].ID)
	assert.Equal(t, "req-3", got[1].ID)
	assert.Equal(t, "req-2", got[2].ID)

	got, err = st.SupportRequests(ctx, types.ListOptions{SortField: types.SortByCreatedAt})
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "req-0", got[0].ID)
}

func TestTiesFallBackToInsertionOrder(t *testing.T) {
	ctx := context.Background()
	st := New()
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, st.CreateSupportRequest(ctx, &types.SupportRequest{ID: id, CreatedAt: at}))
	}

	got, err := st.SupportRequests(ctx, types.ListOptions{SortField: types.SortByCreatedAt, Descending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestUnsupportedSortField(t *testing.T) {
	_, err := New().SupportRequests(context.Background(), types.ListOptions{SortField: types.SortByAppointmentDate})
	assert.Error(t, err)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	st := New()
	require.NoError(t, st.CreateAppointment(ctx, &types.Appointment{ID: "a1", PatientName: "Sam"}))

	got, err := st.Appointment(ctx, "a1")
	require.NoError(t, err)
	got.PatientName = "changed"

	again, err := st.Appointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Sam", again.PatientName)
}

func TestAppointmentLifecycle(t *testing.T) {
	ctx := context.Background()
	st := New()

	assert.ErrorIs(t, st.UpdateAppointment(ctx, "missing", &types.Appointment{}), types.ErrNotFound)
	_, err := st.Appointment(ctx, "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, st.CreateAppointment(ctx, &types.Appointment{ID: "a1", Status: types.AppointmentStatusScheduled}))
	require.NoError(t, st.UpdateAppointment(ctx, "a1", &types.Appointment{Status: types.AppointmentStatusConfirmed}))

	got, err := st.Appointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, types.AppointmentStatusConfirmed, got.Status)

	require.NoError(t, st.DeleteAppointment(ctx, "a1"))
	assert.ErrorIs(t, st.DeleteAppointment(ctx, "a1"), types.ErrNotFound)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := New()
	assert.ErrorIs(t, st.Ping(ctx), context.Canceled)
	assert.ErrorIs(t, st.CreateSupportRequest(ctx, &types.SupportRequest{ID: "x"}), context.Canceled)
}

func TestSharedBehaviour(t *testing.T) {
	storetest.Run(t, New(), "")
}
