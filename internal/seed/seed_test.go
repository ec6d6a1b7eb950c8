package seed

import (
	"context"
	"testing"
	"time"

	"careconnect/internal/service"
	"careconnect/internal/store/memstore"
	"careconnect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDataPassesValidation(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	reqs, err := SeedSupportRequests(ctx, service.NewSupportService(st))
	require.NoError(t, err)
	assert.Len(t, reqs, len(SupportRequests))
	assert.Equal(t, types.InquiryTypeGeneral, reqs[2].InquiryType)

	appts, err := SeedAppointments(ctx, service.NewAppointmentService(st), now)
	require.NoError(t, err)
	require.Len(t, appts, 3)
	for _, a := range appts {
		assert.True(t, a.AppointmentDate.After(now))
	}
	assert.Equal(t, types.AppointmentStatusConfirmed, appts[1].Status)
	assert.Equal(t, types.AppointmentStatusScheduled, appts[0].Status)

	stored, err := st.Appointments(ctx, types.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}
