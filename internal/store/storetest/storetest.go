// Package storetest holds behaviour every repository backend must share.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"careconnect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Repository interface {
	Ping(ctx context.Context) error

	CreateSupportRequest(ctx context.Context, req *types.SupportRequest) error
	SupportRequests(ctx context.Context, opts types.ListOptions) ([]*types.SupportRequest, error)
	SupportRequest(ctx context.Context, id string) (*types.SupportRequest, error)
	DeleteSupportRequest(ctx context.Context, id string) error

	CreateAppointment(ctx context.Context, appt *types.Appointment) error
	Appointments(ctx context.Context, opts types.ListOptions) ([]*types.Appointment, error)
	Appointment(ctx context.Context, id string) (*types.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, appt *types.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
}

var base = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

// Run exercises repo against an empty data set. Identifiers are prefixed
// so runs against a shared database do not collide.
func Run(t *testing.T, repo Repository, prefix string) {
	ctx := context.Background()

	t.Run("Ping", func(t *testing.T) {
		require.NoError(t, repo.Ping(ctx))
	})

	t.Run("SupportLifecycle", func(t *testing.T) {
		req := &types.SupportRequest{
			ID:          prefix + "support-life",
			FullName:    "Jane Doe",
			Email:       "jane@example.com",
			InquiryType: types.InquiryTypePatient,
			Message:     "Please call me about my visit.",
			Status:      types.SupportStatusPending,
			CreatedAt:   base,
		}
		require.NoError(t, repo.CreateSupportRequest(ctx, req))

		got, err := repo.SupportRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, req.FullName, got.FullName)
		assert.Equal(t, req.InquiryType, got.InquiryType)
		assert.True(t, req.CreatedAt.Equal(got.CreatedAt))

		require.NoError(t, repo.DeleteSupportRequest(ctx, req.ID))
		assert.ErrorIs(t, repo.DeleteSupportRequest(ctx, req.ID), types.ErrNotFound)

		_, err = repo.SupportRequest(ctx, req.ID)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("SupportNewestFirstWithLimit", func(t *testing.T) {
		var ids []string
		for i := 0; i < 5; i++ {
			req := &types.SupportRequest{
				ID:          fmt.Sprintf("%ssupport-%d", prefix, i),
				FullName:    "Reader",
				Email:       "r@example.com",
				InquiryType: types.InquiryTypeGeneral,
				Message:     "message number " + fmt.Sprint(i),
				Status:      types.SupportStatusPending,
				CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			}
			require.NoError(t, repo.CreateSupportRequest(ctx, req))
			ids = append(ids, req.ID)
		}
		t.Cleanup(func() {
			for _, id := range ids {
				_ = repo.DeleteSupportRequest(ctx, id)
			}
		})

		got, err := repo.SupportRequests(ctx, types.ListOptions{SortField: types.SortByCreatedAt, Descending: true, Limit: 3})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, ids[4], got[0].ID)
		assert.Equal(t, ids[3], got[1].ID)
		assert.Equal(t, ids[2], got[2].ID)

		_, err = repo.SupportRequests(ctx, types.ListOptions{SortField: types.SortByAppointmentDate})
		assert.Error(t, err)
	})

	t.Run("AppointmentLifecycle", func(t *testing.T) {
		appt := &types.Appointment{
			ID:              prefix + "appt-life",
			PatientName:     "Sam Smith",
			Email:           "sam@example.com",
			AppointmentDate: base.Add(48 * time.Hour),
			AppointmentType: types.AppointmentTypeCheckup,
			Status:          types.AppointmentStatusScheduled,
			CreatedAt:       base,
			UpdatedAt:       base,
		}
		require.NoError(t, repo.CreateAppointment(ctx, appt))

		changed := *appt
		changed.Status = types.AppointmentStatusConfirmed
		changed.Notes = "bring insurance card"
		changed.UpdatedAt = base.Add(time.Hour)
		require.NoError(t, repo.UpdateAppointment(ctx, appt.ID, &changed))

		got, err := repo.Appointment(ctx, appt.ID)
		require.NoError(t, err)
		assert.Equal(t, types.AppointmentStatusConfirmed, got.Status)
		assert.Equal(t, "bring insurance card", got.Notes)
		assert.True(t, base.Equal(got.CreatedAt))
		assert.True(t, changed.UpdatedAt.Equal(got.UpdatedAt))
		assert.True(t, appt.AppointmentDate.Equal(got.AppointmentDate))

		assert.ErrorIs(t, repo.UpdateAppointment(ctx, prefix+"missing", &changed), types.ErrNotFound)

		require.NoError(t, repo.DeleteAppointment(ctx, appt.ID))
		assert.ErrorIs(t, repo.DeleteAppointment(ctx, appt.ID), types.ErrNotFound)

		_, err = repo.Appointment(ctx, appt.ID)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("AppointmentsByDateDescending", func(t *testing.T) {
		offsets := []int{3, 1, 4, 2}
		var ids []string
		for i, days := range offsets {
			appt := &types.Appointment{
				ID:              fmt.Sprintf("%sappt-%d", prefix, i),
				PatientName:     "Patient",
				Email:           "p@example.com",
				AppointmentDate: base.AddDate(0, 0, days),
				AppointmentType: types.AppointmentTypeConsultation,
				Status:          types.AppointmentStatusScheduled,
				CreatedAt:       base,
				UpdatedAt:       base,
			}
			require.NoError(t, repo.CreateAppointment(ctx, appt))
			ids = append(ids, appt.ID)
		}
		t.Cleanup(func() {
			for _, id := range ids {
				_ = repo.DeleteAppointment(ctx, id)
			}
		})

		got, err := repo.Appointments(ctx, types.ListOptions{SortField: types.SortByAppointmentDate, Descending: true})
		require.NoError(t, err)
		require.Len(t, got, len(offsets))

		var order []string
		for _, a := range got {
			order = append(order, a.ID)
		}
		assert.Equal(t, []string{ids[2], ids[0], ids[3], ids[1]}, order)
	})
}
