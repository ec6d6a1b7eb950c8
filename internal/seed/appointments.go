package seed

import (
	"context"
	"fmt"
	"time"

	"careconnect/internal/service"
	"careconnect/internal/utils"
	"careconnect/pkg/types"
)

// Appointments returns demo bookings relative to now so they always land
// in the future.
func Appointments(now time.Time) []types.AppointmentForm {
	day := func(n int, hour int) *string {
		d := now.UTC().AddDate(0, 0, n)
		t := time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
		return utils.StringPtr(t.Format(time.RFC3339))
	}

	return []types.AppointmentForm{
		{
			PatientName:     utils.StringPtr("Maria Gonzalez"),
			Email:           utils.StringPtr("maria.gonzalez@example.com"),
			Phone:           utils.StringPtr("+1 (555) 201-3344"),
			AppointmentDate: day(3, 9),
			AppointmentType: utils.StringPtr(string(types.AppointmentTypeConsultation)),
			Notes:           utils.StringPtr("First visit, bring recent lab results."),
		},
		{
			PatientName:     utils.StringPtr("Tom Becker"),
			Email:           utils.StringPtr("tom.becker@example.com"),
			AppointmentDate: day(7, 14),
			AppointmentType: utils.StringPtr(string(types.AppointmentTypeCheckup)),
			Status:          utils.StringPtr(string(types.AppointmentStatusConfirmed)),
		},
		{
			PatientName:     utils.StringPtr("Aisha Khan"),
			Email:           utils.StringPtr("aisha.khan@example.com"),
			Phone:           utils.StringPtr("+1 (555) 908-1200"),
			AppointmentDate: day(14, 11),
			AppointmentType: utils.StringPtr(string(types.AppointmentTypeFollowUp)),
		},
	}
}

func SeedAppointments(ctx context.Context, svc *service.AppointmentService, now time.Time) ([]*types.Appointment, error) {
	forms := Appointments(now)
	created := make([]*types.Appointment, 0, len(forms))
	for i, form := range forms {
		appt, err := svc.Create(ctx, utils.FormToMap(form))
		if err != nil {
			return created, fmt.Errorf("failed to seed appointment %d (%s): %w", i, utils.PtrString(form.PatientName), err)
		}
		created = append(created, appt)
	}

	return created, nil
}
