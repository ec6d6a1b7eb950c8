package service

import (
	"context"
	"fmt"

	"careconnect/internal/schema"
	"careconnect/pkg/types"
)

// AppointmentListOptions is the default ordering: latest appointment date
// first, no limit.
var AppointmentListOptions = types.ListOptions{
	SortField:  types.SortByAppointmentDate,
	Descending: true,
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appt *types.Appointment) error
	Appointments(ctx context.Context, opts types.ListOptions) ([]*types.Appointment, error)
	Appointment(ctx context.Context, id string) (*types.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, appt *types.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
}

type AppointmentService struct {
	base
	repo AppointmentRepository
}

func NewAppointmentService(repo AppointmentRepository, opts ...Option) *AppointmentService {
	return &AppointmentService{base: newBase(opts), repo: repo}
}

func (s *AppointmentService) Create(ctx context.Context, input map[string]any) (*types.Appointment, error) {
	rec, err := schema.Appointment.Validate(input)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	appt := appointmentFromRecord(rec)
	appt.ID = s.newID()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if err := s.repo.CreateAppointment(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return appt, nil
}

func (s *AppointmentService) List(ctx context.Context, opts types.ListOptions) ([]*types.Appointment, error) {
	if opts.SortField == "" {
		opts.SortField = AppointmentListOptions.SortField
		opts.Descending = AppointmentListOptions.Descending
	}

	appts, err := s.repo.Appointments(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return appts, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*types.Appointment, error) {
	appt, err := s.repo.Appointment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}

	return appt, nil
}

// Update overlays partial onto the stored appointment and re-validates the
// result as a whole. Keys outside the appointment schema are ignored, so
// createdAt can never be changed.
func (s *AppointmentService) Update(ctx context.Context, id string, partial map[string]any) (*types.Appointment, error) {
	current, err := s.repo.Appointment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}

	merged := appointmentInput(current)
	for k, v := range partial {
		if schema.Appointment.Has(k) {
			merged[k] = v
		}
	}

	rec, err := schema.Appointment.Validate(merged)
	if err != nil {
		return nil, err
	}

	appt := appointmentFromRecord(rec)
	appt.ID = current.ID
	appt.CreatedAt = current.CreatedAt
	appt.UpdatedAt = s.timestamp()

	if err := s.repo.UpdateAppointment(ctx, id, appt); err != nil {
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}

	return appt, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteAppointment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}

	return nil
}

func appointmentFromRecord(rec schema.Record) *types.Appointment {
	return &types.Appointment{
		PatientName:     rec.String("patientName"),
		Email:           rec.String("email"),
		AppointmentDate: rec.Time("appointmentDate"),
		Phone:           rec.String("phone"),
		AppointmentType: types.AppointmentType(rec.String("appointmentType")),
		Notes:           rec.String("notes"),
		Status:          types.AppointmentStatus(rec.String("status")),
	}
}

func appointmentInput(a *types.Appointment) map[string]any {
	return map[string]any{
		"patientName":     a.PatientName,
		"email":           a.Email,
		"appointmentDate": a.AppointmentDate,
		"phone":           a.Phone,
		"appointmentType": string(a.AppointmentType),
		"notes":           a.Notes,
		"status":          string(a.Status),
	}
}
