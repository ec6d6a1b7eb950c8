package mongostore

import (
	"context"
	"fmt"

	"careconnect/pkg/types"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) CreateAppointment(ctx context.Context, appt *types.Appointment) error {
	if _, err := s.appointments.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}

	return nil
}

func (s *Store) Appointments(ctx context.Context, opts types.ListOptions) ([]*types.Appointment, error) {
	switch opts.SortField {
	case "", types.SortByAppointmentDate, types.SortByCreatedAt, types.SortByUpdatedAt:
	default:
		return nil, fmt.Errorf("unsupported sort field %q", opts.SortField)
	}

	appts, err := findAll[types.Appointment](ctx, s.appointments, findOptions(opts, types.SortByAppointmentDate))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	return appts, nil
}

func (s *Store) Appointment(ctx context.Context, id string) (*types.Appointment, error) {
	return findOne[types.Appointment](ctx, s.appointments, id)
}

// UpdateAppointment replaces the stored document. createdAt is carried over
// from the stored document regardless of what appt holds.
func (s *Store) UpdateAppointment(ctx context.Context, id string, appt *types.Appointment) error {
	current, err := s.Appointment(ctx, id)
	if err != nil {
		return err
	}

	replacement := *appt
	replacement.ID = id
	replacement.CreatedAt = current.CreatedAt

	res, err := s.appointments.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, &replacement)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	if res.MatchedCount == 0 {
		return types.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	return deleteOne(ctx, s.appointments, id)
}
