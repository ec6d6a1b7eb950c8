package memstore

import (
	"context"
	"time"

	"careconnect/pkg/types"
)

func (s *Store) CreateAppointment(ctx context.Context, appt *types.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[appt.ID] = entry[types.Appointment]{seq: s.nextSeqLocked(), record: *appt}
	return nil
}

func (s *Store) Appointments(ctx context.Context, opts types.ListOptions) ([]*types.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var key func(*types.Appointment) time.Time
	switch opts.SortField {
	case types.SortByAppointmentDate, "":
		key = func(a *types.Appointment) time.Time { return a.AppointmentDate }
	case types.SortByCreatedAt:
		key = func(a *types.Appointment) time.Time { return a.CreatedAt }
	case types.SortByUpdatedAt:
		key = func(a *types.Appointment) time.Time { return a.UpdatedAt }
	default:
		return nil, unsupportedSort(opts.SortField)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.appointments, key, opts), nil
}

func (s *Store) Appointment(ctx context.Context, id string) (*types.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.appointments[id]
	if !ok {
		return nil, types.ErrNotFound
	}

	appt := e.record
	return &appt, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, id string, appt *types.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.appointments[id]
	if !ok {
		return types.ErrNotFound
	}

	createdAt := e.record.CreatedAt
	e.record = *appt
	e.record.ID = id
	e.record.CreatedAt = createdAt
	s.appointments[id] = e
	return nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return types.ErrNotFound
	}

	delete(s.appointments, id)
	return nil
}
