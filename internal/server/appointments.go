package server

import (
	"context"
	"net/http"

	"careconnect/pkg/types"
)

const appointmentNotFound = "Appointment not found"

func (s *Service) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	opts, errs := listOptions(r, types.SortByAppointmentDate, types.SortByCreatedAt, types.SortByUpdatedAt)
	if len(errs) > 0 {
		s.write(w, r, validationFailed(errs...))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	appts, err := s.appointments.List(ctx, opts)
	if err != nil {
		s.write(w, r, s.failed(r, err, appointmentNotFound, "Error fetching appointments"))
		return
	}

	s.write(w, r, list(appts))
}

func (s *Service) handleGetAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	appt, err := s.appointments.Get(ctx, r.PathValue("id"))
	if err != nil {
		s.write(w, r, s.failed(r, err, appointmentNotFound, "Error fetching appointment"))
		return
	}

	s.write(w, r, ok{data: appt})
}

func (s *Service) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(w, r, new(types.AppointmentForm))
	if err != nil {
		s.logger.WithError(err).Debug("rejected appointment body")
		s.write(w, r, invalidBody)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	appt, err := s.appointments.Create(ctx, input)
	if err != nil {
		s.write(w, r, s.failed(r, err, appointmentNotFound, "Error booking appointment"))
		return
	}

	s.logger.WithField("id", appt.ID).Info("appointment created")
	s.write(w, r, ok{status: http.StatusCreated, message: "Appointment booked successfully", data: appt})
}

func (s *Service) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(w, r, new(types.AppointmentForm))
	if err != nil {
		s.logger.WithError(err).Debug("rejected appointment body")
		s.write(w, r, invalidBody)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	appt, err := s.appointments.Update(ctx, r.PathValue("id"), input)
	if err != nil {
		s.write(w, r, s.failed(r, err, appointmentNotFound, "Error updating appointment"))
		return
	}

	s.write(w, r, ok{message: "Appointment updated successfully", data: appt})
}

func (s *Service) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if err := s.appointments.Delete(ctx, r.PathValue("id")); err != nil {
		s.write(w, r, s.failed(r, err, appointmentNotFound, "Error deleting appointment"))
		return
	}

	s.write(w, r, ok{message: "Appointment deleted successfully"})
}
