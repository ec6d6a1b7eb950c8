package server

import (
	"context"
	"net/http"

	"careconnect/pkg/types"
)

const supportNotFound = "Support request not found"

func (s *Service) handleListSupport(w http.ResponseWriter, r *http.Request) {
	opts, errs := listOptions(r, types.SortByCreatedAt)
	if len(errs) > 0 {
		s.write(w, r, validationFailed(errs...))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	reqs, err := s.support.List(ctx, opts)
	if err != nil {
		s.write(w, r, s.failed(r, err, supportNotFound, "Error fetching support requests"))
		return
	}

	s.write(w, r, list(reqs))
}

func (s *Service) handleGetSupport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	req, err := s.support.Get(ctx, r.PathValue("id"))
	if err != nil {
		s.write(w, r, s.failed(r, err, supportNotFound, "Error fetching support request"))
		return
	}

	s.write(w, r, ok{data: req})
}

func (s *Service) handleCreateSupport(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(w, r, new(types.SupportRequestForm))
	if err != nil {
		s.logger.WithError(err).Debug("rejected support request body")
		s.write(w, r, invalidBody)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	req, err := s.support.Create(ctx, input)
	if err != nil {
		s.write(w, r, s.failed(r, err, supportNotFound, "Error saving support request"))
		return
	}

	s.logger.WithField("id", req.ID).Info("support request created")
	s.write(w, r, ok{status: http.StatusCreated, message: "Support request submitted successfully", data: req})
}

func (s *Service) handleDeleteSupport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if err := s.support.Delete(ctx, r.PathValue("id")); err != nil {
		s.write(w, r, s.failed(r, err, supportNotFound, "Error deleting support request"))
		return
	}

	s.write(w, r, ok{message: "Support request deleted successfully"})
}
