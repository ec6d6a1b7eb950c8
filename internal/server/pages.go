package server

import (
	"context"
	"net/http"
	"time"

	"careconnect/internal/service"
	"careconnect/pkg/types"
)

type HomePageData struct {
	Title            string
	InquiryTypes     []types.InquiryType
	AppointmentTypes []types.AppointmentType
	SupportListCap   int
}

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	data := HomePageData{
		Title:            "CareConnect",
		InquiryTypes:     types.InquiryTypes,
		AppointmentTypes: types.AppointmentTypes,
		SupportListCap:   service.SupportListCap,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	database := types.DatabaseConnected
	if err := s.db.Ping(ctx); err != nil {
		s.logger.WithError(err).Warn("health check could not reach the database")
		database = types.DatabaseDisconnected
	}

	s.writeJSON(w, r, http.StatusOK, types.Health{
		Status:   "OK",
		Message:  "CareConnect API is running",
		Database: database,
	})
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
