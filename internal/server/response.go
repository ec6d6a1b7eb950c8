package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"careconnect/internal/schema"
	"careconnect/pkg/types"

	"github.com/sirupsen/logrus"
)

// ResponsePayload is the envelope every API response is wrapped in.
type ResponsePayload struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Data    any      `json:"data,omitempty"`
	Count   *int     `json:"count,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// result is what a handler hands to write. It is either ok or failure.
type result interface {
	payload() (int, ResponsePayload)
}

type ok struct {
	status  int
	message string
	data    any
	// counted marks list responses, which report len of data as count.
	counted bool
	count   int
}

func (o ok) payload() (int, ResponsePayload) {
	status := o.status
	if status == 0 {
		status = http.StatusOK
	}

	p := ResponsePayload{Success: true, Message: o.message, Data: o.data}
	if o.counted {
		count := o.count
		p.Count = &count
	}

	return status, p
}

type failure struct {
	status  int
	message string
	errors  []string
	detail  string
}

func (f failure) payload() (int, ResponsePayload) {
	return f.status, ResponsePayload{
		Success: false,
		Message: f.message,
		Errors:  f.errors,
		Error:   f.detail,
	}
}

func list[T any](records []T) ok {
	return ok{data: records, counted: true, count: len(records)}
}

var invalidBody = failure{status: http.StatusBadRequest, message: "Invalid request body"}

func validationFailed(errs ...string) failure {
	return failure{status: http.StatusBadRequest, message: "Validation failed", errors: errs}
}

// failed classifies err from the service layer. notFound is the message
// used when the record does not exist, generic the one used for storage
// failures.
func (s *Service) failed(r *http.Request, err error, notFound, generic string) failure {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationFailed(verr.Messages()...)
	case errors.Is(err, types.ErrNotFound):
		return failure{status: http.StatusNotFound, message: notFound}
	default:
		s.logger.WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error(generic)
		return failure{status: http.StatusInternalServerError, message: generic, detail: err.Error()}
	}
}

func (s *Service) write(w http.ResponseWriter, r *http.Request, res result) {
	status, payload := res.payload()
	s.writeJSON(w, r, status, payload)
}

// writeJSON encodes v before touching the response, so an unencodable
// value still produces an envelope instead of a bare status line.
func (s *Service) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.WithError(err).WithField("path", r.URL.Path).Error("failed to encode response")
		status = http.StatusInternalServerError
		data, _ = json.Marshal(ResponsePayload{Success: false, Message: "Error encoding response", Error: err.Error()})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func (s *Service) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, failure{status: http.StatusNotFound, message: "Route not found"})
}

func (s *Service) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, failure{status: http.StatusMethodNotAllowed, message: "Method not allowed"})
}
