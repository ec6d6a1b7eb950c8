package schema

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	return verr
}

func TestSupportRequestNormalizesAndDefaults(t *testing.T) {
	rec, err := SupportRequest.Validate(map[string]any{
		"fullName": "  Jane Doe ",
		"email":    " Jane.Doe@Example.COM ",
		"message":  "I would like to know more about your services.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", rec.String("fullName"))
	assert.Equal(t, "jane.doe@example.com", rec.String("email"))
	assert.Equal(t, "general", rec.String("inquiryType"))
	assert.Equal(t, "pending", rec.String("status"))
}

func TestSupportRequestCollectsAllViolations(t *testing.T) {
	_, err := SupportRequest.Validate(map[string]any{
		"fullName":    "J",
		"email":       "not-an-email",
		"inquiryType": "billing",
		"message":     "short",
	})
	verr := validationError(t, err)

	assert.Equal(t, []string{
		"Name must be at least 2 characters",
		"Please provide a valid email",
		`"billing" is not a valid inquiryType; expected one of: patient, volunteer, general`,
		"Message must be at least 10 characters",
	}, verr.Messages())
	assert.Equal(t, []string{"fullName", "email", "inquiryType", "message"}, verr.Fields())

	assert.Equal(t, RuleMinLength, verr.Violations[0].Rule)
	assert.Equal(t, 2, verr.Violations[0].Bound)
	assert.Equal(t, RulePattern, verr.Violations[1].Rule)
	assert.Equal(t, RuleEnum, verr.Violations[2].Rule)
	assert.Equal(t, []string{"patient", "volunteer", "general"}, verr.Violations[2].Allowed)
}

func TestSupportRequestMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		field   string
		message string
	}{
		{"missing name", map[string]any{"email": "a@b.co", "message": "hello there friend"}, "fullName", "Full name is required"},
		{"blank name", map[string]any{"fullName": "   ", "email": "a@b.co", "message": "hello there friend"}, "fullName", "Full name is required"},
		{"missing email", map[string]any{"fullName": "Al", "message": "hello there friend"}, "email", "Email is required"},
		{"missing message", map[string]any{"fullName": "Al", "email": "a@b.co"}, "message", "Message is required"},
		{"null message", map[string]any{"fullName": "Al", "email": "a@b.co", "message": nil}, "message", "Message is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SupportRequest.Validate(tt.input)
			verr := validationError(t, err)
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, tt.field, verr.Violations[0].Field)
			assert.Equal(t, RuleRequired, verr.Violations[0].Rule)
			assert.Equal(t, tt.message, verr.Violations[0].Message)
		})
	}
}

func TestSupportRequestDropsUnknownFields(t *testing.T) {
	rec, err := SupportRequest.Validate(map[string]any{
		"fullName":  "Jane",
		"email":     "jane@example.com",
		"message":   "please call me back soon",
		"_id":       "injected",
		"createdAt": "2001-01-01",
		"isAdmin":   true,
	})
	require.NoError(t, err)

	assert.NotContains(t, rec, "_id")
	assert.NotContains(t, rec, "createdAt")
	assert.NotContains(t, rec, "isAdmin")
}

func TestStringFieldsRejectStructuredValues(t *testing.T) {
	_, err := SupportRequest.Validate(map[string]any{
		"fullName": map[string]any{"first": "Jane"},
		"email":    "jane@example.com",
		"message":  []any{"a", "b"},
	})
	verr := validationError(t, err)

	assert.Equal(t, []string{"fullName must be a string", "message must be a string"}, verr.Messages())
	assert.Equal(t, RuleType, verr.Violations[0].Rule)
}

func TestScalarValuesAreConvertedToText(t *testing.T) {
	rec, err := Appointment.Validate(map[string]any{
		"patientName":     "Sam",
		"email":           "sam@example.com",
		"appointmentDate": "2030-05-01T10:30",
		"phone":           5551234567.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "5551234567", rec.String("phone"))
}

func TestAppointmentDefaultsAndDateLayouts(t *testing.T) {
	layouts := map[string]time.Time{
		"2030-05-01T10:30:00Z":      time.Date(2030, 5, 1, 10, 30, 0, 0, time.UTC),
		"2030-05-01T12:30:00+02:00": time.Date(2030, 5, 1, 10, 30, 0, 0, time.UTC),
		"2030-05-01T10:30":          time.Date(2030, 5, 1, 10, 30, 0, 0, time.UTC),
		"2030-05-01":                time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	for raw, want := range layouts {
		t.Run(raw, func(t *testing.T) {
			rec, err := Appointment.Validate(map[string]any{
				"patientName":     " Sam Smith ",
				"email":           "SAM@example.com",
				"appointmentDate": raw,
			})
			require.NoError(t, err)

			assert.True(t, want.Equal(rec.Time("appointmentDate")), "got %s", rec.Time("appointmentDate"))
			assert.Equal(t, "Sam Smith", rec.String("patientName"))
			assert.Equal(t, "sam@example.com", rec.String("email"))
			assert.Equal(t, "consultation", rec.String("appointmentType"))
			assert.Equal(t, "scheduled", rec.String("status"))
			assert.Equal(t, "", rec.String("phone"))
			assert.Equal(t, "", rec.String("notes"))
		})
	}
}

func TestAppointmentViolations(t *testing.T) {
	_, err := Appointment.Validate(map[string]any{
		"email":           "sam@example",
		"appointmentDate": "next tuesday",
		"appointmentType": "surgery",
		"notes":           strings.Repeat("x", 501),
		"status":          "done",
	})
	verr := validationError(t, err)

	assert.Equal(t, []string{"patientName", "email", "appointmentDate", "appointmentType", "notes", "status"}, verr.Fields())
	assert.Contains(t, verr.Messages(), "Patient name is required")
	assert.Contains(t, verr.Messages(), "Appointment date is invalid")
	assert.Contains(t, verr.Messages(), "Notes cannot exceed 500 characters")

	notes := verr.Violations[4]
	assert.Equal(t, RuleMaxLength, notes.Rule)
	assert.Equal(t, 500, notes.Bound)
}

func TestAppointmentNotesAtLimit(t *testing.T) {
	_, err := Appointment.Validate(map[string]any{
		"patientName":     "Sam",
		"email":           "sam@example.com",
		"appointmentDate": time.Now(),
		"notes":           strings.Repeat("é", 500),
	})
	assert.NoError(t, err)
}

func TestAppointmentMissingDate(t *testing.T) {
	_, err := Appointment.Validate(map[string]any{
		"patientName": "Sam",
		"email":       "sam@example.com",
	})
	verr := validationError(t, err)
	assert.Equal(t, []string{"Appointment date is required"}, verr.Messages())
}

func TestSchemaHas(t *testing.T) {
	assert.True(t, Appointment.Has("notes"))
	assert.False(t, Appointment.Has("createdAt"))
	assert.False(t, SupportRequest.Has("phone"))
}

func TestValidationErrorString(t *testing.T) {
	err := &ValidationError{Schema: "thing", Violations: []Violation{{Message: "a"}, {Message: "b"}}}
	assert.Equal(t, "thing validation failed: a; b", err.Error())
}

func TestAppointmentDateOutOfRange(t *testing.T) {
	for _, raw := range []any{4e14, -7e13, "0000-01-01", "0000-06-15T10:00:00Z"} {
		t.Run(fmt.Sprint(raw), func(t *testing.T) {
			_, err := Appointment.Validate(map[string]any{
				"patientName":     "Sam",
				"email":           "sam@example.com",
				"appointmentDate": raw,
			})
			verr := validationError(t, err)
			assert.Equal(t, []string{"Appointment date is invalid"}, verr.Messages())
		})
	}
}

func TestAppointmentDateFromMilliseconds(t *testing.T) {
	rec, err := Appointment.Validate(map[string]any{
		"patientName":     "Sam",
		"email":           "sam@example.com",
		"appointmentDate": float64(time.Date(2030, 5, 1, 10, 30, 0, 0, time.UTC).UnixMilli()),
	})
	require.NoError(t, err)
	assert.True(t, time.Date(2030, 5, 1, 10, 30, 0, 0, time.UTC).Equal(rec.Time("appointmentDate")))
}
