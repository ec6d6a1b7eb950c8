package schema

import "careconnect/pkg/types"

// SupportRequest holds the rules for contact-form submissions.
var SupportRequest = &Schema{
	Name: "support request",
	Fields: []Field{
		{
			Name:             "fullName",
			Type:             String,
			Required:         true,
			MinLength:        2,
			RequiredMessage:  "Full name is required",
			MinLengthMessage: "Name must be at least 2 characters",
		},
		{
			Name:            "email",
			Type:            Email,
			Required:        true,
			RequiredMessage: "Email is required",
			PatternMessage:  "Please provide a valid email",
		},
		{
			Name:    "inquiryType",
			Type:    String,
			Enum:    enumValues(types.InquiryTypes),
			Default: string(types.InquiryTypeGeneral),
		},
		{
			Name:             "message",
			Type:             String,
			Required:         true,
			MinLength:        10,
			RequiredMessage:  "Message is required",
			MinLengthMessage: "Message must be at least 10 characters",
		},
		{
			Name:    "status",
			Type:    String,
			Enum:    enumValues(types.SupportStatuses),
			Default: string(types.SupportStatusPending),
		},
	},
}

// Appointment holds the rules for bookings. Every field here may be
// changed by an update.
var Appointment = &Schema{
	Name: "appointment",
	Fields: []Field{
		{
			Name:            "patientName",
			Type:            String,
			Required:        true,
			RequiredMessage: "Patient name is required",
		},
		{
			Name:            "email",
			Type:            Email,
			Required:        true,
			RequiredMessage: "Email is required",
			PatternMessage:  "Please provide a valid email",
		},
		{
			Name:            "appointmentDate",
			Type:            DateTime,
			Required:        true,
			RequiredMessage: "Appointment date is required",
			InvalidMessage:  "Appointment date is invalid",
		},
		{
			Name: "phone",
			Type: String,
		},
		{
			Name:    "appointmentType",
			Type:    String,
			Enum:    enumValues(types.AppointmentTypes),
			Default: string(types.AppointmentTypeConsultation),
		},
		{
			Name:             "notes",
			Type:             String,
			MaxLength:        500,
			MaxLengthMessage: "Notes cannot exceed 500 characters",
		},
		{
			Name:    "status",
			Type:    String,
			Enum:    enumValues(types.AppointmentStatuses),
			Default: string(types.AppointmentStatusScheduled),
		},
	},
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
