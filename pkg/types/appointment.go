package types

import "time"

type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeCheckup      AppointmentType = "checkup"
	AppointmentTypeEmergency    AppointmentType = "emergency"
	AppointmentTypeFollowUp     AppointmentType = "follow-up"
)

var AppointmentTypes = []AppointmentType{
	AppointmentTypeConsultation,
	AppointmentTypeCheckup,
	AppointmentTypeEmergency,
	AppointmentTypeFollowUp,
}

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

type Appointment struct {
	ID              string            `db:"id" json:"_id" bson:"_id"`
	PatientName     string            `db:"patient_name" json:"patientName" bson:"patientName"`
	Email           string            `db:"email" json:"email" bson:"email"`
	AppointmentDate time.Time         `db:"appointment_date" json:"appointmentDate" bson:"appointmentDate"`
	Phone           string            `db:"phone" json:"phone,omitempty" bson:"phone,omitempty"`
	AppointmentType AppointmentType   `db:"appointment_type" json:"appointmentType" bson:"appointmentType"`
	Notes           string            `db:"notes" json:"notes,omitempty" bson:"notes,omitempty"`
	Status          AppointmentStatus `db:"status" json:"status" bson:"status"`
	CreatedAt       time.Time         `db:"created_at" json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time         `db:"updated_at" json:"updatedAt" bson:"updatedAt"`
}

// AppointmentForm is the url-encoded shape of the booking form. Nil fields
// were not submitted, which matters for partial updates.
type AppointmentForm struct {
	PatientName     *string `form:"patientName"`
	Email           *string `form:"email"`
	Phone           *string `form:"phone"`
	AppointmentDate *string `form:"appointmentDate"`
	AppointmentType *string `form:"appointmentType"`
	Notes           *string `form:"notes"`
	Status          *string `form:"status"`
}
