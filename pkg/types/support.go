package types

import "time"

type InquiryType string

const (
	InquiryTypePatient   InquiryType = "patient"
	InquiryTypeVolunteer InquiryType = "volunteer"
	InquiryTypeGeneral   InquiryType = "general"
)

var InquiryTypes = []InquiryType{InquiryTypePatient, InquiryTypeVolunteer, InquiryTypeGeneral}

type SupportStatus string

const (
	SupportStatusPending    SupportStatus = "pending"
	SupportStatusInProgress SupportStatus = "in-progress"
	SupportStatusResolved   SupportStatus = "resolved"
)

var SupportStatuses = []SupportStatus{SupportStatusPending, SupportStatusInProgress, SupportStatusResolved}

// SupportRequest is a contact-form submission. Support requests are only
// ever created, listed and deleted.
type SupportRequest struct {
	ID          string        `db:"id" json:"_id" bson:"_id"`
	FullName    string        `db:"full_name" json:"fullName" bson:"fullName"`
	Email       string        `db:"email" json:"email" bson:"email"`
	InquiryType InquiryType   `db:"inquiry_type" json:"inquiryType" bson:"inquiryType"`
	Message     string        `db:"message" json:"message" bson:"message"`
	Status      SupportStatus `db:"status" json:"status" bson:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt" bson:"createdAt"`
}

// SupportRequestForm is the url-encoded shape of the support form.
type SupportRequestForm struct {
	FullName    *string `form:"fullName"`
	Email       *string `form:"email"`
	InquiryType *string `form:"inquiryType"`
	Message     *string `form:"message"`
}
