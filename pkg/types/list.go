package types

// SortField names a sortable record attribute using its wire name.
type SortField string

const (
	SortByCreatedAt       SortField = "createdAt"
	SortByUpdatedAt       SortField = "updatedAt"
	SortByAppointmentDate SortField = "appointmentDate"
)

// ListOptions controls ordering and size of a list query. A zero Limit
// means no limit.
type ListOptions struct {
	SortField  SortField
	Descending bool
	Limit      uint64
}
