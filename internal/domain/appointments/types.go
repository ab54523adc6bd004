package appointments

// Status define el estado de una cita.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCanceled  Status = "Canceled"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}
