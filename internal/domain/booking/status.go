package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
)

// InitialStatus is the status every new booking starts in.
func InitialStatus() Status {
	return StatusPending
}
