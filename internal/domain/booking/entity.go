package booking

import "github.com/zhixunlab/consult-booking/internal/models"

// ===============================
// Domain Actions
// ===============================

// Cancel moves a booking to canceled. Re-canceling an already canceled
// booking is allowed and leaves it canceled.
func Cancel(b *models.Booking) {
	b.Status = string(StatusCanceled)
}
