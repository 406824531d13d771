package booking

import (
	"context"

	domain "github.com/zhixunlab/consult-booking/internal/domain/booking"
	"github.com/zhixunlab/consult-booking/internal/httperr"
	"github.com/zhixunlab/consult-booking/internal/models"
)

type ListByUser struct {
	repo domain.Repository
}

func NewListByUser(repo domain.Repository) *ListByUser {
	return &ListByUser{repo: repo}
}

// Execute returns the user's bookings, most recent first. An empty slice
// is a valid result.
func (uc *ListByUser) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	if userID == 0 {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	if _, err := uc.repo.GetUserByID(ctx, userID); err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	return uc.repo.ListByUser(ctx, userID)
}
