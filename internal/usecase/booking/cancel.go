package booking

import (
	"context"

	domain "github.com/zhixunlab/consult-booking/internal/domain/booking"
	"github.com/zhixunlab/consult-booking/internal/httperr"
	"github.com/zhixunlab/consult-booking/internal/models"
)

type Cancel struct {
	repo domain.Repository
}

func NewCancel(repo domain.Repository) *Cancel {
	return &Cancel{repo: repo}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	if bookingID == 0 || userID == 0 {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.UserID != userID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	domain.Cancel(b)

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
