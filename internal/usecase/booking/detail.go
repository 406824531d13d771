package booking

import (
	"context"

	domain "github.com/zhixunlab/consult-booking/internal/domain/booking"
	"github.com/zhixunlab/consult-booking/internal/httperr"
	"github.com/zhixunlab/consult-booking/internal/models"
)

type Detail struct {
	repo domain.Repository
}

func NewDetail(repo domain.Repository) *Detail {
	return &Detail{repo: repo}
}

func (uc *Detail) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	return b, nil
}
