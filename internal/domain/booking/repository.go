package booking

import (
	"context"

	"github.com/zhixunlab/consult-booking/internal/models"
)

type Repository interface {
	// -------- User (existence check) --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Booking --------
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error
}
