package account

import (
	"context"

	"github.com/zhixunlab/consult-booking/internal/models"
)

type Repository interface {
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetByPhone(
		ctx context.Context,
		phone string,
	) (*models.User, error)

	Create(
		ctx context.Context,
		user *models.User,
	) error
}
