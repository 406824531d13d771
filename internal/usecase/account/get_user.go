package account

import (
	"context"

	domain "github.com/zhixunlab/consult-booking/internal/domain/account"
	"github.com/zhixunlab/consult-booking/internal/httperr"
	"github.com/zhixunlab/consult-booking/internal/models"
)

type GetUser struct {
	users domain.Repository
}

func NewGetUser(users domain.Repository) *GetUser {
	return &GetUser{users: users}
}

func (uc *GetUser) Execute(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	return user, nil
}
