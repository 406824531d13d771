package account

import (
	"context"

	domain "github.com/zhixunlab/consult-booking/internal/domain/account"
	"github.com/zhixunlab/consult-booking/internal/httperr"
	"github.com/zhixunlab/consult-booking/internal/models"
)

type LoginInput struct {
	Phone    string
	Password string
}

type Login struct {
	users domain.Repository
}

func NewLogin(users domain.Repository) *Login {
	return &Login{users: users}
}

// Execute checks the credentials and returns the account. Unknown phone
// and wrong password are indistinguishable to the caller. No session
// token is issued; clients re-send credentials on each login.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*models.User, error) {

	if in.Phone == "" || in.Password == "" {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	user, err := uc.users.GetByPhone(ctx, in.Phone)
	if err != nil {
		return nil, httperr.ErrBusiness("auth_failed")
	}

	if !domain.CheckPassword(user.PasswordHash, in.Password) {
		return nil, httperr.ErrBusiness("auth_failed")
	}

	return user, nil
}
