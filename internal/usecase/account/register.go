package account

import (
	"context"

	domain "github.com/zhixunlab/consult-booking/internal/domain/account"
	"github.com/zhixunlab/consult-booking/internal/httperr"
	"github.com/zhixunlab/consult-booking/internal/models"
	"github.com/zhixunlab/consult-booking/internal/sms"
	"github.com/zhixunlab/consult-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Phone    string
	Password string
	Code     string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	users domain.Repository
	codes *sms.CodeStore
}

func NewRegister(
	users domain.Repository,
	codes *sms.CodeStore,
) *Register {
	return &Register{
		users: users,
		codes: codes,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	if in.Phone == "" || in.Password == "" || in.Code == "" {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	if !validators.IsPhoneValid(in.Phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	if len(in.Password) < domain.MinPasswordLen {
		return nil, httperr.ErrBusiness("weak_password")
	}

	stored, ok := uc.codes.Get(in.Phone)
	if !ok || stored != in.Code {
		return nil, httperr.ErrBusiness("code_mismatch")
	}

	// The code is only consumed further down, once the account actually
	// exists; a duplicate-phone attempt does not burn it.
	if _, err := uc.users.GetByPhone(ctx, in.Phone); err == nil {
		return nil, httperr.ErrBusiness("duplicate_user")
	}

	hash, err := domain.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Phone:        in.Phone,
		PasswordHash: hash,
		Name:         domain.DisplayName(in.Phone),
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.codes.Delete(in.Phone)

	return user, nil
}
