package account

import (
	"context"

	"github.com/zhixunlab/consult-booking/internal/httperr"
	"github.com/zhixunlab/consult-booking/internal/sms"
	"github.com/zhixunlab/consult-booking/internal/validators"
)

type SendCode struct {
	codes    *sms.CodeStore
	outbound *sms.Dispatcher
}

func NewSendCode(
	codes *sms.CodeStore,
	outbound *sms.Dispatcher,
) *SendCode {
	return &SendCode{
		codes:    codes,
		outbound: outbound,
	}
}

// Execute issues a fresh code for the phone, replacing any pending one.
func (uc *SendCode) Execute(
	ctx context.Context,
	phone string,
) error {

	if !validators.IsPhoneValid(phone) {
		return httperr.ErrBusiness("invalid_phone")
	}

	code := sms.NewCode()
	uc.codes.Set(phone, code)

	uc.outbound.Dispatch(sms.Message{
		Phone: phone,
		Code:  code,
	})

	return nil
}
