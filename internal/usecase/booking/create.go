package booking

import (
	"context"

	domain "github.com/zhixunlab/consult-booking/internal/domain/booking"
	"github.com/zhixunlab/consult-booking/internal/httperr"
	"github.com/zhixunlab/consult-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	UserID uint

	Name        string
	Phone       string
	Company     string
	NeedType    string
	Description string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo domain.Repository
}

func NewCreate(repo domain.Repository) *Create {
	return &Create{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Booking, error) {

	if in.UserID == 0 ||
		in.Name == "" ||
		in.Phone == "" ||
		in.Company == "" ||
		in.NeedType == "" ||
		in.Description == "" {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	if _, err := uc.repo.GetUserByID(ctx, in.UserID); err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	b := &models.Booking{
		UserID:      in.UserID,
		Name:        in.Name,
		Phone:       in.Phone,
		Company:     in.Company,
		NeedType:    in.NeedType,
		Description: in.Description,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
