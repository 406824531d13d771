package dto

import "github.com/zhixunlab/consult-booking/internal/models"

type BookingDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	NeedType    string `json:"need_type"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func NewBookingDTO(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:          b.ID,
		Name:        b.Name,
		Phone:       b.Phone,
		Company:     b.Company,
		NeedType:    b.NeedType,
		Description: b.Description,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt.Format(timeLayout),
	}
}

func NewBookingListDTO(bookings []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingDTO(&bookings[i]))
	}
	return out
}
