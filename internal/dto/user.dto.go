package dto

import "github.com/zhixunlab/consult-booking/internal/models"

const timeLayout = "2006-01-02 15:04:05"

type UserDTO struct {
	ID        uint   `json:"id"`
	Phone     string `json:"phone"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Phone:     u.Phone,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(timeLayout),
	}
}
