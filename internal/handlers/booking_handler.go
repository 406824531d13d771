package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zhixunlab/consult-booking/internal/dto"
	"github.com/zhixunlab/consult-booking/internal/httperr"
	"github.com/zhixunlab/consult-booking/internal/httpresp"
	ucBooking "github.com/zhixunlab/consult-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *ucBooking.Create
	list   *ucBooking.ListByUser
	detail *ucBooking.Detail
	cancel *ucBooking.Cancel
}

func NewBookingHandler(
	create *ucBooking.Create,
	list *ucBooking.ListByUser,
	detail *ucBooking.Detail,
	cancel *ucBooking.Cancel,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		list:   list,
		detail: detail,
		cancel: cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	NeedType    string `json:"need_type"`
	Description string `json:"description"`
}

type CancelBookingRequest struct {
	BookingID uint `json:"booking_id"`
	UserID    uint `json:"user_id"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "参数不完整")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateInput{
		UserID:      req.UserID,
		Name:        req.Name,
		Phone:       req.Phone,
		Company:     req.Company,
		NeedType:    req.NeedType,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "预约创建成功", dto.NewBookingDTO(b))
}

func (h *BookingHandler) List(c *gin.Context) {
	userID := queryID(c, "user_id")
	if userID == 0 {
		httperr.BadRequest(c, "用户ID不能为空")
		return
	}

	bookings, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "获取成功", dto.NewBookingListDTO(bookings))
}

func (h *BookingHandler) Detail(c *gin.Context) {
	bookingID := queryID(c, "booking_id")
	if bookingID == 0 {
		httperr.BadRequest(c, "预约ID不能为空")
		return
	}

	b, err := h.detail.Execute(c.Request.Context(), bookingID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "获取成功", dto.NewBookingDTO(b))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "参数不完整")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), req.BookingID, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "预约已取消", dto.NewBookingDTO(b))
}
