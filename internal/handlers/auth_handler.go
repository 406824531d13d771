package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zhixunlab/consult-booking/internal/dto"
	"github.com/zhixunlab/consult-booking/internal/httperr"
	"github.com/zhixunlab/consult-booking/internal/httpresp"
	ucAccount "github.com/zhixunlab/consult-booking/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	register *ucAccount.Register
	login    *ucAccount.Login
	getUser  *ucAccount.GetUser
	sendCode *ucAccount.SendCode
}

func NewAuthHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
	getUser *ucAccount.GetUser,
	sendCode *ucAccount.SendCode,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		getUser:  getUser,
		sendCode: sendCode,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type SendCodeRequest struct {
	Phone string `json:"phone"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "参数不完整")
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Phone:    req.Phone,
		Password: req.Password,
		Code:     req.Code,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "注册成功", dto.NewUserDTO(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "参数不完整")
		return
	}

	user, err := h.login.Execute(c.Request.Context(), ucAccount.LoginInput{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "登录成功", dto.NewUserDTO(user))
}

func (h *AuthHandler) SendCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "手机号格式不正确")
		return
	}

	if err := h.sendCode.Execute(c.Request.Context(), req.Phone); err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "验证码发送成功", nil)
}

func (h *AuthHandler) UserInfo(c *gin.Context) {
	userID := queryID(c, "user_id")
	if userID == 0 {
		httperr.BadRequest(c, "用户ID不能为空")
		return
	}

	user, err := h.getUser.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "获取成功", dto.NewUserDTO(user))
}
