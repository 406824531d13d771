package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zhixunlab/consult-booking/internal/httperr"
)

// writeError maps a usecase error to the response envelope. Every business
// code resolves to a fixed status and message; anything unknown is an
// internal fault and stays generic.
func writeError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "invalid_input":
		httperr.BadRequest(c, "参数不完整")
	case "invalid_phone":
		httperr.BadRequest(c, "手机号格式不正确")
	case "weak_password":
		httperr.BadRequest(c, "密码长度不能少于6位")
	case "code_mismatch":
		httperr.BadRequest(c, "验证码错误")
	case "duplicate_user":
		httperr.BadRequest(c, "该手机号已被注册")
	case "auth_failed":
		httperr.Unauthorized(c, "手机号或密码错误")
	case "user_not_found":
		httperr.NotFound(c, "用户不存在")
	case "booking_not_found":
		httperr.NotFound(c, "预约不存在")
	case "forbidden":
		httperr.Forbidden(c, "无权操作此预约")
	default:
		httperr.Internal(c, "服务器内部错误")
	}
}
