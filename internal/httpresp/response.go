package httpresp

import "github.com/gin-gonic/gin"

// Response is the success envelope shared by every endpoint.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(200, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}
