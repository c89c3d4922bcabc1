package response

import "github.com/gin-gonic/gin"

// ErrorBody 统一错误响应结构
type ErrorBody struct {
	Message string `json:"message"`
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, ErrorBody{Message: msg})
}

// AbortError 错误响应并终止后续 Handler (中间件用)
func AbortError(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Message: msg})
}
