package response

import "github.com/gin-gonic/gin"

// Err 统一错误体：{"error": "..."}
func Err(msg string) gin.H { return gin.H{"error": msg} }

// Abort 带真实 HTTP 状态码中断本次请求
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Err(msg))
}
