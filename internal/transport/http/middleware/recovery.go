package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "go-user-api/internal/transport/http/response"
)

// Recovery panic 兜底：细节进日志，客户端只看到固定文案
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
				)
				resp.Abort(c, http.StatusInternalServerError, resp.MsgInternal)
			}
		}()
		c.Next()
	}
}
