package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-user-api/internal/repo"
	"go-user-api/internal/transport/http/handler"
	mdw "go-user-api/internal/transport/http/middleware"
	resp "go-user-api/internal/transport/http/response"
)

func NewAPIEngine(l *zap.Logger, db *gorm.DB) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 未匹配路由统一 404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, resp.Err(resp.MsgRouteMissing))
	})

	// 公共分组：只有注册；其余全部走 BasicAuth，每次请求重新验证凭据
	public := r.Group("")
	authed := r.Group("")
	authed.Use(mdw.BasicAuth(repo.NewUserRepo(db)))

	handler.MountUserActions(public, authed, db, l)

	return r
}
