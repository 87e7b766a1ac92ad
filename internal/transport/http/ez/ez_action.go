package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	resp "go-user-api/internal/transport/http/response"
)

// EZ 在某个分组上注册 Action 的轻封装
type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, log *zap.Logger) EZ { return EZ{g: g, log: log} }

// 绑定方式
type Binder string

const (
	BindJSON Binder = "json" // 从 JSON body 绑定
	BindNone Binder = "none" // 不绑定，自己取 c.Param
)

// AErr 显式错误结果：Status 决定响应状态码，Msg 是对外文案。
// Err 只进日志，绝不回给客户端。
type AErr struct {
	Status int
	Msg    string
	Err    error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func BadRequest(msg string) error   { return &AErr{Status: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Status: http.StatusUnauthorized, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Status: http.StatusNotFound, Msg: msg} }
func Conflict(msg string) error     { return &AErr{Status: http.StatusConflict, Msg: msg} }
func Internal(err error) error {
	return &AErr{Status: http.StatusInternalServerError, Msg: resp.MsgInternal, Err: err}
}

// Action：I 入参，O 出参。流程固定：绑定 → （可选事务）执行 → 状态码映射。
type Action[I any, O any] struct {
	Method  string // "GET" | "POST" | "PUT" | "DELETE"
	Path    string
	Binder  Binder
	Status  int  // 成功状态码，0 表示 200
	UseTx   bool // 包 gorm.Transaction：handler 返回 error 即整体回滚
	Handler func(c *gin.Context, tx *gorm.DB, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, db *gorm.DB, a Action[I, O]) {
	h := func(c *gin.Context) {
		// 1) 绑定入参
		var in I
		if a.Binder == BindJSON {
			if err := c.ShouldBindJSON(&in); err != nil {
				c.JSON(http.StatusBadRequest, resp.Err(resp.MsgNoInput))
				return
			}
		}

		// 2) 执行（可选事务）
		var out O
		var err error
		if a.UseTx {
			err = db.WithContext(c).Transaction(func(tx *gorm.DB) error {
				o, e := a.Handler(c, tx, &in)
				out = o
				return e
			})
		} else {
			out, err = a.Handler(c, db.WithContext(c), &in)
		}

		// 3) 错误映射：AErr 用自带状态码；未知错误一律 500，细节只进日志
		if err != nil {
			var ae *AErr
			if !errors.As(err, &ae) {
				ae = &AErr{Status: http.StatusInternalServerError, Msg: resp.MsgInternal, Err: err}
			}
			if ae.Err != nil && e.log != nil {
				e.log.Error("action failed",
					zap.String("method", a.Method),
					zap.String("path", a.Path),
					zap.Error(ae.Err),
				)
			}
			c.JSON(ae.Status, resp.Err(ae.Msg))
			return
		}

		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}
