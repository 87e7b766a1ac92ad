package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-user-api/internal/domain"
	resp "go-user-api/internal/transport/http/response"
	"go-user-api/pkg/utils"
)

const keyPrincipal = "principal"

// BasicAuth 每次请求都重新验证凭据，不发任何 token。
// 用户不存在和密码错误对客户端不可区分。
func BasicAuth(users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			abortUnauthorized(c)
			return
		}
		u, err := users.FindByUsername(username)
		if err != nil || u == nil || !utils.CheckPassword(password, u.PasswordHash) {
			abortUnauthorized(c)
			return
		}
		c.Set(keyPrincipal, u)
		c.Next()
	}
}

// Principal 取本次请求已认证的用户，仅在 BasicAuth 之后有值
func Principal(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(keyPrincipal)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="user-api"`)
	resp.Abort(c, http.StatusUnauthorized, resp.MsgUnauthorized)
}
