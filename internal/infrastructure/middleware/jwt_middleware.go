package middleware

import (
	"net/http"
	"strings"

	"library_server/pkg/errorx"
	"library_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// 上下文中保存当前身份的 key
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code": errorx.CodeUnauthorized,
		"msg":  msg,
		"data": nil,
	})
}

// JWTAuth JWT 认证中间件
// 验证 Access Token 并将身份存入上下文
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从 Header 获取 Token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "请先登录")
			return
		}

		// 2. 解析 Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Token 格式错误，请使用 Bearer Token")
			return
		}

		// 3. 验证 Token
		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Token 已过期或无效，请重新登录")
			return
		}

		// 4. 验证是否为 Access Token
		if claims.Subject != jwt.SubjectAccess {
			abortUnauthorized(c, "请使用 Access Token 访问此接口")
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// AdminOnly 必须挂在 JWTAuth 之后
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != jwt.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": errorx.CodeForbidden,
				"msg":  errorx.ErrForbidden.Msg,
				"data": nil,
			})
			return
		}
		c.Next()
	}
}

// Principal 取出 JWTAuth 写入的身份，未认证时 ok 为 false
func Principal(c *gin.Context) (userID uint, role string, ok bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0, "", false
	}
	userID, ok = v.(uint)
	return userID, c.GetString(CtxRole), ok
}
