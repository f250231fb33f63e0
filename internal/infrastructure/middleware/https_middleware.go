package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler HTTP 请求跳转到 HTTPS
func TlsHandler(host string, port int) gin.HandlerFunc {
	// 在返回函数之前初始化，避免每次请求都重复创建对象
	return wrap(secure.New(secure.Options{
		SSLRedirect: true,
		SSLHost:     host + ":" + strconv.Itoa(port),
	}))
}

// Secure 常用安全响应头，dev 模式下跳过 HSTS 等仅生产有效的检查
func Secure(isDev bool) gin.HandlerFunc {
	return wrap(secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "same-origin",
		IsDevelopment:      isDev,
	}))
}

func wrap(sm *secure.Secure) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sm.Process(c.Writer, c.Request); err != nil {
			// 不要在中间件里 Fatal，记录后终止当前请求即可
			zap.L().Error("secure middleware rejected request", zap.Error(err))
			c.Abort()
			return
		}
		// 重定向时 secure 已经写好了响应
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
			return
		}
		c.Next()
	}
}
